package selector

import (
	"go.uber.org/multierr"
)

// Commonly used combinators. Combine accepts any string.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)

// Combined is a pair of stringifiable selectors joined by a combinator.
// Operands may be other Combined values, so combinations nest freely.
type Combined struct {
	Left       Stringifier
	Combinator string
	Right      Stringifier
}

// Combine joins left and right with combinator.
func Combine(left Stringifier, combinator string, right Stringifier) Combined {
	return Combined{Left: left, Combinator: combinator, Right: right}
}

// Stringify renders "left combinator right" with exactly one space on each
// side of the combinator, even when the combinator itself is a space. Errors
// of both operands are reported together.
func (c Combined) Stringify() (string, error) {
	left, lerr := stringify(c.Left)
	right, rerr := stringify(c.Right)
	if err := multierr.Combine(lerr, rerr); err != nil {
		return "", err
	}
	return left + " " + c.Combinator + " " + right, nil
}

// String implements fmt.Stringer. A failed combination renders as empty
// string.
func (c Combined) String() string {
	str, _ := c.Stringify()
	return str
}

func stringify(s Stringifier) (string, error) {
	if s == nil {
		return "", ErrNilOperand
	}
	return s.Stringify()
}
