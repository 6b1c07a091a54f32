package selector

import (
	"fmt"
	"strings"
)

// Stringifier is anything that renders to selector text: a Selector or a
// Combined.
type Stringifier interface {
	Stringify() (string, error)
}

// Fragment is one typed piece of a simple selector.
type Fragment struct {
	Kind Kind
	Text string // pre-formatted text, e.g. "#main" or "[href]"
}

// Rank returns the ordering rank of the fragment kind.
func (f Fragment) Rank() int {
	return f.Kind.Rank()
}

// Selector is an immutable ordered sequence of fragments. The zero value is
// the empty root.
type Selector struct {
	frags []Fragment
	tally [KindPseudoElement + 1]int
	err   error
}

// New returns the empty root selector.
func New() Selector {
	return Selector{}
}

func Element(value string) Selector       { return New().Element(value) }
func ID(value string) Selector            { return New().ID(value) }
func Class(value string) Selector         { return New().Class(value) }
func Attribute(value string) Selector     { return New().Attribute(value) }
func PseudoClass(value string) Selector   { return New().PseudoClass(value) }
func PseudoElement(value string) Selector { return New().PseudoElement(value) }

// Element appends a type selector, e.g. "div".
func (s Selector) Element(value string) Selector { return s.Add(KindElement, value) }

// ID appends "#value".
func (s Selector) ID(value string) Selector { return s.Add(KindID, value) }

// Class appends ".value".
func (s Selector) Class(value string) Selector { return s.Add(KindClass, value) }

// Attribute appends "[value]". The value is not inspected.
func (s Selector) Attribute(value string) Selector { return s.Add(KindAttribute, value) }

// PseudoClass appends ":value".
func (s Selector) PseudoClass(value string) Selector { return s.Add(KindPseudoClass, value) }

// PseudoElement appends "::value".
func (s Selector) PseudoElement(value string) Selector { return s.Add(KindPseudoElement, value) }

// Add appends a fragment of kind k built from value and returns the extended
// selector. If s already failed, s is returned as is.
func (s Selector) Add(k Kind, value string) Selector {
	if s.err != nil {
		return s
	}
	if !k.IsValid() {
		s.err = fmt.Errorf("%s is %w", k, ErrInvalidKind)
		return s
	}

	// uniqueness goes first, "div" + "div" is a duplicate rather than an ordering problem
	if k.Singleton() && s.tally[k] > 0 {
		s.err = &DuplicateSingletonError{Kind: k}
		return s
	}
	// ranks of a valid prefix are already non-decreasing, comparing with the
	// last fragment is enough
	if n := len(s.frags); n > 0 {
		if last := s.frags[n-1].Kind; k.Rank() < last.Rank() {
			s.err = &OutOfOrderError{Attempted: k, Preceding: last}
			return s
		}
	}

	// never append into the shared backing array, siblings built from the
	// same parent must not see each other
	frags := make([]Fragment, len(s.frags), len(s.frags)+1)
	copy(frags, s.frags)
	s.frags = append(frags, Fragment{Kind: k, Text: k.format(value)})
	s.tally[k]++
	return s
}

// Err returns the first construction error of the chain, if any.
func (s Selector) Err() error {
	return s.err
}

// Len returns number of fragments.
func (s Selector) Len() int {
	return len(s.frags)
}

// IsEmpty reports whether s has no fragments.
func (s Selector) IsEmpty() bool {
	return len(s.frags) == 0
}

// Has reports whether s contains a fragment of kind k.
func (s Selector) Has(k Kind) bool {
	return k.IsValid() && s.tally[k] > 0
}

// Count returns the number of fragments of kind k.
func (s Selector) Count(k Kind) int {
	if !k.IsValid() {
		return 0
	}
	return s.tally[k]
}

// Fragments returns a copy of the fragment sequence.
func (s Selector) Fragments() []Fragment {
	out := make([]Fragment, len(s.frags))
	copy(out, s.frags)
	return out
}

// Stringify concatenates fragment texts in order.
func (s Selector) Stringify() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var sb strings.Builder
	for _, f := range s.frags {
		sb.WriteString(f.Text)
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. A failed chain renders as empty string.
func (s Selector) String() string {
	str, _ := s.Stringify()
	return str
}

// Must returns rendered text of s or panics. Meant for package level
// variables built from constants.
func Must(s Stringifier) string {
	str, err := s.Stringify()
	if err != nil {
		panic(fmt.Sprintf("selector: %v", err))
	}
	return str
}
