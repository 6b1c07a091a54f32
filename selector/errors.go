package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSingleton matches any DuplicateSingletonError.
	ErrDuplicateSingleton = errors.New("duplicate singleton selector")
	// ErrOutOfOrder matches any OutOfOrderError.
	ErrOutOfOrder = errors.New("out of order selector")
	// ErrNilOperand is reported when a combination has a missing side.
	ErrNilOperand = errors.New("nil selector operand")
)

// DuplicateSingletonError is reported when a second element, id or
// pseudo-element fragment is added to a selector.
type DuplicateSingletonError struct {
	Kind Kind
}

func (e *DuplicateSingletonError) Error() string {
	return fmt.Sprintf("%s: %s may occur only once", ErrDuplicateSingleton, e.Kind)
}

func (e *DuplicateSingletonError) Is(target error) bool {
	return target == ErrDuplicateSingleton
}

// OutOfOrderError is reported when a fragment would follow one of higher rank.
type OutOfOrderError struct {
	Attempted Kind
	Preceding Kind
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("%s: %s cannot follow %s", ErrOutOfOrder, e.Attempted, e.Preceding)
}

func (e *OutOfOrderError) Is(target error) bool {
	return target == ErrOutOfOrder
}
