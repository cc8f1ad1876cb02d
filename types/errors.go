package types

import "fmt"

// InfiniteTypeError reports an occurs-check failure: a variable was about to
// be bound to a type in which it occurs free, which would denote an infinite
// type.
type InfiniteTypeError struct {
	Var *Variable
	In  Type
}

func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s occurs in %s", e.Var, e.In)
}

// MismatchError reports two structurally incompatible types: distinct
// constants, sequences of different lengths, or variants of different kinds.
type MismatchError struct {
	Left  Type
	Right Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}
