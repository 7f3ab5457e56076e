package library

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUnavailable   = errors.New("book is not available")
	ErrNotHeld       = errors.New("book is not held by member")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStillBorrowed = errors.New("book is still borrowed")
	ErrHoldsBooks    = errors.New("member still holds books")
)

// Outcome is the result of a catalog operation. Message is always set and is
// what gets shown to the operator; Err is nil on success and one of the
// package sentinels otherwise.
type Outcome struct {
	Message string
	Err     error
}

func succeeded(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

func failed(err error, format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...), Err: err}
}

// OK reports whether the operation changed the catalog as requested.
func (o Outcome) OK() bool { return o.Err == nil }

func (o Outcome) String() string { return o.Message }
