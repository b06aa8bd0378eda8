package atoi

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for parse failures.
var Error = errs.Class("atoi")

// Parse failure kinds. A *ParseError unwraps to exactly one of these.
var (
	ErrEmpty        = Error.New("empty input")
	ErrTooLong      = Error.New("too long")
	ErrInvalidDigit = Error.New("invalid digit")
	ErrOverflow     = Error.New("value out of range")
)

// ParseError describes why an input was rejected.
type ParseError struct {
	Err error

	// Pos and Byte identify the first non-digit for ErrInvalidDigit.
	Pos  int
	Byte byte

	Len  int
	Bits int
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrInvalidDigit:
		return fmt.Sprintf("%v: %q at position %d", e.Err, e.Byte, e.Pos)
	case ErrTooLong:
		return fmt.Sprintf("%v: len=%d max=%d", e.Err, e.Len, maxLen)
	case ErrOverflow:
		return fmt.Sprintf("%v: uint%d", e.Err, e.Bits)
	}

	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
