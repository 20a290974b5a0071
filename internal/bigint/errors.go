package bigint

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrSyntax indicates a malformed decimal string.
	ErrSyntax = errors.New("invalid syntax")
	// ErrEmptyEncoding is returned when decoding an empty byte slice.
	ErrEmptyEncoding = errors.New("empty two's-complement encoding")
	// ErrRange indicates a value that does not fit the requested type.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed decimal conversion.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "bigint: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxError(input, reason string) error {
	return &ParseError{Input: input, Err: errors.Wrap(ErrSyntax, reason)}
}
