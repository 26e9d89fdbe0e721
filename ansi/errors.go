package ansi

import (
	"errors"
	"fmt"
)

// Error definitions for code construction and flattening
var (
	// ErrOutOfRange is returned when a numeric value falls outside its valid domain
	ErrOutOfRange = errors.New("value out of range")

	// ErrMalformedHex is returned when a hex color string cannot be decoded
	ErrMalformedHex = errors.New("malformed hex color")

	// ErrRGBArity is returned when RGB input is neither a single triple nor three scalars
	ErrRGBArity = errors.New("RGB input must be a hex string, a 3-element triple, or three integers")

	// ErrUnsupportedRGBInput is returned when an RGB argument has an unsupported type
	ErrUnsupportedRGBInput = errors.New("unsupported RGB input type")

	// ErrUnsupportedCodeType is returned when flattening encounters an element
	// that is neither a Code, a string, nor a supported container
	ErrUnsupportedCodeType = errors.New("unsupported code element type")

	// ErrEmptyCode is returned when flattening encounters an empty string or a zero Code
	ErrEmptyCode = errors.New("code must not be empty")

	// ErrMalformedSequence is returned when a preformed escape string is not a
	// well-formed SGR sequence
	ErrMalformedSequence = errors.New("malformed escape sequence")

	// ErrNestingTooDeep is returned when flattening exceeds the nesting depth
	// limit, which indicates a self-referential container
	ErrNestingTooDeep = errors.New("maximum nesting depth exceeded")
)

// RangeError provides detailed information about a numeric value outside its
// valid domain. It unwraps to ErrOutOfRange.
type RangeError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Name, e.Min, e.Max, e.Value)
}

// Unwrap returns the underlying sentinel error for errors.Is checks.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
