package ocolor

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFound is returned when a hue or color name is not registered.
	ErrNotFound = errors.New("ocolor: name not found")

	// ErrInvalidHex is wrapped by ParseError for malformed hex strings.
	ErrInvalidHex = errors.New("ocolor: invalid hex color")
)

// ParseError reports a string that could not be read as a color.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "ocolor: cannot parse " + strconv.Quote(e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
