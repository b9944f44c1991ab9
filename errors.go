package sicasm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is reported when a START address, RESW/RESB count,
	// WORD value or opcode byte cannot be parsed. It stops the pass.
	ErrMalformedNumber = errors.New("malformed numeric literal")

	// ErrDuplicateSymbol is reported when a label is defined twice. The first
	// definition wins and assembly continues.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrAddressOverflow is reported when a line would be placed above $FFFF.
	ErrAddressOverflow = errors.New("location counter overflow")
)

// LineError ties an error to the source line that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d - %s", e.Line, e.Err.Error())
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineError(line int, text string, err error) error {
	if err == nil {
		return nil
	}

	return &LineError{Line: line, Text: text, Err: err}
}

func lineErrorf(line int, text string, format string, a ...interface{}) error {
	return lineError(line, text, fmt.Errorf(format, a...))
}
