// Package sicasm is a two-pass assembler for the Simplified Instructional
// Computer (SIC).
//
// Pass 1 assigns addresses and collects labels into a symbol table. Pass 2
// resolves operands against that table and produces the listing and the
// Header, Text and End records of the object program. Pass 2 only runs once
// Pass 1 has seen the whole source, so labels may be used before they are
// defined.
//
// Only the START, END, WORD, RESW, RESB and BYTE directives are understood.
// There is one program block and one control section, no addressing modes
// and no literals.
package sicasm

import (
	"io"
)

// Options tunes the parts of assembly where the classic behaviour is a
// simplification. The zero value reproduces it.
type Options struct {
	// MaxTextBytes caps the object code bytes per Text record. 0 puts all
	// code in a single record. SIC loaders expect 30.
	MaxTextBytes int

	// ExactHexBytes sizes BYTE X'..' by its digit count (two digits a byte)
	// instead of always reserving one byte.
	ExactHexBytes bool
}

// Assemble reads SIC source from src and runs both passes over it.
func Assemble(src io.Reader, optab *OpTable, opts Options) (*Program, error) {
	lines, err := ReadSource(src)
	if err != nil {
		return nil, err
	}

	in, err := Pass1(lines, optab, opts)
	if err != nil {
		return nil, err
	}

	return Pass2(in, opts)
}
