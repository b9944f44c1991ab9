package sicasm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IntermediateLine is a source line with the address Pass 1 gave it, taken
// before the location counter moved past the line.
type IntermediateLine struct {
	Address Address
	SourceLine
}

// Intermediate is what Pass 1 hands to Pass 2. It is complete before Pass 2
// starts, so forward references resolve.
type Intermediate struct {
	Lines    []IntermediateLine
	Symbols  *SymbolTable
	Used     []OpEntry // machine instructions referenced, first use first
	Warnings []error
	Start    Address
	End      int // location counter after the last line
}

// WriteIntermediate writes each line as its 4 digit address, a tab and the
// source text.
func WriteIntermediate(w io.Writer, lines []IntermediateLine) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%04X\t%s\n", l.Address, l.Raw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadIntermediate reads the format written by WriteIntermediate. The fields
// after the address are parsed with the same token rule Pass 1 uses. Line
// numbers refer to the intermediate text.
func ReadIntermediate(r io.Reader, optab *OpTable) ([]IntermediateLine, error) {
	var lines []IntermediateLine
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		field, raw, found := strings.Cut(text, "\t")
		if !found {
			field, raw = text, ""
			if i := strings.IndexAny(text, " "); i >= 0 {
				field, raw = text[:i], text[i+1:]
			}
		}

		addr, err := strconv.ParseUint(strings.TrimSpace(field), 16, 16)
		if err != nil {
			return nil, lineErrorf(n, text, "%w: address %q", ErrMalformedNumber, field)
		}

		src, ok := parseLine(n, raw, optab)
		if !ok {
			continue
		}

		lines = append(lines, IntermediateLine{Address: Address(addr), SourceLine: src})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
