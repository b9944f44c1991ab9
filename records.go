package sicasm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextRecord is a run of object code loaded from Start onward.
type TextRecord struct {
	Start Address
	Codes []string
}

// Len is the number of bytes of object code in the record.
func (r TextRecord) Len() (n int) {
	for _, c := range r.Codes {
		n += codeLen(c)
	}
	return
}

func (r TextRecord) String() string {
	return fmt.Sprintf("T^%06X^%s", r.Start, strings.Join(r.Codes, "^"))
}

func codeLen(code string) int {
	return (len(code) + 1) / 2
}

func (p *Program) HeaderRecord() string {
	return fmt.Sprintf("H^%-6s^%06X^%06X", p.Name, p.Start, p.Length)
}

func (p *Program) TextRecords() []string {
	records := make([]string, len(p.Text))
	for i, r := range p.Text {
		records[i] = r.String()
	}
	return records
}

func (p *Program) EndRecord() string {
	return fmt.Sprintf("E^%06X", p.Entry)
}

const (
	listingHeader = "%-8s%-10s%-10s%-10s%-10s"
	listingRow    = "%04X    %-10s%-10s%-10s%-10s"
)

// WriteListing writes the column header followed by one row per line.
func (p *Program) WriteListing(w io.Writer) error {
	out := newRecordWriter(w)
	p.listing(out)
	return out.flush()
}

// WriteObject writes the Header, Text and End records, one per line.
func (p *Program) WriteObject(w io.Writer) error {
	out := newRecordWriter(w)
	p.object(out)
	return out.flush()
}

// WriteOutput writes the listing and then the object program.
func (p *Program) WriteOutput(w io.Writer) error {
	out := newRecordWriter(w)
	p.listing(out)
	out.line("")
	out.line("--- Object Program ---")
	p.object(out)
	return out.flush()
}

func (p *Program) listing(out *recordWriter) {
	out.linef(listingHeader, "Address", "Label", "Opcode", "Operand", "Object Code")
	for _, l := range p.Listing {
		out.linef(listingRow, l.Address, l.Label, l.Opcode, l.Operand, l.Code)
	}
}

func (p *Program) object(out *recordWriter) {
	out.line(p.HeaderRecord())
	for _, r := range p.Text {
		out.line(r.String())
	}
	out.line(p.EndRecord())
}

// WriteUsedOps writes "MNEMONIC<TAB>OPCODE" for each entry, in the format
// LoadOpTable reads.
func WriteUsedOps(w io.Writer, used []OpEntry) error {
	out := newRecordWriter(w)
	for _, e := range used {
		out.linef("%s\t%02X", e.Mnemonic, e.Opcode)
	}
	return out.flush()
}

// recordWriter keeps the first write error so callers check once at flush.
type recordWriter struct {
	w   *bufio.Writer
	err error
}

func newRecordWriter(w io.Writer) *recordWriter {
	return &recordWriter{w: bufio.NewWriter(w)}
}

func (out *recordWriter) line(s string) {
	if out.err != nil {
		return
	}
	_, out.err = out.w.WriteString(strings.TrimRight(s, " ") + "\n")
}

func (out *recordWriter) linef(format string, a ...interface{}) {
	out.line(fmt.Sprintf(format, a...))
}

func (out *recordWriter) flush() error {
	if out.err != nil {
		return out.err
	}
	return out.w.Flush()
}
