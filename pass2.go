package sicasm

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
)

// Program is an assembled object program together with its listing.
type Program struct {
	Name     string
	Start    Address
	Length   int
	Entry    Address // target of the End record
	Text     []TextRecord
	Listing  []ListingLine
	Used     []OpEntry
	Symbols  *SymbolTable
	Warnings []error
}

// ListingLine is one row of the assembly listing. Code is empty for lines
// that produce no object code.
type ListingLine struct {
	Address Address
	Label   string
	Opcode  string
	Operand string
	Code    string
}

// Pass2 turns the output of Pass1 into object code. The operation table is
// carried by the lines themselves, which were classified when Pass 1 parsed
// them.
//
// Operands that are not in the symbol table assemble as address 0000 and are
// not reported. A malformed WORD value stops the pass.
func Pass2(in *Intermediate, opts Options) (*Program, error) {
	symbols := in.Symbols
	if symbols == nil {
		symbols = NewSymbolTable()
	}

	g := generator{
		symbols: symbols,
		opts:    opts,
		prog: &Program{
			Symbols:  symbols,
			Warnings: in.Warnings,
		},
	}
	p := g.prog

	if len(in.Lines) > 0 {
		p.Start = in.Lines[0].Address
		p.Entry = p.Start
	}

	final := int(p.Start)
	started := false

	for i := range in.Lines {
		l := &in.Lines[i]

		if !started && l.Kind == KindStart {
			started = true
			p.Name = l.Label
			p.Start = l.Address
			p.Entry = l.Address
		}

		code, err := g.objectCode(l)
		if err != nil {
			return nil, err
		}

		g.used.add(l.Op)
		g.text(l.Address, code)

		p.Listing = append(p.Listing, ListingLine{
			Address: l.Address,
			Label:   l.Label,
			Opcode:  l.Opcode,
			Operand: l.Operand,
			Code:    code,
		})

		n, err := l.size(opts)
		if err != nil {
			return nil, err
		}
		final = int(l.Address) + n
	}

	if p.Length = final - int(p.Start); p.Length < 0 {
		p.Length = 0
	}
	p.Used = g.used.entries

	glog.V(1).Infof("pass 2: %s start %04X length %X, %d text records",
		p.Name, p.Start, p.Length, len(p.Text))

	return p, nil
}

type generator struct {
	symbols *SymbolTable
	opts    Options
	used    usedOps
	prog    *Program
}

func (g *generator) objectCode(l *IntermediateLine) (string, error) {
	switch l.Kind {
	case KindInstruction:
		var addr Address
		if l.Operand != "" {
			if a, ok := g.symbols.Lookup(l.Operand); ok {
				addr = a
			}
		}
		return fmt.Sprintf("%02X%04X", l.Op.Opcode, addr), nil

	case KindByte:
		typ, body, ok := byteLiteral(l.Operand)
		switch {
		case !ok:
			return "", nil
		case typ == 'C':
			return fmt.Sprintf("%X", body), nil
		default:
			return body, nil
		}

	case KindWord:
		return wordCode(&l.SourceLine)
	}

	return "", nil
}

// wordCode formats a decimal WORD operand as a 24-bit two's complement
// value.
func wordCode(l *SourceLine) (string, error) {
	v, err := strconv.ParseInt(l.Operand, 10, 32)
	if err != nil || v < -0x800000 || v > 0xFFFFFF {
		return "", l.errorf("%w: WORD value %q", ErrMalformedNumber, l.Operand)
	}
	return fmt.Sprintf("%06X", uint32(v)&0xFFFFFF), nil
}

// text appends code to the current Text record, starting a new one at addr
// when there is none yet or the code would overflow opts.MaxTextBytes.
func (g *generator) text(addr Address, code string) {
	if code == "" {
		return
	}

	p := g.prog
	last := len(p.Text) - 1
	if last < 0 || (g.opts.MaxTextBytes > 0 && p.Text[last].Len()+codeLen(code) > g.opts.MaxTextBytes) {
		p.Text = append(p.Text, TextRecord{Start: addr})
		last++
	}

	p.Text[last].Codes = append(p.Text[last].Codes, code)
}
