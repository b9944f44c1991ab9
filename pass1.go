package sicasm

import (
	"strconv"

	"github.com/golang/glog"
)

const maxAddress = 0xFFFF

// Pass1 gives every line of src an address and builds the symbol table. It
// keeps no state between calls; the same input always yields the same
// result.
//
// A malformed START address or RESW/RESB count stops the pass. A label
// defined twice is reported on Intermediate.Warnings and keeps its first
// address.
func Pass1(src []string, optab *OpTable, opts Options) (*Intermediate, error) {
	s := resolver{
		optab: optab,
		opts:  opts,
		out:   &Intermediate{Symbols: NewSymbolTable()},
	}

	for i, raw := range src {
		line, ok := parseLine(i+1, raw, optab)
		if !ok {
			continue
		}

		if err := s.resolve(line); err != nil {
			return nil, err
		}
	}

	s.out.End = s.locctr
	s.out.Used = s.used.entries

	glog.V(1).Infof("pass 1: %d lines, %d symbols, %04X-%04X",
		len(s.out.Lines), s.out.Symbols.Len(), s.out.Start, s.locctr)

	return s.out, nil
}

type resolver struct {
	optab   *OpTable
	opts    Options
	locctr  int
	started bool
	used    usedOps
	out     *Intermediate
}

func (s *resolver) resolve(line SourceLine) error {
	if !s.started {
		s.started = true

		if line.Kind == KindStart {
			start, err := startAddress(&line)
			if err != nil {
				return err
			}

			s.locctr = int(start)
			s.out.Start = start
			s.emit(line)
			return nil
		}
	}

	if s.locctr > maxAddress {
		return line.errorf("%w: %X", ErrAddressOverflow, s.locctr)
	}

	if line.Label != "" {
		if err := s.out.Symbols.Define(line.Label, Address(s.locctr)); err != nil {
			warning := lineError(line.Number, line.Raw, err)
			glog.Warning(warning)
			s.out.Warnings = append(s.out.Warnings, warning)
		}
	}

	s.emit(line)
	s.used.add(line.Op)

	n, err := line.size(s.opts)
	if err != nil {
		return err
	}

	s.locctr += n
	if s.locctr > maxAddress+1 {
		return line.errorf("%w: %s ends at %X", ErrAddressOverflow, line.Opcode, s.locctr)
	}

	return nil
}

func (s *resolver) emit(line SourceLine) {
	glog.V(2).Infof("%04X\t%s", s.locctr, line.Raw)
	s.out.Lines = append(s.out.Lines, IntermediateLine{
		Address:    Address(s.locctr),
		SourceLine: line,
	})
}

// startAddress reads the hex operand of START. No operand means 0.
func startAddress(line *SourceLine) (Address, error) {
	if line.Operand == "" {
		return 0, nil
	}

	addr, err := strconv.ParseUint(line.Operand, 16, 16)
	if err != nil {
		return 0, line.errorf("%w: START address %q", ErrMalformedNumber, line.Operand)
	}
	return Address(addr), nil
}
