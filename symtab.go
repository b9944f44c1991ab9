package sicasm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Address is a location in SIC memory.
type Address = uint16

// Symbol is a label bound to the address of the line that defined it.
type Symbol struct {
	Name    string
	Address Address
}

// SymbolTable binds each label once. Symbols are kept in the order they were
// defined.
type SymbolTable struct {
	index   map[string]int
	symbols []Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Define binds name to addr. A name that is already bound keeps its address
// and Define returns an error wrapping ErrDuplicateSymbol.
func (st *SymbolTable) Define(name string, addr Address) error {
	if i, ok := st.index[name]; ok {
		return fmt.Errorf("%w: %s already defined at %04X", ErrDuplicateSymbol, name, st.symbols[i].Address)
	}

	st.index[name] = len(st.symbols)
	st.symbols = append(st.symbols, Symbol{Name: name, Address: addr})
	return nil
}

func (st *SymbolTable) Lookup(name string) (Address, bool) {
	i, ok := st.index[name]
	if !ok {
		return 0, false
	}
	return st.symbols[i].Address, true
}

// Symbols returns a copy of the table in definition order.
func (st *SymbolTable) Symbols() []Symbol {
	return append([]Symbol(nil), st.symbols...)
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// WriteTo writes one "LABEL<TAB>ADDR" line per symbol.
func (st *SymbolTable) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, sym := range st.symbols {
		var m int
		m, err = fmt.Fprintf(bw, "%s\t%04X\n", sym.Name, sym.Address)
		n += int64(m)
		if err != nil {
			return
		}
	}
	err = bw.Flush()
	return
}

// ReadSymbolTable reads the format written by WriteTo.
func ReadSymbolTable(r io.Reader) (*SymbolTable, error) {
	st := NewSymbolTable()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, lineErrorf(n, line, "expected LABEL ADDRESS; got %d fields", len(fields))
		}

		addr, err := strconv.ParseUint(fields[1], 16, 16)
		if err != nil {
			return nil, lineErrorf(n, line, "%w: address %q", ErrMalformedNumber, fields[1])
		}

		if err := st.Define(fields[0], Address(addr)); err != nil {
			return nil, lineError(n, line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return st, nil
}
