package sicasm

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed optab.txt
var defaultOpTable string

// Kind says how a mnemonic is assembled. It is decided once, when a line is
// parsed, so neither pass compares mnemonic strings.
type Kind uint8

const (
	KindUnknown     Kind = iota
	KindInstruction      // 3-byte machine instruction
	KindStart
	KindEnd
	KindWord
	KindResw
	KindResb
	KindByte
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindInstruction: "instruction",
	KindStart:       "START",
	KindEnd:         "END",
	KindWord:        "WORD",
	KindResw:        "RESW",
	KindResb:        "RESB",
	KindByte:        "BYTE",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// OpEntry is one row of the operation table. Directives have Machine set to
// false and no opcode byte.
type OpEntry struct {
	Mnemonic string
	Opcode   byte
	Machine  bool
	Kind     Kind
}

// OpTable maps mnemonics to how they assemble. Lookups ignore case.
type OpTable struct {
	entries map[string]OpEntry
}

var directives = []OpEntry{
	{Mnemonic: "START", Kind: KindStart},
	{Mnemonic: "END", Kind: KindEnd},
	{Mnemonic: "WORD", Kind: KindWord},
	{Mnemonic: "RESW", Kind: KindResw},
	{Mnemonic: "RESB", Kind: KindResb},
	{Mnemonic: "BYTE", Kind: KindByte},
}

// NewOpTable returns a table that knows the assembler directives and no
// machine instructions.
func NewOpTable() *OpTable {
	t := &OpTable{entries: make(map[string]OpEntry)}
	for _, d := range directives {
		t.entries[d.Mnemonic] = d
	}
	return t
}

// DefaultOpTable returns a fresh table holding the directives and the SIC
// instruction set.
func DefaultOpTable() *OpTable {
	t, err := LoadOpTable(strings.NewReader(defaultOpTable))
	if err != nil {
		panic("sicasm: embedded operation table: " + err.Error())
	}
	return t
}

// LoadOpTable reads "MNEMONIC OPCODE" records. Lines that do not have
// exactly two fields are skipped, as are records that try to redefine a
// directive.
func LoadOpTable(r io.Reader) (*OpTable, error) {
	t := NewOpTable()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}

		opcode, err := strconv.ParseUint(fields[1], 16, 8)
		if err != nil {
			return nil, lineErrorf(n, line, "%w: opcode %q", ErrMalformedNumber, fields[1])
		}

		t.Add(fields[0], byte(opcode))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// Add defines a machine instruction. It reports false if mnemonic names a
// directive, which is left untouched.
func (t *OpTable) Add(mnemonic string, opcode byte) bool {
	key := strings.ToUpper(mnemonic)
	if e, ok := t.entries[key]; ok && !e.Machine {
		return false
	}

	t.entries[key] = OpEntry{
		Mnemonic: key,
		Opcode:   opcode,
		Machine:  true,
		Kind:     KindInstruction,
	}
	return true
}

// Lookup finds mnemonic, ignoring case.
func (t *OpTable) Lookup(mnemonic string) (OpEntry, bool) {
	e, ok := t.entries[strings.ToUpper(mnemonic)]
	return e, ok
}

// Classify returns the kind of mnemonic, KindUnknown if the table does not
// know it.
func (t *OpTable) Classify(mnemonic string) Kind {
	if e, ok := t.Lookup(mnemonic); ok {
		return e.Kind
	}
	return KindUnknown
}

// Len counts machine instructions and directives.
func (t *OpTable) Len() int {
	return len(t.entries)
}

// usedOps records the machine instructions a program references, in the
// order they are first seen.
type usedOps struct {
	seen    map[string]bool
	entries []OpEntry
}

func (u *usedOps) add(e OpEntry) {
	if !e.Machine {
		return
	}
	if u.seen == nil {
		u.seen = make(map[string]bool)
	}
	if u.seen[e.Mnemonic] {
		return
	}

	u.seen[e.Mnemonic] = true
	u.entries = append(u.entries, e)
}
