package sicasm

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	optab := DefaultOpTable()

	tests := []struct {
		raw     string
		label   string
		opcode  string
		operand string
		kind    Kind
	}{
		{"FIRST LDA FIVE", "FIRST", "LDA", "FIVE", KindInstruction},
		{"\tFIRST\tLDA\tFIVE\tload five", "FIRST", "LDA", "FIVE", KindInstruction},
		{"  STA ALPHA", "", "STA", "ALPHA", KindInstruction},
		{"RSUB", "", "RSUB", "", KindInstruction},
		{"COPY start 1000", "COPY", "start", "1000", KindStart},
		{"EOF BYTE C'EOF'", "EOF", "BYTE", "C'EOF'", KindByte},
		{"X FOO BAR", "X", "FOO", "BAR", KindUnknown},
	}

	for _, tt := range tests {
		line, ok := parseLine(1, tt.raw, optab)
		if !ok {
			t.Errorf("%q: skipped", tt.raw)
			continue
		}

		if line.Label != tt.label || line.Opcode != tt.opcode || line.Operand != tt.operand || line.Kind != tt.kind {
			t.Errorf("%q: Expected (%s, %s, %s, %v); got (%s, %s, %s, %v)", tt.raw,
				tt.label, tt.opcode, tt.operand, tt.kind,
				line.Label, line.Opcode, line.Operand, line.Kind)
		}
		if line.Raw != tt.raw {
			t.Errorf("%q: raw text changed to %q", tt.raw, line.Raw)
		}
	}
}

func TestParseLineSkips(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t", ". comment", "   .indented"} {
		if _, ok := parseLine(1, raw, DefaultOpTable()); ok {
			t.Errorf("%q: Expected line to be skipped", raw)
		}
	}
}

func TestReadSource(t *testing.T) {
	lines, err := ReadSource(strings.NewReader("COPY START 1000\r\n\nA RSUB\n B WORD 1"))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"COPY START 1000", "", "A RSUB", " B WORD 1"}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestByteLiteral(t *testing.T) {
	tests := []struct {
		operand string
		typ     byte
		body    string
		ok      bool
	}{
		{"C'EOF'", 'C', "EOF", true},
		{"x'1c'", 'X', "1c", true},
		{"X'F1", 'X', "F1", true},
		{"C''", 'C', "", true},
		{"Z'00'", 0, "", false},
		{"CEOF", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		typ, body, ok := byteLiteral(tt.operand)
		if typ != tt.typ || body != tt.body || ok != tt.ok {
			t.Errorf("%q: Expected (%c, %q, %v); got (%c, %q, %v)", tt.operand, tt.typ, tt.body, tt.ok, typ, body, ok)
		}
	}
}
