package sicasm

import (
	"errors"
	"strings"
	"testing"
)

func TestByteC(t *testing.T) {
	test(t, "EOF BYTE C'EOF'", "454F46")
	test(t, " BYTE c'A'", "41")
}

func TestByteX(t *testing.T) {
	test(t, "INPUT BYTE X'1C'", "1C")
	test(t, " BYTE X'F1F2'", "F1F2")
	test(t, " BYTE 5", "")
}

func TestWord(t *testing.T) {
	test(t, "FIVE WORD 6", "000006")
	test(t, " WORD 4096", "001000")
	test(t, " WORD -1", "FFFFFF")
	test(t, " WORD 16777215", "FFFFFF")
}

func TestNoObjectCode(t *testing.T) {
	test(t, "BUF RESW 3", "")
	test(t, "BUF RESB 3", "")
	test(t, " END", "")
	test(t, " NOP", "")
}

func TestInstructionOperands(t *testing.T) {
	test(t, " RSUB", "4C0000")
	test(t, " J NOWHERE", "3C0000")
	test(t, " td  DEV", "E00000")
}

func TestPass2ForwardReference(t *testing.T) {
	prog := assemble(t, `
      START 2000
FIRST LDA   FIVE
FIVE  WORD  5
      J     FIRST
      J     FIVE
`, Options{})

	expected := []string{"", "002003", "000005", "3C2000", "3C2003"}
	for i, l := range prog.Listing {
		if l.Code != expected[i] {
			t.Errorf("line %d: Expected %s; got %s", i, expected[i], l.Code)
		}
	}
}

func TestPass2DuplicateStillAssembles(t *testing.T) {
	prog := assemble(t, ` START 0
A    LDA  B
A    WORD 1
B    WORD 2
     STA  A`, Options{})

	if len(prog.Warnings) != 1 || !errors.Is(prog.Warnings[0], ErrDuplicateSymbol) {
		t.Errorf("Expected one duplicate symbol warning; got %v", prog.Warnings)
	}

	if got := prog.Listing[4].Code; got != "0C0000" {
		t.Errorf("Expected STA A to use the first A; got %s", got)
	}
	if got := prog.TextRecords(); len(got) != 1 || got[0] != "T^000000^000006^000001^000002^0C0000" {
		t.Errorf("Unexpected text records %v", got)
	}
}

func TestPass2Header(t *testing.T) {
	prog := assemble(t, copyProgram, Options{})

	if prog.Name != "COPY" || prog.Start != 0x1000 || prog.Entry != 0x1000 {
		t.Errorf("Expected COPY at 1000; got %s at %04X entry %04X", prog.Name, prog.Start, prog.Entry)
	}
	if prog.Length != 0x1D {
		t.Errorf("Expected length 1D; got %X", prog.Length)
	}
}

func TestPass2WithoutStart(t *testing.T) {
	prog := assemble(t, "A LDA B\nB WORD 1", Options{})

	if h := prog.HeaderRecord(); h != "H^      ^000000^000006" {
		t.Errorf("Unexpected header %s", h)
	}
	if e := prog.EndRecord(); e != "E^000000" {
		t.Errorf("Unexpected end %s", e)
	}
}

func TestPass2SecondStartIgnored(t *testing.T) {
	prog := assemble(t, "ONE START 100\nA RSUB\nTWO START 200", Options{})

	if prog.Name != "ONE" || prog.Entry != 0x100 {
		t.Errorf("Expected the first START to win; got %s %04X", prog.Name, prog.Entry)
	}
}

func TestPass2TextSplit(t *testing.T) {
	src := " START 0\n" + strings.Repeat(" LDA X\n", 11) + "X WORD 1"

	prog := assemble(t, src, Options{MaxTextBytes: 30})
	records := prog.TextRecords()
	if len(records) != 2 {
		t.Fatalf("Expected 2 Text records; got %v", records)
	}
	if prog.Text[0].Len() != 30 || prog.Text[1].Start != 0x1E {
		t.Errorf("Unexpected split %v", records)
	}
	if records[1] != "T^00001E^000021^000001" {
		t.Errorf("Unexpected second record %s", records[1])
	}

	prog = assemble(t, src, Options{})
	if len(prog.Text) != 1 || prog.Text[0].Len() != 36 {
		t.Errorf("Expected one unbounded record; got %v", prog.TextRecords())
	}
}

func TestPass2Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"not a number", " START 0\nA WORD FIVE", 2},
		{"hex word", " START 0\nA WORD 0x10", 2},
		{"too big", " START 0\nA WORD 16777216", 2},
		{"too small", " START 0\nA WORD -8388609", 2},
		{"missing", " START 0\n\n WORD", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(strings.NewReader(tt.src), DefaultOpTable(), Options{})
			if !errors.Is(err, ErrMalformedNumber) {
				t.Fatalf("Expected ErrMalformedNumber; got %v", err)
			}

			var lerr *LineError
			if !errors.As(err, &lerr) || lerr.Line != tt.line {
				t.Errorf("Expected error on line %d; got %v", tt.line, err)
			}
		})
	}
}

// test assembles a program made of a single line and checks its object
// code.
func test(t *testing.T, assembly, expected string) {
	t.Helper()

	prog, err := Assemble(strings.NewReader(assembly), DefaultOpTable(), Options{})
	if err != nil {
		t.Error(err)
		return
	}

	if len(prog.Listing) != 1 {
		t.Errorf("Expected 1 line; got %d", len(prog.Listing))
		return
	}

	if actual := prog.Listing[0].Code; actual != expected {
		t.Errorf("%q: Expected %q; got %q", assembly, expected, actual)
	}
}
