package sicasm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteIntermediate(t *testing.T) {
	in := pass1(t, "COPY START 1000\nFIRST  LDA FIVE\n\nFIVE WORD 5\n   RSUB", Options{})

	out := bytes.NewBuffer(nil)
	if err := WriteIntermediate(out, in.Lines); err != nil {
		t.Fatal(err)
	}

	expected := "1000\tCOPY START 1000\n" +
		"1000\tFIRST  LDA FIVE\n" +
		"1003\tFIVE WORD 5\n" +
		"1006\t   RSUB\n"
	if out.String() != expected {
		t.Errorf("Expected %q; got %q", expected, out.String())
	}
}

func TestReadIntermediate(t *testing.T) {
	optab := DefaultOpTable()
	lines, err := ReadIntermediate(strings.NewReader(
		"1000\tCOPY START 1000\n"+
			"1000\tFIRST  LDA FIVE\n"+
			"\n"+
			"1003 FIVE WORD 5\n"+
			"1006\t   RSUB\n"), optab)
	if err != nil {
		t.Fatal(err)
	}

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines; got %d", len(lines))
	}

	five := lines[2]
	if five.Address != 0x1003 || five.Label != "FIVE" || five.Kind != KindWord || five.Operand != "5" {
		t.Errorf("Unexpected line %+v", five)
	}
	if rsub := lines[3]; rsub.Label != "" || rsub.Kind != KindInstruction || rsub.Op.Opcode != 0x4C {
		t.Errorf("Unexpected line %+v", rsub)
	}
}

func TestIntermediateRoundTripAssembles(t *testing.T) {
	in := pass1(t, copyProgram, Options{})

	buf := bytes.NewBuffer(nil)
	if err := WriteIntermediate(buf, in.Lines); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadIntermediate(buf, DefaultOpTable())
	if err != nil {
		t.Fatal(err)
	}

	fromFile, err := Pass2(&Intermediate{Lines: lines, Symbols: in.Symbols}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	direct, err := Pass2(in, Options{})
	if err != nil {
		t.Fatal(err)
	}

	a, b := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	fromFile.WriteOutput(a)
	direct.WriteOutput(b)
	if a.String() != b.String() {
		t.Errorf("Expected\n%s\ngot\n%s", b, a)
	}
}

func TestReadIntermediateBadAddress(t *testing.T) {
	_, err := ReadIntermediate(strings.NewReader("1000\tA RSUB\nXYZW\tB RSUB\n"), DefaultOpTable())
	if !errors.Is(err, ErrMalformedNumber) {
		t.Errorf("Expected ErrMalformedNumber; got %v", err)
	}
}
