package sicasm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// SourceLine is one statement of a SIC program. Its shape comes from the
// number of whitespace separated tokens: three or more are label, opcode and
// operand; two are opcode and operand; one is a bare opcode.
type SourceLine struct {
	Number  int // 1-based line in the source
	Label   string
	Opcode  string
	Operand string
	Kind    Kind
	Op      OpEntry
	Raw     string
}

// ReadSource splits r into lines, dropping line terminators.
func ReadSource(r io.Reader) (lines []string, err error) {
	reader := bufio.NewReader(r)

	for {
		var line string
		line, err = reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}

		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseLine reports false for blank lines and comment lines (starting with
// a period), which take no address.
func parseLine(number int, raw string, optab *OpTable) (line SourceLine, ok bool) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], ".") {
		return
	}

	line = SourceLine{Number: number, Raw: raw}

	switch {
	case len(tokens) > 2:
		line.Label, line.Opcode, line.Operand = tokens[0], tokens[1], tokens[2]
	case len(tokens) == 2:
		line.Opcode, line.Operand = tokens[0], tokens[1]
	default:
		line.Opcode = tokens[0]
	}

	if e, found := optab.Lookup(line.Opcode); found {
		line.Op = e
		line.Kind = e.Kind
	}

	return line, true
}

// size is the number of bytes the line occupies, which is how far it moves
// the location counter.
func (l *SourceLine) size(opts Options) (int, error) {
	switch l.Kind {
	case KindInstruction, KindWord:
		return 3, nil

	case KindResw:
		n, err := l.count()
		return 3 * n, err

	case KindResb:
		return l.count()

	case KindByte:
		typ, body, ok := byteLiteral(l.Operand)
		if ok && typ == 'C' {
			return len(body), nil
		}
		if ok && typ == 'X' && opts.ExactHexBytes {
			return (len(body) + 1) / 2, nil
		}
		return 1, nil
	}

	return 0, nil
}

func (l *SourceLine) count() (int, error) {
	n, err := strconv.ParseUint(l.Operand, 10, 16)
	if err != nil {
		return 0, l.errorf("%w: %s count %q", ErrMalformedNumber, l.Opcode, l.Operand)
	}
	return int(n), nil
}

func (l *SourceLine) errorf(format string, a ...interface{}) error {
	return lineErrorf(l.Number, l.Raw, format, a...)
}

// byteLiteral splits a BYTE operand like C'EOF' or X'F1' into its type
// letter (upper case) and the text between the quotes.
func byteLiteral(operand string) (typ byte, body string, ok bool) {
	if len(operand) < 2 || operand[1] != '\'' {
		return
	}

	typ = operand[0]
	if 'a' <= typ && typ <= 'z' {
		typ -= 'a' - 'A'
	}
	if typ != 'C' && typ != 'X' {
		return 0, "", false
	}

	body = strings.TrimSuffix(operand[2:], "'")
	return typ, body, true
}
