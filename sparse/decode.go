// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	opDecode = "Decode"

	headerSep = "="
	fieldSep  = ","
	numFields = 3
)

// tupleCleaner strips every parenthesis from a tuple line.
var tupleCleaner = strings.NewReplacer("(", "", ")", "")

// Decode reads the whole of r and parses it as matrix text.
// On any format problem it returns a *FormatError (matching ErrFormat) and
// no matrix.
func Decode(r io.Reader) (*Matrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, sparseErrorf(opDecode, err)
	}

	return Unmarshal(raw)
}

// Unmarshal parses matrix text:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)   one per line, parentheses optional
//
// A repeated coordinate overwrites the earlier value.
func Unmarshal(data []byte) (*Matrix, error) {
	lines := splitLines(string(data))

	dims := [2]int{}
	for i, name := range [2]string{"rows", "cols"} {
		if i >= len(lines) {
			return nil, sparseErrorf(opDecode, &FormatError{Line: i + 1, Reason: "missing " + name + " header"})
		}
		n, err := parseHeader(i+1, lines[i])
		if err != nil {
			return nil, sparseErrorf(opDecode, err)
		}
		dims[i] = n
	}

	m := newMatrix(dims[0], dims[1], max(len(lines)-2, 0))
	for i := 2; i < len(lines); i++ {
		e, err := parseTuple(i+1, lines[i])
		if err != nil {
			return nil, sparseErrorf(opDecode, err)
		}
		m.entries[e.Key()] = e.Value
	}

	return m, nil
}

// splitLines splits s on '\n', dropping the empty tail left by a final
// newline and any '\r' from CRLF input.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}

	return lines
}

// parseHeader parses "<name>=<int>". The name is not checked.
func parseHeader(lineNo int, line string) (int, error) {
	parts := strings.Split(strings.TrimSpace(line), headerSep)
	if len(parts) != 2 {
		return 0, &FormatError{Line: lineNo, Text: line, Reason: "header must be <name>=<int>"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &FormatError{Line: lineNo, Text: line, Reason: "header value is not an integer", Err: err}
	}
	if n < 0 {
		return 0, &FormatError{Line: lineNo, Text: line, Reason: "header value is negative", Err: ErrInvalidDimensions}
	}

	return n, nil
}

// parseTuple parses "(<row>, <col>, <value>)".
func parseTuple(lineNo int, line string) (Entry, error) {
	parts := strings.Split(strings.TrimSpace(tupleCleaner.Replace(line)), fieldSep)
	if len(parts) != numFields {
		return Entry{}, &FormatError{
			Line:   lineNo,
			Text:   line,
			Reason: fmt.Sprintf("want %d comma-separated fields, got %d", numFields, len(parts)),
		}
	}

	var vals [numFields]int64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		// ParseInt already rejects "1.0"; checking first keeps the reason
		// specific for values written as decimals.
		if strings.Contains(p, ".") {
			return Entry{}, &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("field %d %q is not an integer", i+1, p)}
		}
		bits := strconv.IntSize
		if i == 2 {
			bits = 64
		}
		v, err := strconv.ParseInt(p, 10, bits)
		if err != nil {
			return Entry{}, &FormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf("field %d is not an integer", i+1), Err: err}
		}
		vals[i] = v
	}

	return Entry{Row: int(vals[0]), Col: int(vals[1]), Value: vals[2]}, nil
}
