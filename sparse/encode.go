// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

const opEncode = "Encode"

// Encode writes m as matrix text: the rows/cols header followed by one
// "(row, col, value)" line per stored entry in row-major order.
func Encode(w io.Writer, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf(opEncode, err)
	}
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 64)
	buf = appendHeader(buf, "rows", m.rows)
	buf = appendHeader(buf, "cols", m.cols)
	if _, err := bw.Write(buf); err != nil {
		return sparseErrorf(opEncode, err)
	}
	for _, e := range m.Entries() {
		buf = buf[:0]
		buf = append(buf, '(')
		buf = strconv.AppendInt(buf, int64(e.Row), 10)
		buf = append(buf, ", "...)
		buf = strconv.AppendInt(buf, int64(e.Col), 10)
		buf = append(buf, ", "...)
		buf = strconv.AppendInt(buf, e.Value, 10)
		buf = append(buf, ")\n"...)
		if _, err := bw.Write(buf); err != nil {
			return sparseErrorf(opEncode, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return sparseErrorf(opEncode, err)
	}
	return nil
}

// Marshal returns the matrix text of m.
func Marshal(m *Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func appendHeader(buf []byte, name string, n int) []byte {
	buf = append(buf, name...)
	buf = append(buf, '=')
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, '\n')
}
