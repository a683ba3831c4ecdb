// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Block format rules.
var (
	_fmtBlockOpen  = "\n" + strings.Repeat("=", 31) + "\n"
	_fmtBlockClose = strings.Repeat("=", 34) + "\n"
)

// Format writes m to w as a titled block:
//
//	===============================
//	columns: C
//	rows: R
//	v00,v01,...
//	...
//	==================================
//
// preceded by an empty line. Values are comma-separated without spaces.
// Errors: ErrNilMatrix, ErrReleased, or the first write error from w.
func Format(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(_fmtBlockOpen)
	bw.WriteString("columns: ")
	bw.WriteString(strconv.Itoa(m.Cols()))
	bw.WriteString("\nrows: ")
	bw.WriteString(strconv.Itoa(m.Rows()))
	bw.WriteByte('\n')

	var buf []byte
	d, s := m.raw(), m.Stride()
	for i := 0; i < m.Rows(); i++ {
		buf = buf[:0]
		for j, v := range d[i*s : i*s+m.Cols()] {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, v, 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	bw.WriteString(_fmtBlockClose)

	if err := bw.Flush(); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}
