// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Extend odd-dimensioned operands to even dimensions by one zero row,
//     one zero column, or both, so they can be split into quadrants.
//   - Trim a padded result back to its logical shape as a zero-copy view.
//
// Contract:
//   - Every pad allocates a NEW owner; the source is never modified.
//   - Existing entries are copied verbatim; only the introduced row/column
//     is zero-filled (allocation may return dirty memory, so nothing else
//     relies on zeroed storage).

package matrix

import "fmt"

// Padding names which dimensions were extended.
type Padding uint8

const (
	// PaddingNone means both dimensions were already even.
	PaddingNone Padding = iota
	// PaddingRows means one zero row was appended.
	PaddingRows
	// PaddingCols means one zero column was appended.
	PaddingCols
	// PaddingBoth means one zero row and one zero column were appended.
	PaddingBoth
)

// String returns the lowercase padding kind (used as a metric label).
func (p Padding) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingRows:
		return "rows"
	case PaddingCols:
		return "cols"
	case PaddingBoth:
		return "both"
	default:
		return fmt.Sprintf("Padding(%d)", uint8(p))
	}
}

// PaddingFor reports which padding m needs to reach even dimensions.
func PaddingFor(m Matrix) Padding {
	oddR, oddC := m.Rows()%2 != 0, m.Cols()%2 != 0
	switch {
	case oddR && oddC:
		return PaddingBoth
	case oddR:
		return PaddingRows
	case oddC:
		return PaddingCols
	default:
		return PaddingNone
	}
}

// PadRows returns a heap copy of m with one extra zero row.
func PadRows(m Matrix) (*Dense, error) { return pad(Heap, m, 1, 0) }

// PadCols returns a heap copy of m with one extra zero column.
func PadCols(m Matrix) (*Dense, error) { return pad(Heap, m, 0, 1) }

// PadBoth returns a heap copy of m with one extra zero row and column.
func PadBoth(m Matrix) (*Dense, error) { return pad(Heap, m, 1, 1) }

// PadToEven pads m on the heap as required by PaddingFor(m).
// See PadToEvenWith.
func PadToEven(m Matrix) (*Dense, Padding, error) {
	return PadToEvenWith(Heap, m)
}

// PadToEvenWith returns an even-dimensioned owner holding m's entries in its
// top-left corner, together with the padding kind that was applied.
// MAIN DESCRIPTION:
//   - PaddingNone still returns a fresh copy so the caller always owns the
//     result and releases it uniformly.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrAllocation.
//
// Complexity:
//   - Time O((r+1)*(c+1)), Space O((r+1)*(c+1)).
func PadToEvenWith(alloc Allocator, m Matrix) (*Dense, Padding, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, PaddingNone, matrixErrorf(opPad, err)
	}
	kind := PaddingFor(m)
	var extraR, extraC int
	switch kind {
	case PaddingRows:
		extraR = 1
	case PaddingCols:
		extraC = 1
	case PaddingBoth:
		extraR, extraC = 1, 1
	}
	out, err := pad(alloc, m, extraR, extraC)
	if err != nil {
		return nil, PaddingNone, err
	}

	return out, kind, nil
}

// pad allocates (r+extraR)×(c+extraC), copies m into the top-left corner and
// zeroes the introduced trailing columns and rows.
func pad(alloc Allocator, m Matrix, extraR, extraC int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := Allocate(alloc, r+extraR, c+extraC)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}

	src, ss := m.raw(), m.Stride()
	dst, ds := out.data, out.stride
	for i := 0; i < r; i++ {
		row := dst[i*ds : (i+1)*ds]
		copy(row[:c], src[i*ss:i*ss+c])
		clear(row[c:])
	}
	clear(dst[r*ds:])

	return out, nil
}

// Trim returns the top-left rows×cols window of m, dropping padding.
// The result is a view; it stays valid only while m's owner is alive.
// Errors: ErrBadShape when the requested extent exceeds m; ErrNilMatrix, ErrReleased.
func Trim(m Matrix, rows, cols int) (*View, error) {
	v, err := window(m, 0, 0, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTrim, err)
	}

	return v, nil
}
