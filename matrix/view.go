// SPDX-License-Identifier: MIT

// Package matrix - View: non-owning windows over Dense storage.
//
// Purpose:
//   - Zero-copy sub-matrices for recursive descent (Quadrant) and general
//     rectangular windows (Window).
//   - Keep row pitch separate from logical width: a view narrows Rows/Cols
//     but keeps the stride of its root owner, so a quadrant of a quadrant
//     still lands on the right storage slots.
//
// Lifetime:
//   - A view never outlives its root owner. Views have no Release method;
//     after the owner is released every view accessor reports ErrReleased.

package matrix

import "fmt"

const (
	ctxViewAt  = "View.At"
	ctxViewSet = "View.Set"
)

// View is a non-owning rectangular window into a Dense (shared storage).
type View struct {
	r, c   int     // logical extent
	stride int     // row pitch inherited from the root owner
	data   []int64 // storage starting at the view's (0,0)
	owner  *Dense  // storage owner; checked for release on every access
}

var _ fmt.Stringer = (*View)(nil)

// Rows returns the view height. Complexity: O(1).
func (v *View) Rows() int { return v.r }

// Cols returns the view width. Complexity: O(1).
func (v *View) Cols() int { return v.c }

// Stride returns the row pitch inherited from the root owner. Complexity: O(1).
func (v *View) Stride() int { return v.stride }

func (v *View) raw() []int64 { return v.data }

func (v *View) root() *Dense { return v.owner }

func (v *View) indexOf(i, j int) (int, error) {
	if v.owner.released.Load() {
		return 0, ErrReleased
	}
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, ErrOutOfRange
	}

	return i*v.stride + j, nil
}

// At reads element (i,j) of the view, translated through the inherited stride.
// Errors: ErrOutOfRange, ErrReleased.
// Complexity: O(1).
func (v *View) At(i, j int) (int64, error) {
	idx, err := v.indexOf(i, j)
	if err != nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxViewAt, i, j, err)
	}

	return v.data[idx], nil
}

// Set writes element (i,j) through to the owner's storage.
// Errors: ErrOutOfRange, ErrReleased.
// Complexity: O(1).
func (v *View) Set(i, j int, val int64) error {
	idx, err := v.indexOf(i, j)
	if err != nil {
		return fmt.Errorf("%s(%d,%d): %w", ctxViewSet, i, j, err)
	}
	v.data[idx] = val

	return nil
}

// Window returns a view of rows×cols starting at (r0,c0) of this view.
func (v *View) Window(r0, c0, rows, cols int) (*View, error) {
	return window(v, r0, c0, rows, cols)
}

// String implements fmt.Stringer with the same row format as Dense.
func (v *View) String() string {
	if v.owner.released.Load() {
		return "<released>"
	}

	return formatRows(v)
}

// Window creates a no-copy window [r0:r0+rows, c0:c0+cols) over m's storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix sharing the owner's buffer; writes through.
//
// Errors:
//   - ErrBadShape when the window is empty or does not fit; ErrReleased.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Window(r0, c0, rows, cols int) (*View, error) {
	return window(m, r0, c0, rows, cols)
}

// window is the shared implementation for owners and views.
// Implementation:
//   - Stage 1: validate the parent and that the window fits.
//   - Stage 2: reslice the parent storage at r0*stride + c0, capped at the
//     last slot the window can address.
func window(m Matrix, r0, c0, rows, cols int) (*View, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opWindow, err)
	}
	if r0 < 0 || c0 < 0 || rows < 1 || cols < 1 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return nil, matrixErrorf(opWindow, fmt.Errorf("(%d,%d,%d,%d) in %dx%d: %w",
			r0, c0, rows, cols, m.Rows(), m.Cols(), ErrBadShape))
	}
	stride := m.Stride()
	start := r0*stride + c0
	end := start + (rows-1)*stride + cols

	return &View{
		r:      rows,
		c:      cols,
		stride: stride,
		data:   m.raw()[start:end:end],
		owner:  m.root(),
	}, nil
}

// Quadrant returns the half-size view selected by rowBlock, colBlock ∈ {0,1}.
// MAIN DESCRIPTION:
//   - (0,0) top-left, (0,1) top-right, (1,0) bottom-left, (1,1) bottom-right.
//   - The view starts at (rowBlock*rows/2, colBlock*cols/2) of m and keeps
//     m's stride.
//
// Errors:
//   - ErrOddShape when m has an odd row or column count.
//   - ErrOutOfRange when a block selector is not 0 or 1.
//   - ErrNilMatrix / ErrReleased from validation.
//
// Complexity:
//   - Time O(1), Space O(1).
func Quadrant(m Matrix, rowBlock, colBlock int) (*View, error) {
	if err := ValidateEven(m); err != nil {
		return nil, matrixErrorf(opQuadrant, err)
	}
	if rowBlock < 0 || rowBlock > 1 || colBlock < 0 || colBlock > 1 {
		return nil, matrixErrorf(opQuadrant, fmt.Errorf("block (%d,%d): %w", rowBlock, colBlock, ErrOutOfRange))
	}
	hr, hc := m.Rows()/2, m.Cols()/2

	return window(m, rowBlock*hr, colBlock*hc, hr, hc)
}

// quadrants returns the four quadrant views of an even-shaped m in the
// order top-left, top-right, bottom-left, bottom-right.
func quadrants(m Matrix) (tl, tr, bl, br *View, err error) {
	if tl, err = Quadrant(m, 0, 0); err != nil {
		return
	}
	if tr, err = Quadrant(m, 0, 1); err != nil {
		return
	}
	if bl, err = Quadrant(m, 1, 0); err != nil {
		return
	}
	br, err = Quadrant(m, 1, 1)

	return
}
