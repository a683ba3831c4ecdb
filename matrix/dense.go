// SPDX-License-Identifier: MIT

// Package matrix - Dense owner storage (row-major, explicit stride) & safe accessors.
//
// Purpose:
//   - Provide an owning row-major buffer with the index formula i*stride + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make release explicit and single-shot: Release hands storage back to the
//     allocator exactly once; later calls report ErrReleased.
//
// Complexity quicksheet:
//   - Allocate: O(1) + allocator; AllocateZeroed/NewDense: O(r*c); At/Set: O(1);
//     Copy/Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strings"

	"go.uber.org/atomic"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an owning row-major matrix.
//   - r,c hold the logical dimensions; stride is the row pitch (== c for owners).
//   - data is the storage obtained from alloc (len == r*stride).
//   - released flips once on Release; every accessor checks it.
type Dense struct {
	r, c     int
	stride   int
	data     []int64
	alloc    Allocator
	released atomic.Bool
}

var _ fmt.Stringer = (*Dense)(nil)

// Allocate returns an r×c owner whose contents are uninitialized.
// MAIN DESCRIPTION:
//   - The cheapest constructor: callers that overwrite every entry (copies,
//     padding, reassembly) skip the zero-fill.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject shapes whose byte size overflows int (ErrAllocation).
//   - Stage 3: obtain rows*cols slots from alloc (Heap when nil).
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation (oversized shape or allocator).
//
// Complexity:
//   - Time O(1) plus allocator cost, Space O(r*c).
func Allocate(alloc Allocator, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opAllocate, ErrInvalidDimensions)
	}
	if cols > maxElements/rows {
		return nil, matrixErrorf(opAllocate, fmt.Errorf("%dx%d: %w", rows, cols, ErrAllocation))
	}
	if alloc == nil {
		alloc = Heap
	}
	buf, err := alloc.Alloc(rows * cols)
	if err != nil {
		return nil, matrixErrorf(opAllocate, err)
	}

	return &Dense{r: rows, c: cols, stride: cols, data: buf, alloc: alloc}, nil
}

// AllocateZeroed returns an r×c owner with every entry set to zero.
// Pooled buffers are cleared explicitly; heap buffers arrive zeroed already
// but are cleared too, keeping the contract independent of the allocator.
// Complexity: Time O(r*c), Space O(r*c).
func AllocateZeroed(alloc Allocator, rows, cols int) (*Dense, error) {
	m, err := Allocate(alloc, rows, cols)
	if err != nil {
		return nil, err
	}
	clear(m.data)

	return m, nil
}

// NewDense creates an r×c zero matrix on the heap.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return AllocateZeroed(Heap, rows, cols)
}

// Zeros is an alias of NewDense kept for readability at call sites.
func Zeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// Identity returns the n×n identity matrix.
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = 1
	}

	return m, nil
}

// NewFromRows builds an owner from a rectangular [][]int64 (rows copied).
// Errors: ErrInvalidDimensions on empty input, ErrDimensionMismatch on ragged rows.
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opAllocate, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := Allocate(Heap, r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opAllocate, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Copy returns a new heap owner with the same shape and entries as src.
// src may be an owner or a view; the copy is always contiguous (stride == cols).
func Copy(src Matrix) (*Dense, error) {
	return CopyWith(Heap, src)
}

// CopyWith is Copy with an explicit allocator.
// Complexity: Time O(r*c), Space O(r*c).
func CopyWith(alloc Allocator, src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	out, err := Allocate(alloc, src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	copyKernel(src, out)

	return out, nil
}

// Equal reports whether a and b have the same dimensions and entries.
// Strides may differ (an owner can equal a view). Nil or released operands
// are never equal.
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	ad, as := a.raw(), a.Stride()
	bd, bs := b.raw(), b.Stride()
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		ar := ad[i*as : i*as+c]
		br := bd[i*bs : i*bs+c]
		for j := range ar {
			if ar[j] != br[j] {
				return false
			}
		}
	}

	return true
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Stride returns the row pitch; for owners it equals Cols. Complexity: O(1).
func (m *Dense) Stride() int { return m.stride }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released.Load() }

func (m *Dense) raw() []int64 { return m.data }

func (m *Dense) root() *Dense { return m }

// indexOf bounds-checks (row,col) and returns the storage offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.released.Load() {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.stride + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange, ErrReleased (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange, ErrReleased (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a heap copy of m (see Copy).
func (m *Dense) Clone() (*Dense, error) { return Copy(m) }

// Release hands the storage back to the allocator that produced it.
// MAIN DESCRIPTION:
//   - Single-shot: the first call frees, later calls return ErrReleased and
//     free nothing, so shared memory is never returned twice.
//
// Behavior highlights:
//   - Views taken from m become invalid: their accessors report ErrReleased.
//   - Safe to use as `defer m.Release()`.
//
// Complexity:
//   - Time O(1) plus allocator Free.
func (m *Dense) Release() error {
	if !m.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	buf := m.data
	m.data = nil
	if m.alloc != nil {
		m.alloc.Free(buf)
	}

	return nil
}

// String implements fmt.Stringer ("[a, b]\n" per row).
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.released.Load() {
		return "<released>"
	}

	return formatRows(m)
}

// ToRows materializes m as [][]int64 (copy). Intended for tests and printing.
func ToRows(m Matrix) ([][]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, s := m.raw(), m.Stride()
	out := make([][]int64, m.Rows())
	for i := range out {
		out[i] = append([]int64(nil), d[i*s:i*s+m.Cols()]...)
	}

	return out, nil
}

// formatRows renders m in the bracketed row format shared by Dense and View.
func formatRows(m Matrix) string {
	var b strings.Builder
	d, s := m.raw(), m.Stride()
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			fmt.Fprintf(&b, "%d", d[i*s+j])
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// copyKernel copies src into dst row by row. Shapes must already match.
func copyKernel(src, dst Matrix) {
	sd, ss := src.raw(), src.Stride()
	dd, ds := dst.raw(), dst.Stride()
	r, c := dst.Rows(), dst.Cols()
	if ss == c && ds == c {
		copy(dd[:r*c], sd[:r*c]) // both contiguous: one memmove
		return
	}
	for i := 0; i < r; i++ {
		copy(dd[i*ds:i*ds+c], sd[i*ss:i*ss+c])
	}
}
