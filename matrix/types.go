// SPDX-License-Identifier: MIT

// Package matrix: the shared Matrix surface implemented by owners (*Dense)
// and borrowers (*View).
package matrix

// Matrix is a rectangular grid of int64 values addressed through a stride.
//
// Entry (i, j) lives at offset i*Stride() + j of the backing storage. For an
// owner Stride() == Cols(); for a view Stride() is inherited from the root
// owner and is usually larger than Cols().
//
// The interface is sealed (unexported methods): only *Dense and *View
// implement it, which lets kernels operate on the flat storage directly.
type Matrix interface {
	// Rows returns the logical row count.
	// Complexity: O(1).
	Rows() int

	// Cols returns the logical column count.
	// Complexity: O(1).
	Cols() int

	// Stride returns the number of storage slots between the starts of
	// consecutive logical rows.
	// Complexity: O(1).
	Stride() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrReleased once the
	// owning storage was released.
	// Complexity: O(1).
	At(i, j int) (int64, error)

	// Set assigns v at (i, j), with the same error contract as At.
	// Complexity: O(1).
	Set(i, j int, v int64) error

	// raw returns storage starting at element (0,0); its length covers
	// (Rows()-1)*Stride() + Cols() slots.
	raw() []int64

	// root returns the owner of the storage (the receiver for *Dense).
	root() *Dense
}

// Compile-time conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*View)(nil)
)

// Release frees m when it is an owner and does nothing for views.
// It is the ownership-agnostic form of (*Dense).Release for code that holds
// a Matrix without knowing which kind it is. A nil m is ignored.
func Release(m Matrix) {
	if d, ok := m.(*Dense); ok && d != nil {
		_ = d.Release() // a double release is the only error; nothing to free then
	}
}
