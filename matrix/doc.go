// SPDX-License-Identifier: MIT

// Package matrix multiplies square int64 matrices with two strategies and
// keeps them honest against each other.
//
// The package provides:
//
//   - Dense, an owning row-major buffer with an explicit stride (row pitch),
//     allocated through a pluggable Allocator and released exactly once.
//   - View, a non-owning rectangular window (Quadrant, Window) that shares
//     the storage of its root Dense and inherits its stride, so views of
//     views address correctly at any depth.
//   - Elementwise kernels (Combine, CombineInPlace, CopyInto) over the ops
//     add, subtract and subtract-reversed.
//   - Padding helpers (PadRows, PadCols, PadBoth, PadToEven, Trim) that
//     extend odd shapes with a zero row and/or column.
//   - Mul, the direct O(n³) product, used as recursion base case and oracle.
//   - Engine and Strassen, the seven-product divide-and-conquer product with
//     in-place reassembly into quadrant views of the output.
//   - Generator, an explicitly seeded source of bounded random entries.
//
// Ownership:
//
//	owner, _ := matrix.NewDense(4, 4)
//	defer owner.Release()
//	tl, _ := matrix.Quadrant(owner, 0, 0) // no copy; never released
//
// Strassen operands must be square and of equal dimension. Odd dimensions
// are padded to even on both operands and the result is trimmed back, so
// Strassen(A, B) and Mul(A, B) always have the same shape and entries.
// Arithmetic wraps modulo 2^64 in both algorithms.
package matrix
