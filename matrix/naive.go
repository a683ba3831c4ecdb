// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Direct O(r·k·c) multiplication. Serves as the Strassen base case below
//     the cutoff and, independently, as the correctness oracle.
//
// Determinism:
//   - Fixed i→k→j loop order; integer arithmetic wraps modulo 2^64, so every
//     evaluation order yields the same bits.

package matrix

// Mul returns the product a×b as a new heap owner.
// MAIN DESCRIPTION:
//   - Entry (i,j) accumulates Σ_k a[i,k]·b[k,j] into a zero-filled result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(a.Rows·a.Cols·b.Cols), Space O(a.Rows·b.Cols).
func Mul(a, b Matrix) (*Dense, error) {
	return MulWith(Heap, a, b)
}

// MulWith is Mul with an explicit allocator for the result.
func MulWith(alloc Allocator, a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := AllocateZeroed(alloc, a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulKernel(a, b, res)

	return res, nil
}

// MulInto overwrites dst with a×b. dst must be a.Rows × b.Cols and may be a view.
// dst must not share storage with a or b.
// Complexity: Time O(a.Rows·a.Cols·b.Cols), Space O(1).
func MulInto(a, b, dst Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMul, err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	d, ds := dst.raw(), dst.Stride()
	for i := 0; i < dst.Rows(); i++ {
		clear(d[i*ds : i*ds+dst.Cols()])
	}
	mulKernel(a, b, dst)

	return nil
}

// mulKernel accumulates dst += a×b over strided storage.
// Implementation:
//   - i→k→j: the inner loop streams one row of b against one row of dst.
//   - Zero entries of a are skipped.
func mulKernel(a, b, dst Matrix) {
	ad, as := a.raw(), a.Stride()
	bd, bs := b.raw(), b.Stride()
	dd, ds := dst.raw(), dst.Stride()
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()

	var (
		i, k, j int
		av      int64
	)
	for i = 0; i < rows; i++ {
		aRow := ad[i*as : i*as+inner]
		dRow := dd[i*ds : i*ds+cols]
		for k = 0; k < inner; k++ {
			av = aRow[k]
			if av == 0 {
				continue // skip zero for performance
			}
			bRow := bd[k*bs : k*bs+cols]
			for j = range dRow {
				dRow[j] += av * bRow[j]
			}
		}
	}
}
