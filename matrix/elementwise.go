// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise combination of equally-shaped matrices, either into a fresh
//     owner (Combine) or accumulated in place into an existing owner or view
//     (CombineInPlace), plus a strided copy (CopyInto).
//   - One private kernel (ewApply) shared by every entry point; it walks rows
//     through each operand's own stride, with a flat fast-path when both
//     operands are contiguous.
//
// Aliasing:
//   - CombineInPlace reads src and writes dst element by element at the same
//     (i,j). src and dst must not be distinct windows over overlapping
//     storage; passing the very same matrix as both is well-defined.

package matrix

import "fmt"

// Op is a binary element operation.
type Op uint8

const (
	// OpAdd computes x + y.
	OpAdd Op = iota
	// OpSub computes x - y.
	OpSub
	// OpSubReversed computes y - x ("right minus left" without negating).
	OpSubReversed
)

// String returns the op name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpSubReversed:
		return "subReversed"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Apply evaluates op(x, y).
func (op Op) Apply(x, y int64) int64 {
	switch op {
	case OpSub:
		return x - y
	case OpSubReversed:
		return y - x
	default:
		return x + y
	}
}

// Reversed returns the op with swapped arguments: Reversed().Apply(y, x) == Apply(x, y).
func (op Op) Reversed() Op {
	switch op {
	case OpSub:
		return OpSubReversed
	case OpSubReversed:
		return OpSub
	default:
		return op
	}
}

func (op Op) valid() bool { return op <= OpSubReversed }

// Combine returns a new heap owner with entry (i,j) = op(a[i,j], b[i,j]).
// See CombineWith.
func Combine(op Op, a, b Matrix) (*Dense, error) {
	return CombineWith(Heap, op, a, b)
}

// CombineWith returns a new owner from alloc with entry (i,j) = op(a[i,j], b[i,j]).
// MAIN DESCRIPTION:
//   - Copies b into a fresh owner, then accumulates a into it with the
//     reversed op: out = op.Reversed()(b, a) = op(a, b).
//
// Errors:
//   - ErrUnknownOp, ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func CombineWith(alloc Allocator, op Op, a, b Matrix) (*Dense, error) {
	if !op.valid() {
		return nil, matrixErrorf(opCombine, fmt.Errorf("%v: %w", op, ErrUnknownOp))
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	out, err := Allocate(alloc, b.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	copyKernel(b, out)
	ewApply(op.Reversed(), a, out)

	return out, nil
}

// CombineInPlace writes dst[i,j] = op(dst[i,j], src[i,j]) for every entry.
// MAIN DESCRIPTION:
//   - Accumulates partial results straight into a pre-existing destination
//     (typically a quadrant view of an output) without allocating.
//
// Errors:
//   - ErrUnknownOp, ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CombineInPlace(op Op, src, dst Matrix) error {
	if !op.valid() {
		return matrixErrorf(opInPlace, fmt.Errorf("%v: %w", op, ErrUnknownOp))
	}
	if err := ValidateBinarySameShape(src, dst); err != nil {
		return matrixErrorf(opInPlace, err)
	}
	ewApply(op, src, dst)

	return nil
}

// CopyInto overwrites dst with src. Shapes must match; strides may differ.
// Complexity: Time O(r*c), Space O(1).
func CopyInto(src, dst Matrix) error {
	if err := ValidateBinarySameShape(src, dst); err != nil {
		return matrixErrorf(opCopyInto, err)
	}
	copyKernel(src, dst)

	return nil
}

// ewApply computes dst[i,j] = op(dst[i,j], src[i,j]). Shapes must match.
// Implementation:
//   - Stage 1: both contiguous → single flat loop over r*c slots.
//   - Stage 2: otherwise row by row, each operand through its own stride.
//
// The op switch sits outside the inner loop.
func ewApply(op Op, src, dst Matrix) {
	sd, ss := src.raw(), src.Stride()
	dd, ds := dst.raw(), dst.Stride()
	r, c := dst.Rows(), dst.Cols()

	if ss == c && ds == c {
		ewRow(op, sd[:r*c], dd[:r*c])
		return
	}
	for i := 0; i < r; i++ {
		ewRow(op, sd[i*ss:i*ss+c], dd[i*ds:i*ds+c])
	}
}

// ewRow applies op over one contiguous run; len(src) == len(dst).
func ewRow(op Op, src, dst []int64) {
	src = src[:len(dst)] // bounds-check hint
	switch op {
	case OpAdd:
		for j := range dst {
			dst[j] += src[j]
		}
	case OpSub:
		for j := range dst {
			dst[j] -= src[j]
		}
	case OpSubReversed:
		for j := range dst {
			dst[j] = src[j] - dst[j]
		}
	}
}
