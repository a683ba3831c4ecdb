// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func TestOp_ApplyAndReversed(t *testing.T) {
	for _, op := range []matrix.Op{matrix.OpAdd, matrix.OpSub, matrix.OpSubReversed} {
		t.Run(op.String(), func(t *testing.T) {
			for _, xy := range [][2]int64{{3, 5}, {-7, 2}, {0, 0}} {
				x, y := xy[0], xy[1]
				require.Equal(t, op.Apply(x, y), op.Reversed().Apply(y, x))
			}
		})
	}
	require.EqualValues(t, 2, matrix.OpSubReversed.Apply(3, 5))
	require.EqualValues(t, -2, matrix.OpSub.Apply(3, 5))
}

func TestCombine(t *testing.T) {
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{10, 20}, {30, 40}})

	for _, tc := range []struct {
		op       matrix.Op
		expected [][]int64
	}{
		{matrix.OpAdd, [][]int64{{11, 22}, {33, 44}}},
		{matrix.OpSub, [][]int64{{-9, -18}, {-27, -36}}},
		{matrix.OpSubReversed, [][]int64{{9, 18}, {27, 36}}},
	} {
		t.Run(tc.op.String(), func(t *testing.T) {
			out, err := matrix.Combine(tc.op, a, b)
			require.NoError(t, err)
			requireRows(t, tc.expected, out)
		})
	}
	// Inputs untouched.
	requireRows(t, [][]int64{{1, 2}, {3, 4}}, a)
	requireRows(t, [][]int64{{10, 20}, {30, 40}}, b)
}

func TestCombine_Views(t *testing.T) {
	m := grid4(t)
	tl, err := matrix.Quadrant(m, 0, 0)
	require.NoError(t, err)
	br, err := matrix.Quadrant(m, 1, 1)
	require.NoError(t, err)

	out, err := matrix.Combine(matrix.OpSub, br, tl)
	require.NoError(t, err)
	requireRows(t, [][]int64{{10, 10}, {10, 10}}, out)
}

func TestCombine_ShapeMismatch(t *testing.T) {
	_, err := matrix.Combine(matrix.OpAdd, MustDense(t, 2, 2), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Combine(matrix.OpAdd, nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCombine_UnknownOp(t *testing.T) {
	a, b := MustDense(t, 2, 2), MustDense(t, 2, 2)
	_, err := matrix.Combine(matrix.Op(9), a, b)
	require.ErrorIs(t, err, matrix.ErrUnknownOp)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.CombineInPlace(matrix.Op(9), a, b), matrix.ErrUnknownOp)
}

func TestCombineInPlace_IntoQuadrant(t *testing.T) {
	out := MustDense(t, 4, 4)
	src := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	tr, err := matrix.Quadrant(out, 0, 1)
	require.NoError(t, err)

	require.NoError(t, matrix.CopyInto(src, tr))
	require.NoError(t, matrix.CombineInPlace(matrix.OpAdd, src, tr))
	require.NoError(t, matrix.CombineInPlace(matrix.OpSubReversed, src, tr)) // src - dst

	requireRows(t, [][]int64{
		{0, 0, -1, -2},
		{0, 0, -3, -4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, out)
}

func TestCombineInPlace_SelfAlias(t *testing.T) {
	m := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.CombineInPlace(matrix.OpAdd, m, m))
	requireRows(t, [][]int64{{2, 4}, {6, 8}}, m)
	require.NoError(t, matrix.CombineInPlace(matrix.OpSub, m, m))
	requireRows(t, [][]int64{{0, 0}, {0, 0}}, m)
}

func TestCopyInto_Mismatch(t *testing.T) {
	require.ErrorIs(t, matrix.CopyInto(MustDense(t, 2, 2), MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
}
