// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func grid4(t *testing.T) *matrix.Dense {
	t.Helper()
	return MustRows(t, [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
}

func TestQuadrant_Selection(t *testing.T) {
	m := grid4(t)
	for _, tc := range []struct {
		name     string
		rb, cb   int
		expected [][]int64
	}{
		{"top-left", 0, 0, [][]int64{{1, 2}, {5, 6}}},
		{"top-right", 0, 1, [][]int64{{3, 4}, {7, 8}}},
		{"bottom-left", 1, 0, [][]int64{{9, 10}, {13, 14}}},
		{"bottom-right", 1, 1, [][]int64{{11, 12}, {15, 16}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q, err := matrix.Quadrant(m, tc.rb, tc.cb)
			require.NoError(t, err)
			require.Equal(t, 2, q.Rows())
			require.Equal(t, 2, q.Cols())
			require.Equal(t, 4, q.Stride(), "views keep the parent's row pitch")
			requireRows(t, tc.expected, q)
		})
	}
}

func TestQuadrant_Errors(t *testing.T) {
	odd := MustDense(t, 3, 4)
	_, err := matrix.Quadrant(odd, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOddShape)

	m := grid4(t)
	_, err = matrix.Quadrant(m, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Quadrant(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Quadrant(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQuadrant_NestedUsesRootStride(t *testing.T) {
	n := 8
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, int64(i*100+j)))
		}
	}
	br, err := matrix.Quadrant(m, 1, 1) // rows/cols 4..7
	require.NoError(t, err)
	tr, err := matrix.Quadrant(br, 0, 1) // rows 4..5, cols 6..7
	require.NoError(t, err)
	bl, err := matrix.Quadrant(tr, 1, 0) // row 5, col 6
	require.NoError(t, err)

	require.Equal(t, n, tr.Stride())
	require.Equal(t, n, bl.Stride())
	requireRows(t, [][]int64{{406, 407}, {506, 507}}, tr)
	requireRows(t, [][]int64{{506}}, bl)
}

func TestView_WritesThrough(t *testing.T) {
	m := grid4(t)
	q, err := matrix.Quadrant(m, 1, 0)
	require.NoError(t, err)
	require.NoError(t, q.Set(1, 1, -1))

	v, err := m.At(3, 1)
	require.NoError(t, err)
	require.EqualValues(t, -1, v)

	_, err = q.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestWindow(t *testing.T) {
	m := grid4(t)
	w, err := m.Window(1, 1, 3, 2)
	require.NoError(t, err)
	requireRows(t, [][]int64{{6, 7}, {10, 11}, {14, 15}}, w)

	inner, err := w.Window(2, 1, 1, 1)
	require.NoError(t, err)
	requireRows(t, [][]int64{{15}}, inner)

	for _, bad := range [][4]int{
		{0, 0, 0, 1},
		{0, 0, 5, 1},
		{3, 3, 2, 1},
		{-1, 0, 1, 1},
	} {
		_, err = m.Window(bad[0], bad[1], bad[2], bad[3])
		require.ErrorIs(t, err, matrix.ErrBadShape, "%v", bad)
	}
}

func TestView_NonAliasingAfterRelease(t *testing.T) {
	budget := matrix.NewBudgetAllocator(nil, 0)
	parent, err := matrix.Allocate(budget, 4, 4)
	require.NoError(t, err)
	src := grid4(t)
	require.NoError(t, matrix.CopyInto(src, parent))

	var views []matrix.Matrix
	for rb := 0; rb < 2; rb++ {
		for cb := 0; cb < 2; cb++ {
			q, err := matrix.Quadrant(parent, rb, cb)
			require.NoError(t, err)
			views = append(views, q)
		}
	}
	for _, v := range views {
		matrix.Release(v)
	}
	requireSameMatrix(t, src, parent)
	require.EqualValues(t, 0, budget.Stats().Frees)

	require.NoError(t, parent.Release())
	require.ErrorIs(t, parent.Release(), matrix.ErrReleased)
	require.EqualValues(t, 1, budget.Stats().Frees)

	// Views are invalid once their owner is gone.
	_, err = views[0].At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	_, err = matrix.Quadrant(parent, 0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
}

func TestTrim(t *testing.T) {
	m := grid4(t)
	v, err := matrix.Trim(m, 3, 3)
	require.NoError(t, err)
	requireRows(t, [][]int64{{1, 2, 3}, {5, 6, 7}, {9, 10, 11}}, v)

	_, err = matrix.Trim(m, 5, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
