// SPDX-License-Identifier: MIT

package crosscheck

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func TestFirstMismatch(t *testing.T) {
	a, err := matrix.NewFromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := a.Clone()
	require.NoError(t, err)

	_, found := firstMismatch(a, b)
	require.False(t, found)

	require.NoError(t, b.Set(1, 0, 40))
	require.NoError(t, b.Set(1, 2, 60))
	mm, found := firstMismatch(a, b)
	require.True(t, found)
	require.Equal(t, Mismatch{Row: 1, Col: 0, Naive: 4, Strassen: 40}, mm)

	wrapped := errors.WithStack(mm)
	require.True(t, errors.Is(wrapped, ErrMismatch))
	var target Mismatch
	require.True(t, errors.As(wrapped, &target))
	require.Equal(t, 1, target.Row)
}
