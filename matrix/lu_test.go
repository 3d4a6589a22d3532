// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

func TestLU(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, 3}, {6, 3}})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {1.5, 1}}, L)
	CompareExact(t, [][]float64{{4, 3}, {0, -1.5}}, U)
}

func TestLUReconstructs(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{2, -1, -2},
		{-4, 6, 3},
		{-4, -2, 8},
	})
	L, U, err := matrix.LU(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {-2, 1, 0}, {-2, -1, 1}}, L)
	CompareExact(t, [][]float64{{2, -1, -2}, {0, 4, -1}, {0, 0, 3}}, U)

	back, err := matrix.Mul(L, U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(back, a, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLURejects(t *testing.T) {
	_, _, err := matrix.LU(MustFromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, _, err = matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShape)

	_, _, err = matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
