// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

func TestKron(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{0, 5}, {6, 7}})

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
		{0, 15, 0, 20},
		{18, 21, 24, 28},
	}, k)
}

func TestKronRectangular(t *testing.T) {
	row := MustFromRows(t, [][]float64{{1, 2}})
	col := MustFromRows(t, [][]float64{{3}, {4}})

	k, err := matrix.Kron(row, hide{col})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 6}, {4, 8}}, k)

	_, err = matrix.Kron(nil, col)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
