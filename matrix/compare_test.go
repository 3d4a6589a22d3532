// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

func TestEqual(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000001}})

	assert.True(t, matrix.Equal(a, b))
	assert.True(t, matrix.Equal(a, hide{b}))
	assert.False(t, matrix.Equal(a, c))
	assert.False(t, matrix.Equal(a, MustDense(t, 2, 3)))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal(nil, nil))
}

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000001}})

	ok, err := matrix.AllClose(a, c, 1e-6, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, c, 0, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, c, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidTolerance)

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 1, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
