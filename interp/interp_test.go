// SPDX-License-Identifier: MIT
package interp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/interp"
)

func TestNewtonForwardQuadratic(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}

	v, coeffs, err := interp.NewtonForward(x, y, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v, 1e-12)
	require.Len(t, coeffs, 4)
	for i, want := range []float64{0, 1, 1, 0} {
		assert.InDelta(t, want, coeffs[i], 1e-12, "c%d", i)
	}
}

func TestFitReproducesSamples(t *testing.T) {
	x := []float64{1, 1.5, 2, 2.5, 3}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi*xi*xi - 2*xi + 1
	}
	p, err := interp.Fit(x, y)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Degree())

	for i, xi := range x {
		got, err := p.At(xi)
		require.NoError(t, err)
		assert.InDelta(t, y[i], got, 1e-9)
	}
	// cubic data: a degree-4 fit is exact in between as well
	got, err := p.At(2.2)
	require.NoError(t, err)
	assert.InDelta(t, 2.2*2.2*2.2-2*2.2+1, got, 1e-9)
}

func TestFitDoesNotAliasInput(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{1, 3}
	p, err := interp.Fit(x, y)
	require.NoError(t, err)
	y[0], x[1] = 100, 50

	v, err := p.At(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)

	c := p.Coefficients()
	c[0] = -1
	assert.InDelta(t, 1.0, p.Coefficients()[0], 0)
}

func TestNewtonForwardErrors(t *testing.T) {
	_, _, err := interp.NewtonForward([]float64{0, 1}, []float64{0}, 0.5)
	require.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, _, err = interp.NewtonForward([]float64{0}, []float64{0}, 0)
	require.ErrorIs(t, err, interp.ErrTooFewPoints)

	_, _, err = interp.NewtonForward([]float64{0, 1, 3}, []float64{0, 1, 2}, 1)
	require.ErrorIs(t, err, interp.ErrUnevenSpacing)

	_, _, err = interp.NewtonForward([]float64{2, 1, 0}, []float64{0, 1, 2}, 1)
	require.ErrorIs(t, err, interp.ErrUnevenSpacing)

	_, _, err = interp.NewtonForward([]float64{0, 1, 2}, []float64{0, 1, 2}, 2.5)
	require.ErrorIs(t, err, interp.ErrOutOfRange)

	_, _, err = interp.NewtonForward([]float64{0, 1, 2}, []float64{0, 1, 2}, math.NaN())
	require.ErrorIs(t, err, interp.ErrOutOfRange)
}

func TestFloatSpacingAccepted(t *testing.T) {
	x := []float64{0, 0.1, 0.2, 0.3}
	y := []float64{1, 1.1, 1.2, 1.3}
	v, _, err := interp.NewtonForward(x, y, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, v, 1e-9)
}

func ExampleNewtonForward() {
	v, c, _ := interp.NewtonForward([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, 1.5)
	fmt.Println(v, c)
	// Output:
	// 2.25 [0 1 1 0]
}
