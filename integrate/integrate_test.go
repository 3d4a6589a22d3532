// SPDX-License-Identifier: MIT
package integrate_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/integrate"
)

func square(x float64) float64 { return x * x }
func cube(x float64) float64   { return x * x * x }

func TestTrapezoid(t *testing.T) {
	got, err := integrate.Trapezoid(square, 0, 1, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-6)

	// linear functions are exact
	got, err = integrate.Trapezoid(func(x float64) float64 { return 2*x + 1 }, 0, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-12)
}

func TestSimpson(t *testing.T) {
	got, err := integrate.Simpson(cube, 0, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-12)

	got, err = integrate.Simpson(math.Sin, 0, math.Pi, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-7)
}

func TestRomberg(t *testing.T) {
	got, err := integrate.Romberg(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-6)

	got, err = integrate.Romberg(math.Exp, 0, 1, integrate.WithTolerance(1e-10), integrate.WithMaxIterations(20))
	require.NoError(t, err)
	assert.InDelta(t, math.E-1, got, 1e-9)
}

func TestRombergNoConvergence(t *testing.T) {
	_, err := integrate.Romberg(math.Sin, 0, math.Pi, integrate.WithMaxIterations(2))
	require.ErrorIs(t, err, integrate.ErrNoConvergence)
}

func TestRombergNilOptionIgnored(t *testing.T) {
	got, err := integrate.Romberg(func(x float64) float64 { return x }, 0, 1, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

func TestRombergIterationCap(t *testing.T) {
	_, err := integrate.Romberg(square, 0, 1, integrate.WithMaxIterations(integrate.MaxIterations+1))
	require.ErrorIs(t, err, integrate.ErrOptionViolation)

	_, err = integrate.Romberg(square, 0, 1, integrate.WithMaxIterations(64))
	require.ErrorIs(t, err, integrate.ErrOptionViolation)

	got, err := integrate.Romberg(square, 0, 1, integrate.WithMaxIterations(integrate.MaxIterations))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-9)
}

func TestRejects(t *testing.T) {
	_, err := integrate.Trapezoid(square, 0, 1, 0)
	require.ErrorIs(t, err, integrate.ErrInvalidDivisions)

	_, err = integrate.Trapezoid(square, 1, 1, 10)
	require.ErrorIs(t, err, integrate.ErrInvalidInterval)

	_, err = integrate.Simpson(square, 0, 1, 3)
	require.ErrorIs(t, err, integrate.ErrOddDivisions)

	_, err = integrate.Simpson(square, 0, 1, -2)
	require.ErrorIs(t, err, integrate.ErrInvalidDivisions)

	_, err = integrate.Simpson(square, 2, 1, 4)
	require.ErrorIs(t, err, integrate.ErrInvalidInterval)

	_, err = integrate.Romberg(nil, 0, 1)
	require.ErrorIs(t, err, integrate.ErrNilFunc)

	_, err = integrate.Romberg(square, 0, math.Inf(1))
	require.ErrorIs(t, err, integrate.ErrInvalidInterval)

	_, err = integrate.Romberg(square, 0, 1, integrate.WithTolerance(0))
	require.ErrorIs(t, err, integrate.ErrOptionViolation)

	_, err = integrate.Romberg(square, 0, 1, integrate.WithMaxIterations(1))
	require.ErrorIs(t, err, integrate.ErrOptionViolation)
}

func ExampleSimpson() {
	v, _ := integrate.Simpson(cube, 0, 2, 4)
	fmt.Printf("%.6f\n", v)
	// Output:
	// 4.000000
}

func ExampleRomberg() {
	v, _ := integrate.Romberg(math.Sin, 0, math.Pi)
	fmt.Printf("%.6f\n", v)
	// Output:
	// 2.000000
}
