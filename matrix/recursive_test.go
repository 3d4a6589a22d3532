// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

var variants = []matrix.Variant{matrix.Standard, matrix.Strassen}

func TestMultiplyMatchesBruteForce(t *testing.T) {
	for _, v := range variants {
		for _, n := range []int{1, 2, 4, 8, 16} {
			for seed := int64(0); seed < 3; seed++ {
				t.Run(fmt.Sprintf("%s/n=%d/seed=%d", v, n, seed), func(t *testing.T) {
					a := RandomIntDense(t, n, seed)
					b := RandomIntDense(t, n, seed+100)
					got, err := matrix.Multiply(a, b, v)
					require.NoError(t, err)
					assert.True(t, matrix.Equal(BruteForce(t, a, b), got))
				})
			}
		}
	}
}

func TestVariantsAgreeOnIntegers(t *testing.T) {
	a := RandomIntDense(t, 16, 7)
	b := RandomIntDense(t, 16, 8)

	std, err := matrix.Multiply(a, b, matrix.Standard)
	require.NoError(t, err)
	str, err := matrix.Multiply(a, b, matrix.Strassen)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(std, str), "integer inputs must agree exactly")
}

func TestVariantsAgreeOnFloats(t *testing.T) {
	a := RandomFloatDense(t, 16, 11)
	b := RandomFloatDense(t, 16, 12)

	std, err := matrix.Multiply(a, b, matrix.Standard)
	require.NoError(t, err)
	str, err := matrix.Multiply(a, b, matrix.Strassen)
	require.NoError(t, err)
	ok, err := matrix.AllClose(str, std, 1e-9, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMultiplyIdentityAndZero(t *testing.T) {
	a := RandomIntDense(t, 8, 3)
	I := MustIdentity(t, 8)
	Z := MustDense(t, 8, 8)

	for _, v := range variants {
		left, err := matrix.Multiply(I, a, v)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(a, left), "%s: I·A", v)

		right, err := matrix.Multiply(a, I, v)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(a, right), "%s: A·I", v)

		zero, err := matrix.Multiply(a, Z, v)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(Z, zero), "%s: A·0", v)
	}
}

func TestMultiplyBaseCase(t *testing.T) {
	a := MustFromRows(t, [][]float64{{3.5}})
	b := MustFromRows(t, [][]float64{{-2}})
	for _, v := range variants {
		c, err := matrix.Multiply(a, b, v)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{-7}}, c)
	}
}

func TestMultiplyFourByFourExample(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	a := MustFromRows(t, rows)
	want := BruteForce(t, a, a)

	std, err := matrix.Multiply(a, a, matrix.Standard)
	require.NoError(t, err)
	str, err := matrix.Multiply(a, a, matrix.Strassen)
	require.NoError(t, err)

	assert.True(t, matrix.Equal(want, std))
	assert.True(t, matrix.Equal(want, str))
	assert.True(t, matrix.Equal(std, str))
	CompareExact(t, rows, a) // operands untouched
}

func TestMultiplyRejects(t *testing.T) {
	m3 := MustDense(t, 3, 3)
	m4 := MustDense(t, 4, 4)
	m8 := MustDense(t, 8, 8)

	for _, v := range variants {
		_, err := matrix.Multiply(m3, m3, v)
		require.ErrorIs(t, err, matrix.ErrNotPowerOfTwo, v.String())

		_, err = matrix.Multiply(m4, m8, v)
		require.ErrorIs(t, err, matrix.ErrShape, v.String())
		var de *matrix.DimensionError
		require.True(t, errors.As(err, &de))

		_, err = matrix.Multiply(nil, m4, v)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, v.String())
	}
}

func TestMultiplyUnknownVariant(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, v := range []matrix.Variant{0, 3, -1} {
		_, err := matrix.Multiply(m, m, v)
		require.ErrorIs(t, err, matrix.ErrUnknownVariant)
	}
	// variant check precedes operand validation
	_, err := matrix.Multiply(nil, nil, matrix.Variant(9))
	require.ErrorIs(t, err, matrix.ErrUnknownVariant)
}

func TestMultiplyFallbackOperands(t *testing.T) {
	a := RandomIntDense(t, 4, 21)
	b := RandomIntDense(t, 4, 22)
	for _, v := range variants {
		fast, err := matrix.Multiply(a, b, v)
		require.NoError(t, err)
		slow, err := matrix.Multiply(hide{a}, hide{b}, v)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(fast, slow))
	}
}

func TestMultiplyContextParallelEqualsSequential(t *testing.T) {
	a := RandomFloatDense(t, 32, 31)
	b := RandomFloatDense(t, 32, 32)

	for _, v := range variants {
		for _, workers := range []int{1, 2, 8} {
			t.Run(fmt.Sprintf("%s/workers=%d", v, workers), func(t *testing.T) {
				seq, err := matrix.Multiply(a, b, v)
				require.NoError(t, err)
				par, err := matrix.MultiplyContext(context.Background(), a, b, v,
					matrix.WithParallel(),
					matrix.WithParallelThreshold(2),
					matrix.WithMaxWorkers(workers),
				)
				require.NoError(t, err)
				assert.True(t, matrix.Equal(seq, par), "parallel result must be bit-identical")
			})
		}
	}
}

func TestMultiplyContextCancelled(t *testing.T) {
	a := RandomIntDense(t, 16, 41)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, v := range variants {
		out, err := matrix.MultiplyContext(ctx, a, a, v)
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, out)

		out, err = matrix.MultiplyContext(ctx, a, a, v,
			matrix.WithParallel(), matrix.WithParallelThreshold(1))
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, out)
	}
}

func TestMultiplyContextOptionViolations(t *testing.T) {
	m := MustDense(t, 2, 2)
	for name, opt := range map[string]matrix.Option{
		"threshold 0":  matrix.WithParallelThreshold(0),
		"workers -1":   matrix.WithMaxWorkers(-1),
		"threshold -5": matrix.WithParallelThreshold(-5),
	} {
		_, err := matrix.MultiplyContext(context.Background(), m, m, matrix.Standard, opt)
		require.ErrorIs(t, err, matrix.ErrOptionViolation, name)
	}
}

func TestMultiplyContextLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := MustIdentity(t, 4)

	_, err := matrix.MultiplyContext(context.Background(), m, m, matrix.Strassen, matrix.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "multiply started")
	assert.Contains(t, out, "multiply completed")
	assert.Contains(t, out, "variant=strassen")
	assert.Contains(t, out, "size=4")
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]matrix.Variant{
		"standard":           matrix.Standard,
		"DC":                 matrix.Standard,
		"divide-and-conquer": matrix.Standard,
		" Strassen ":         matrix.Strassen,
	} {
		got, err := matrix.ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := matrix.ParseVariant("naive")
	require.ErrorIs(t, err, matrix.ErrUnknownVariant)

	assert.Equal(t, "standard", matrix.Standard.String())
	assert.Equal(t, "strassen", matrix.Strassen.String())
	assert.Equal(t, "Variant(7)", matrix.Variant(7).String())
	assert.Equal(t, 8, matrix.Standard.Products())
	assert.Equal(t, 7, matrix.Strassen.Products())
	assert.False(t, matrix.Variant(0).Valid())
}

func TestMultiplyFacades(t *testing.T) {
	a := RandomIntDense(t, 4, 51)
	want := BruteForce(t, a, a)

	std, err := matrix.MultiplyStandard(a, a)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(want, std))

	str, err := matrix.MultiplyStrassen(a, a)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(want, str))
}

// Each split issues exactly Variant.Products() recursive calls and the 1×1
// base case issues none, so an n×n call costs Σ_{k=0..log2 n} p^k steps.
func TestRecursionCallCount(t *testing.T) {
	cases := []struct {
		name string
		n    int
		v    matrix.Variant
		want int64
	}{
		{"1x1 standard", 1, matrix.Standard, 1},
		{"1x1 strassen", 1, matrix.Strassen, 1},
		{"2x2 standard", 2, matrix.Standard, 1 + 8},
		{"2x2 strassen", 2, matrix.Strassen, 1 + 7},
		{"4x4 standard", 4, matrix.Standard, 1 + 8 + 64},
		{"4x4 strassen", 4, matrix.Strassen, 1 + 7 + 49},
		{"8x8 strassen", 8, matrix.Strassen, 1 + 7 + 49 + 343},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := RandomIntDense(t, tc.n, 61)
			b := RandomIntDense(t, tc.n, 62)
			got, calls, err := matrix.CountedMultiply_TestOnly(a, b, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, calls)
			assert.True(t, matrix.Equal(BruteForce(t, a, b), got))

			// forking does not change the amount of work
			_, calls, err = matrix.CountedMultiply_TestOnly(a, b, tc.v,
				matrix.WithParallel(), matrix.WithParallelThreshold(1), matrix.WithMaxWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, tc.want, calls)
		})
	}
}

func TestProductCountGuard(t *testing.T) {
	require.NoError(t, matrix.SplitProducts_TestOnly(matrix.Strassen, 7))
	require.NoError(t, matrix.SplitProducts_TestOnly(matrix.Standard, 8))
	require.Error(t, matrix.SplitProducts_TestOnly(matrix.Strassen, 8))
	require.Error(t, matrix.SplitProducts_TestOnly(matrix.Standard, 7))
}
