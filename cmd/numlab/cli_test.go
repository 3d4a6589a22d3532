// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/matrixio"
)

// invoke runs the command line and returns exit code, stdout and stderr.
func invoke(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(context.Background(), argv, &out, &errb)
	return code, out.String(), errb.String()
}

func writeMatrix(t *testing.T, dir, name string, rows [][]float64) string {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, matrixio.WriteFile(path, m))
	return path
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := invoke(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, out, _ = invoke(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version)
}

func TestBadUsage(t *testing.T) {
	code, _, errOut := invoke(t, "transmogrify")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage:")
}

func TestMultiply(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.yaml", [][]float64{{1, 2}, {3, 4}})
	b := writeMatrix(t, dir, "b.txt", [][]float64{{5, 6}, {7, 8}})

	for _, v := range []string{"standard", "strassen"} {
		code, out, errOut := invoke(t, "multiply", "--variant="+v, a, b)
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "[19, 22]\n[43, 50]\n", out)
	}
}

func TestMultiplyToFile(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.json", [][]float64{{1, 0}, {0, 1}})
	b := writeMatrix(t, dir, "b.yaml.zst", [][]float64{{2, 3}, {4, 5}})
	out := filepath.Join(dir, "c.txt.gz")

	code, stdout, errOut := invoke(t, "multiply", "--parallel", "--out="+out, a, b)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, stdout)

	c, err := matrixio.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 3}, {4, 5}}, c.ToRows())
}

func TestMultiplyRejectsNonPowerOfTwo(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.yaml", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	code, _, errOut := invoke(t, "multiply", a, a)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "command failed")

	code, _, _ = invoke(t, "multiply", "--variant=winograd", a, a)
	assert.Equal(t, 2, code)
}

func TestElementwiseAndKron(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.yaml", [][]float64{{1, 2}})
	b := writeMatrix(t, dir, "b.yaml", [][]float64{{3, 5}})

	_, out, _ := invoke(t, "add", a, b)
	assert.Equal(t, "[4, 7]\n", out)
	_, out, _ = invoke(t, "sub", a, b)
	assert.Equal(t, "[-2, -3]\n", out)
	_, out, _ = invoke(t, "kron", a, b)
	assert.Equal(t, "[3, 5, 6, 10]\n", out)
}

func TestLU(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.yaml", [][]float64{{4, 3}, {6, 3}})

	code, out, errOut := invoke(t, "lu", a)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "L:\n[1, 0]\n[1.5, 1]\nU:\n[4, 3]\n[0, -1.5]\n", out)

	missing := filepath.Join(dir, "missing.yaml")
	code, _, _ = invoke(t, "lu", missing)
	assert.Equal(t, 1, code)
}

func TestIntegrate(t *testing.T) {
	code, out, errOut := invoke(t, "integrate", "simpson", "--n=2", "poly3", "0", "2")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "-2\n", out)

	code, out, _ = invoke(t, "integrate", "romberg", "sin", "0", "3.141592653589793")
	require.Equal(t, 0, code)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-6)

	code, _, _ = invoke(t, "integrate", "simpson", "--n=3", "sin", "0", "1")
	assert.Equal(t, 1, code)

	code, _, _ = invoke(t, "integrate", "trapezoid", "tan", "0", "1")
	assert.Equal(t, 2, code)
}

func TestRoot(t *testing.T) {
	code, out, errOut := invoke(t, "root", "bisection", "sq2", "0", "2")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "1.41421")

	code, out, errOut = invoke(t, "root", "newton", "--", "sq2", "-3", "0")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "-1.41421")

	code, _, _ = invoke(t, "root", "falsi", "recip", "0", "1")
	assert.Equal(t, 1, code)
}

func TestSortAndSearch(t *testing.T) {
	for _, m := range []string{"bubble", "insertion", "selection", "merge"} {
		code, out, errOut := invoke(t, "sort", m, "--", "3", "-1", "2.5")
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "-1 2.5 3\n", out, m)
	}

	_, out, _ := invoke(t, "search", "binary", "3", "1", "2", "3")
	assert.Equal(t, "found at index 2\n", out)
	_, out, _ = invoke(t, "search", "linear", "7", "4", "9")
	assert.Equal(t, "not found\n", out)

	code, _, _ := invoke(t, "search", "interpolation", "1", "3", "2", "1")
	assert.Equal(t, 2, code)

	code, _, _ = invoke(t, "sort", "merge", "1", "x")
	assert.Equal(t, 2, code)
}

func TestCacheSharedAcrossOperands(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.yaml", [][]float64{{2}})
	code, out, _ := invoke(t, "multiply", a, a)
	require.Equal(t, 0, code)
	assert.Equal(t, "[4]\n", out)

	require.NoError(t, os.Remove(a))
	code, _, _ = invoke(t, "multiply", a, a)
	assert.Equal(t, 1, code)
}
