// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, the textbook matrix product,
// transpose and scalar scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other Matrix implementations
//     go through At/Set with a fixed i→j order.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial accumulator value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddRows   = "AddRows"
	opSubRows   = "SubRows"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opKron      = "Kron"
	opLU        = "LU"
	opSplit     = "Split"
	opJoin      = "Join"
	opMultiply  = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addDense computes a + b for two equal-shape *Dense into a fresh *Dense.
// Unexported kernel shared by Add and the recursive multipliers (shapes are
// validated by the callers).
func addDense(a, b *Dense) *Dense {
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range out.data { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + b.data[idx]
	}
	return out
}

// subDense computes a - b for two equal-shape *Dense into a fresh *Dense.
func subDense(a, b *Dense) *Dense {
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range out.data {
		out.data[idx] = a.data[idx] - b.data[idx]
	}
	return out
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Fast path if both are *Dense (single flat loop, shared with the
//     recursive kernels); otherwise At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (as *DimensionError), wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if sign > 0 {
				return addDense(da, db), nil
			}
			return subDense(da, db), nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// AddRows adds two row-slice literals, checking rectangularity of both first.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrRaggedMatrix (either operand),
//     ErrDimensionMismatch (shapes differ).
func AddRows(a, b [][]float64) (*Dense, error) { return addSubRows(a, b, +1, opAddRows) }

// SubRows subtracts two row-slice literals; same contract as AddRows.
func SubRows(a, b [][]float64) (*Dense, error) { return addSubRows(a, b, -1, opSubRows) }

// addSubRows backs AddRows/SubRows: ingest both literals (ragged check), then
// reuse the dense kernels.
func addSubRows(a, b [][]float64, sign float64, opTag string) (*Dense, error) {
	da, err := NewFromRows(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := NewFromRows(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err = ValidateSameShape(da, db); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if sign > 0 {
		return addDense(da, db), nil
	}

	return subDense(da, db), nil
}

// Mul performs the textbook matrix product C = A × B for any conformable shapes.
// It is also the brute-force reference the recursive multipliers are tested against.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return mulDense(da, db), nil
		}
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// mulDense is the row-major i→k→j product of two conformable *Dense.
func mulDense(a, b *Dense) *Dense {
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: dm.r, c: dm.c, data: make([]float64, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}
