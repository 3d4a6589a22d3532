// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/power-of-two checks here.
//  - Return sentinels or *DimensionError (never wrapped twice) so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → PowerOfTwo → Shape),
//    which fixes the error priority documented in errors.go.

package matrix

import (
	"fmt"
	"math/bits"
)

// Validator tags used as DimensionError.Op.
const (
	tagSameShape   = "ValidateSameShape"
	tagSquare      = "ValidateSquare"
	tagEvenSquare  = "ValidateEvenSquare"
	tagPowerOfTwo  = "ValidatePowerOfTwo"
	tagMulCompat   = "ValidateMulCompatible"
	tagRecursive   = "ValidateRecursiveOperands"
	tagRectangular = "ValidateRectangular"
	tagQuadrants   = "ValidateQuadrants"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsPowerOfTwo reports whether n == 2^k for some k >= 0 (so 1 is accepted, 0 is not).
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// nextPowerOfTwo returns the smallest 2^k >= n (1 for n <= 1). Used only for diagnostics.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateRectangular checks a row-slice literal: at least one row, a non-empty
// first row, and every row the same length as the first one.
//
// Errors: ErrInvalidDimensions, ErrRaggedMatrix (as *DimensionError naming the row).
// Complexity: O(r).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf(tagRectangular, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return dimensionErrorf(fmt.Sprintf("%s: row %d", tagRectangular, i),
				ErrRaggedMatrix, Shape{Rows: 1, Cols: cols}, Shape{Rows: 1, Cols: len(row)})
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Returns *DimensionError{Kind: ErrDimensionMismatch}.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return dimensionErrorf(tagSameShape, ErrDimensionMismatch, ShapeOf(a), ShapeOf(b))
	}
	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	return ValidateSameShape(a, b)
}

// ValidateSquare checks Rows == Cols (m non-nil). Kind: ErrShape.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return dimensionErrorf(tagSquare, ErrShape, Shape{Rows: m.Rows(), Cols: m.Rows()}, ShapeOf(m))
	}
	return nil
}

// ValidateEvenSquare checks that m is square with an even side n >= 2, the
// precondition of Split. Kind: ErrShape.
func ValidateEvenSquare(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if n := m.Rows(); n%2 != 0 {
		return dimensionErrorf(tagEvenSquare, ErrShape, Shape{Rows: n + 1, Cols: n + 1}, ShapeOf(m))
	}
	return nil
}

// ValidatePowerOfTwo checks that both dimensions of m are powers of two.
// The Want shape in the returned error is the nearest enclosing power-of-two shape.
func ValidatePowerOfTwo(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	if !IsPowerOfTwo(r) || !IsPowerOfTwo(c) {
		return dimensionErrorf(tagPowerOfTwo, ErrNotPowerOfTwo,
			Shape{Rows: nextPowerOfTwo(r), Cols: nextPowerOfTwo(c)}, Shape{Rows: r, Cols: c})
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return dimensionErrorf(tagMulCompat, ErrDimensionMismatch,
			Shape{Rows: a.Cols(), Cols: b.Cols()}, ShapeOf(b))
	}
	return nil
}

// ValidateRecursiveOperands is the single precondition check shared by the
// Standard and Strassen multipliers. It runs once per top-level call; the
// recursion preserves the invariant because sizes halve exactly.
//
// Implementation:
//   - Stage 1: NotNil(a), NotNil(b).
//   - Stage 2: every dimension of a and b is a power of two → else ErrNotPowerOfTwo.
//   - Stage 3: a square, b square, a.Cols == b.Rows → else ErrShape.
//
// Errors:
//   - ErrNilMatrix, ErrNotPowerOfTwo, ErrShape (the last two as *DimensionError).
//
// Complexity:
//   - Time O(1), Space O(1).
func ValidateRecursiveOperands(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidatePowerOfTwo(a); err != nil {
		return err
	}
	if err := ValidatePowerOfTwo(b); err != nil {
		return err
	}
	// Square operands first, then equal size.
	if a.Rows() != a.Cols() {
		return dimensionErrorf(tagRecursive, ErrShape, Shape{Rows: a.Rows(), Cols: a.Rows()}, ShapeOf(a))
	}
	if b.Rows() != b.Cols() {
		return dimensionErrorf(tagRecursive, ErrShape, Shape{Rows: b.Rows(), Cols: b.Rows()}, ShapeOf(b))
	}
	if a.Cols() != b.Rows() {
		return dimensionErrorf(tagRecursive, ErrShape, ShapeOf(a), ShapeOf(b))
	}

	return nil
}
