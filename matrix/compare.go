// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact and tolerance-based comparison of two matrices, used by the
//     variant-agreement checks and the CLI self-check.

package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and bit-identical elements.
// A nil operand is equal only to another nil operand.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, errA := asDense(a)
	db, errB := asDense(b)
	if errA != nil || errB != nil {
		return false
	}
	for idx, v := range da.data {
		if v != db.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
//
// Implementation:
//   - Stage 1: tolerances must be finite (negative values are taken by magnitude).
//   - Stage 2: NotNil(a), NotNil(b), SameShape(a, b).
//   - Stage 3: single flat pass with early exit on the first violation.
//
// Errors:
//   - ErrInvalidTolerance, ErrNilMatrix, ErrDimensionMismatch; wrapped with "AllClose".
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, av := range da.data {
		bv := db.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
