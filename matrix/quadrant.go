// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Quadrant split and join, the structural primitives of the recursive
//     multipliers.
//
// Layout for an n×n matrix with h = n/2:
//
//	┌─────────┬─────────┐
//	│ M11     │ M12     │   rows [0,h)
//	│ [0,h)   │ [h,n)   │
//	├─────────┼─────────┤
//	│ M21     │ M22     │   rows [h,n)
//	│ [0,h)   │ [h,n)   │
//	└─────────┴─────────┘
//
// Quadrants are independent copies: writing into one never affects the parent.

package matrix

// Split returns the four n/2×n/2 quadrants of a square matrix with even side n.
//
// Implementation:
//   - Stage 1: ValidateEvenSquare(m) (non-nil, square, even n ≥ 2).
//   - Stage 2: copy each half-row into its quadrant (four contiguous copies per row pair).
//
// Returns:
//   - m11, m12, m21, m22: freshly allocated *Dense quadrants.
//
// Errors:
//   - ErrNilMatrix, ErrShape (non-square or odd side), wrapped with "Split".
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Split(m Matrix) (m11, m12, m21, m22 *Dense, err error) {
	if err = ValidateEvenSquare(m); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opSplit, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, nil, nil, matrixErrorf(opSplit, err)
	}
	m11, m12, m21, m22 = splitDense(dm)

	return m11, m12, m21, m22, nil
}

// splitDense is the unchecked kernel behind Split (n even, square).
func splitDense(m *Dense) (m11, m12, m21, m22 *Dense) {
	n := m.r
	h := n / 2
	m11, m12, m21, m22 = newSquare(h), newSquare(h), newSquare(h), newSquare(h)
	var i, top, bottom int
	for i = 0; i < h; i++ {
		top = i * n          // row i of the upper half
		bottom = (i + h) * n // row i of the lower half
		dst := i * h         // row i inside each quadrant
		copy(m11.data[dst:dst+h], m.data[top:top+h])
		copy(m12.data[dst:dst+h], m.data[top+h:top+n])
		copy(m21.data[dst:dst+h], m.data[bottom:bottom+h])
		copy(m22.data[dst:dst+h], m.data[bottom+h:bottom+n])
	}

	return m11, m12, m21, m22
}

// Join is the inverse of Split: C11|C12 over C21|C22 into a fresh 2h×2h matrix.
//
// Implementation:
//   - Stage 1: every quadrant non-nil and square; all four share the side of c11.
//   - Stage 2: copy half-rows into the output.
//
// Errors:
//   - ErrNilMatrix, ErrShape (as *DimensionError naming the offending quadrant size).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Join(c11, c12, c21, c22 Matrix) (*Dense, error) {
	quads := [4]Matrix{c11, c12, c21, c22}
	dense := [4]*Dense{}
	for q, m := range quads {
		if err := ValidateSquare(m); err != nil {
			return nil, matrixErrorf(opJoin, err)
		}
		if q > 0 && m.Rows() != c11.Rows() {
			return nil, matrixErrorf(opJoin, dimensionErrorf(tagQuadrants, ErrShape, ShapeOf(c11), ShapeOf(m)))
		}
		d, err := asDense(m)
		if err != nil {
			return nil, matrixErrorf(opJoin, err)
		}
		dense[q] = d
	}

	return joinDense(dense[0], dense[1], dense[2], dense[3]), nil
}

// joinDense is the unchecked kernel behind Join.
func joinDense(c11, c12, c21, c22 *Dense) *Dense {
	h := c11.r
	n := 2 * h
	out := newSquare(n)
	var i, top, bottom, src int
	for i = 0; i < h; i++ {
		top = i * n
		bottom = (i + h) * n
		src = i * h
		copy(out.data[top:top+h], c11.data[src:src+h])
		copy(out.data[top+h:top+n], c12.data[src:src+h])
		copy(out.data[bottom:bottom+h], c21.data[src:src+h])
		copy(out.data[bottom+h:bottom+n], c22.data[src:src+h])
	}

	return out
}
