// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Doolittle LU decomposition without pivoting: A = L·U with L unit lower
//     triangular and U upper triangular.
//
// Numeric policy:
//   - No row exchanges. A zero pivot (U[i][i] == ZeroPivot) aborts with
//     ErrSingular instead of dividing by zero.

package matrix

// LU factorizes a square matrix m into L (unit lower) and U (upper).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: for each pivot row i compute U[i][j≥i], check the pivot, then L[j>i][i].
//
// Returns:
//   - L, U: freshly allocated n×n *Dense; m is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrShape (non-square), ErrSingular (zero pivot); wrapped with "LU".
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (L, U *Dense, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, U = newSquare(n), newSquare(n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1 // unit diagonal
	}

	var (
		i, j, k int
		sum     float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}
