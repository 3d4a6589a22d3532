// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Kronecker (tensor) product of two arbitrary matrices.
//
// Layout:
//
//	A ⊗ B = ┌ a00·B  a01·B  … ┐
//	        │ a10·B  a11·B  … │
//	        └   …      …      ┘
//
//	out[i·rb+k][j·cb+l] = A[i][j] · B[k][l]

package matrix

// Kron returns the Kronecker product A ⊗ B of shape (ra·rb)×(ca·cb).
//
// Implementation:
//   - Stage 1: NotNil(a), NotNil(b); materialize both as *Dense.
//   - Stage 2: for every a[i][j], write the scaled block a[i][j]·B row by row.
//
// Errors:
//   - ErrNilMatrix, wrapped with "Kron".
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	rb, cb := db.r, db.c
	outCols := da.c * cb
	out := &Dense{r: da.r * rb, c: outCols, data: make([]float64, da.r*rb*outCols)}
	var (
		i, j, k, l int
		av         float64
		dst        int // row-major offset of the first cell of the current block row
	)
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			for k = 0; k < rb; k++ {
				dst = (i*rb+k)*outCols + j*cb
				for l = 0; l < cb; l++ {
					out.data[dst+l] = av * db.data[k*cb+l]
				}
			}
		}
	}

	return out, nil
}
