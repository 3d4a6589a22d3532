// Package matrix provides dense float64 matrices, an elementwise algebra layer
// and recursive power-of-two matrix multiplication.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix behind the Matrix interface, with
//     NewDense, NewFromRows (rectangularity checked) and ToRows.
//   - Add, Sub, AddRows, SubRows, Mul, Transpose, Scale, Kron and LU.
//   - Split and Join, the quadrant primitives of the recursion.
//   - Multiply and MultiplyContext for the Standard (8 products per split)
//     and Strassen (7 products per split) variants, both validated by the
//     shared ValidateRecursiveOperands.
//
// Recursive multiplication accepts square n×n operands with n = 2^k only.
// MultiplyContext can evaluate the sub-products of large splits on a bounded
// set of helper goroutines (WithParallel, WithParallelThreshold,
// WithMaxWorkers); the combination order is fixed, so parallel and sequential
// runs return identical results.
//
// Every failure is a distinguishable sentinel (ErrDimensionMismatch,
// ErrRaggedMatrix, ErrNotPowerOfTwo, ErrShape, ...). Shape violations come as
// *DimensionError carrying the expected and actual shapes; match them with
// errors.Is and errors.As.
//
// See the examples in this package for usage patterns.
package matrix
