// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed dimension error.
// All kernels return these sentinels (possibly wrapped) and tests match them
// via errors.Is / errors.As. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Kernels wrap sentinels with an operation tag (matrixErrorf) or with a
// *DimensionError when the caller needs expected vs. actual shapes.
//
// ERROR PRIORITY (enforced in tests):
// nil -> ragged -> power-of-two -> shape/dimension mismatch -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedMatrix indicates that a row-slice input has rows of unequal length.
	ErrRaggedMatrix = errors.New("matrix: ragged matrix")

	// ErrNotPowerOfTwo indicates that a dimension is not 2^k for k >= 0.
	ErrNotPowerOfTwo = errors.New("matrix: dimension is not a power of two")

	// ErrShape indicates that operands are not square or not equal-sized where
	// recursive multiplication, Split, Join or LU require it.
	ErrShape = errors.New("matrix: shape error")

	// ErrSingular is returned when a zero pivot is met during LU (no pivoting).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnknownVariant is returned for a Variant outside {Standard, Strassen}.
	ErrUnknownVariant = errors.New("matrix: unknown multiplication variant")

	// ErrInvalidTolerance is returned by AllClose for NaN or infinite tolerances.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matrix: invalid option supplied")
)

// DimensionError reports a shape contract violation with the expected and the
// observed shape. Kind is one of the sentinels above and is what errors.Is
// matches against.
type DimensionError struct {
	Op   string // operation or validator that detected the violation
	Kind error  // ErrDimensionMismatch, ErrNotPowerOfTwo, ErrShape, ...
	Want Shape  // expected shape
	Got  Shape  // actual shape
}

// Error formats as "<Op>: <Kind>: want RxC, got RxC".
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v: want %s, got %s", e.Op, e.Kind, e.Want, e.Got)
}

// Unwrap exposes the sentinel kind.
func (e *DimensionError) Unwrap() error { return e.Kind }

// dimensionErrorf builds a *DimensionError; kept as a helper so call sites stay one-liners.
func dimensionErrorf(op string, kind error, want, got Shape) error {
	return &DimensionError{Op: op, Kind: kind, Want: want, Got: got}
}
