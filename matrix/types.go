// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage, the algebra
// kernels and the recursive multipliers. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}

// Shape is a (rows, cols) pair used in diagnostics.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// ShapeOf returns the shape of m; a nil matrix reports 0x0.
func ShapeOf(m Matrix) Shape {
	if m == nil {
		return Shape{}
	}
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// Variant selects the recursive multiplication scheme.
// The set is closed: any other value is rejected with ErrUnknownVariant.
type Variant int

const (
	// Standard is divide-and-conquer with 8 recursive products per split.
	Standard Variant = iota + 1
	// Strassen uses 7 recursive products per split at the cost of extra adds.
	Strassen
)

// Variant names accepted by ParseVariant and produced by String.
const (
	variantStandardName = "standard"
	variantStrassenName = "strassen"
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Standard:
		return variantStandardName
	case Strassen:
		return variantStrassenName
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool { return v == Standard || v == Strassen }

// Products returns the number of recursive products per split (8 or 7).
func (v Variant) Products() int {
	if v == Strassen {
		return 7
	}
	return 8
}

// ParseVariant maps a case-insensitive name onto a Variant.
// Accepted: "standard", "dc", "divide-and-conquer", "strassen".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case variantStandardName, "dc", "divide-and-conquer":
		return Standard, nil
	case variantStrassenName:
		return Strassen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
