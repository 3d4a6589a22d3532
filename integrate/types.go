// SPDX-License-Identifier: MIT
package integrate

import (
	"errors"
	"fmt"
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Sentinel errors.
var (
	// ErrInvalidDivisions is returned for a non-positive number of divisions.
	ErrInvalidDivisions = errors.New("integrate: divisions must be > 0")

	// ErrOddDivisions is returned by Simpson for an odd number of divisions.
	ErrOddDivisions = errors.New("integrate: divisions must be even")

	// ErrInvalidInterval is returned when hi <= lo or a bound is not finite.
	ErrInvalidInterval = errors.New("integrate: upper limit must exceed lower limit")

	// ErrNilFunc is returned when the integrand is nil.
	ErrNilFunc = errors.New("integrate: nil function")

	// ErrNoConvergence is returned by Romberg when the tolerance is not met.
	ErrNoConvergence = errors.New("integrate: no convergence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("integrate: invalid option supplied")
)

// Romberg defaults.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 10

	// MaxIterations bounds the table so 2^(rows-1) divisions fit an int.
	MaxIterations = 30
)

// Option configures Romberg via functional arguments.
type Option func(*Options)

// Options holds the Romberg stopping criteria.
type Options struct {
	// Tolerance is the bound on |R[i][i] - R[i-1][i-1]|.
	Tolerance float64

	// MaxIterations is the number of table rows, so at most 2^(MaxIterations-1) divisions.
	MaxIterations int

	err error
}

// DefaultOptions returns tolerance 1e-6 and 10 iterations.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithTolerance sets the convergence bound; tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the number of table rows; n must be in [2, MaxIterations].
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 2 || n > MaxIterations {
			o.err = fmt.Errorf("%w: MaxIterations must be in [2, %d] (%d)", ErrOptionViolation, MaxIterations, n)
			return
		}
		o.MaxIterations = n
	}
}
