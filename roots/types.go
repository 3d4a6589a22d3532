// SPDX-License-Identifier: MIT
package roots

import (
	"errors"
	"fmt"
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Result is a located root.
type Result struct {
	Root       float64
	Iterations int
}

// Sentinel errors.
var (
	// ErrNilFunc is returned when f is nil.
	ErrNilFunc = errors.New("roots: nil function")

	// ErrNoSignChange is returned by bracketing methods when f(lo) and f(hi) share a sign.
	ErrNoSignChange = errors.New("roots: f(lo) and f(hi) must have opposite signs")

	// ErrZeroDerivative is returned by NewtonRaphson on a flat tangent.
	ErrZeroDerivative = errors.New("roots: derivative is zero")

	// ErrNoConvergence is returned when MaxIterations is exhausted.
	ErrNoConvergence = errors.New("roots: no convergence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("roots: invalid option supplied")
)

// Per-method defaults.
const (
	DefaultBisectionTolerance   = 1e-8
	DefaultRegulaFalsiTolerance = 1e-6
	DefaultNewtonTolerance      = 1e-5
	DefaultSecantTolerance      = 1e-5
	DefaultMaxIterations        = 1000
	DefaultStep                 = 1e-5
	DefaultShiftFactor          = 0.01

	// verticalThreshold is the smallest |f(x1) - f(x0)| a secant step divides by.
	verticalThreshold = 1e-12
)

// Option configures a root finder via functional arguments.
type Option func(*Options)

// Options holds the stopping criteria. A zero field selects the method default.
type Options struct {
	Tolerance     float64
	MaxIterations int

	// Step is the central-difference half width used by NewtonRaphson.
	Step float64

	// ShiftFactor nudges the secant iterate off a horizontal chord.
	ShiftFactor float64

	err error
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

// WithMaxIterations caps the number of iterations; n must be >= 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithStep sets the derivative step of NewtonRaphson; h must be > 0.
func WithStep(h float64) Option {
	return func(o *Options) {
		if !(h > 0) {
			o.err = fmt.Errorf("%w: Step must be > 0 (%g)", ErrOptionViolation, h)
			return
		}
		o.Step = h
	}
}

// WithShiftFactor sets the secant shift; s must be > 0.
func WithShiftFactor(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			o.err = fmt.Errorf("%w: ShiftFactor must be > 0 (%g)", ErrOptionViolation, s)
			return
		}
		o.ShiftFactor = s
	}
}

// gatherOptions applies opts and fills every unset field from tol.
func gatherOptions(tol float64, opts []Option) (Options, error) {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Tolerance == 0 {
		o.Tolerance = tol
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.ShiftFactor == 0 {
		o.ShiftFactor = DefaultShiftFactor
	}

	return o, nil
}
