// SPDX-License-Identifier: MIT
package interp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y must have the same length")

	// ErrTooFewPoints is returned for fewer than two samples.
	ErrTooFewPoints = errors.New("interp: at least two points are required")

	// ErrUnevenSpacing is returned when x is not strictly increasing with a constant step.
	ErrUnevenSpacing = errors.New("interp: points must be equally spaced and increasing")

	// ErrOutOfRange is returned when the target lies outside [x0, xn].
	ErrOutOfRange = errors.New("interp: target outside [x0, xn]")
)

// spacingTolerance is the relative slack allowed between consecutive steps.
const spacingTolerance = 1e-12

// Polynomial is a fitted Newton forward interpolant.
type Polynomial struct {
	x      []float64
	coeffs []float64
}

// Fit computes the divided-difference coefficients through (x[i], y[i]).
// x must be strictly increasing with a constant step h.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrUnevenSpacing.
// Complexity: O(n²) time, O(n) space.
func Fit(x, y []float64) (*Polynomial, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	h := x[1] - x[0]
	if !(h > 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: step %g", ErrUnevenSpacing, h)
	}
	slack := spacingTolerance * math.Max(1, h)
	for i := 1; i < n-1; i++ {
		if d := x[i+1] - x[i]; math.Abs(d-h) > slack {
			return nil, fmt.Errorf("%w: x[%d]-x[%d]=%g, want %g", ErrUnevenSpacing, i+1, i, d, h)
		}
	}

	// Column k of the difference table overwrites entries k..n-1 from the
	// bottom up, so diff[k-1] still holds the lower-order coefficient.
	diff := make([]float64, n)
	copy(diff, y)
	var i, k int
	for k = 1; k < n; k++ {
		for i = n - 1; i >= k; i-- {
			diff[i] = (diff[i] - diff[i-1]) / (float64(k) * h)
		}
	}

	xs := make([]float64, n)
	copy(xs, x)

	return &Polynomial{x: xs, coeffs: diff}, nil
}

// Coefficients returns a copy of c0..cn.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Degree is the polynomial degree, len(x)-1.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// At evaluates the polynomial at t, which must lie in [x0, xn].
//
// Errors: ErrOutOfRange (also for NaN).
func (p *Polynomial) At(t float64) (float64, error) {
	lo, hi := p.x[0], p.x[len(p.x)-1]
	if !(t >= lo && t <= hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, t, lo, hi)
	}

	n := len(p.coeffs)
	v := p.coeffs[n-1]
	for k := n - 2; k >= 0; k-- {
		v = v*(t-p.x[k]) + p.coeffs[k]
	}

	return v, nil
}

// NewtonForward fits (x, y) and evaluates the interpolant at target.
// It returns the value and the coefficients c0..cn.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrUnevenSpacing, ErrOutOfRange.
func NewtonForward(x, y []float64, target float64) (float64, []float64, error) {
	p, err := Fit(x, y)
	if err != nil {
		return 0, nil, err
	}
	v, err := p.At(target)
	if err != nil {
		return 0, nil, err
	}

	return v, p.Coefficients(), nil
}
