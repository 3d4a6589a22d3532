// SPDX-License-Identifier: MIT
package roots

import (
	"fmt"
	"math"
)

// Bisection halves [lo, hi] until |f(mid)| < Tolerance or the bracket is narrower
// than Tolerance. An endpoint that is already a root is returned with 0 iterations.
//
// Errors: ErrNilFunc, ErrOptionViolation, ErrNoSignChange, ErrNoConvergence.
func Bisection(f Func, lo, hi float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	o, err := gatherOptions(DefaultBisectionTolerance, opts)
	if err != nil {
		return Result{}, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	if r, ok := endpointRoot(lo, hi, flo, fhi); ok {
		return r, nil
	}
	if flo*fhi > 0 {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoSignChange, lo, flo, hi, fhi)
	}

	var mid, fmid float64
	for it := 1; it <= o.MaxIterations; it++ {
		mid = lo + (hi-lo)/2
		fmid = f(mid)
		if math.Abs(fmid) < o.Tolerance || (hi-lo)/2 < o.Tolerance {
			return Result{Root: mid, Iterations: it}, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}

	return Result{}, fmt.Errorf("%w: bisection after %d iterations", ErrNoConvergence, o.MaxIterations)
}

// RegulaFalsi replaces the midpoint of Bisection with the chord's x-intercept
//
//	c = (lo·f(hi) - hi·f(lo)) / (f(hi) - f(lo))
//
// and stops once |f(c)| < Tolerance.
//
// Errors: ErrNilFunc, ErrOptionViolation, ErrNoSignChange, ErrNoConvergence.
func RegulaFalsi(f Func, lo, hi float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	o, err := gatherOptions(DefaultRegulaFalsiTolerance, opts)
	if err != nil {
		return Result{}, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	if r, ok := endpointRoot(lo, hi, flo, fhi); ok {
		return r, nil
	}
	if flo*fhi > 0 {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoSignChange, lo, flo, hi, fhi)
	}

	var c, fc float64
	for it := 1; it <= o.MaxIterations; it++ {
		c = (lo*fhi - hi*flo) / (fhi - flo)
		fc = f(c)
		if math.Abs(fc) < o.Tolerance {
			return Result{Root: c, Iterations: it}, nil
		}
		if flo*fc < 0 {
			hi, fhi = c, fc
		} else {
			lo, flo = c, fc
		}
	}

	return Result{}, fmt.Errorf("%w: regula falsi after %d iterations", ErrNoConvergence, o.MaxIterations)
}

// NewtonRaphson iterates x ← x - f(x)/f'(x) from x0, with
//
//	f'(x) ≈ (f(x+h) - f(x-h)) / 2h
//
// It stops when |Δx| < Tolerance or |f(x)| < Tolerance.
//
// Errors: ErrNilFunc, ErrOptionViolation, ErrZeroDerivative, ErrNoConvergence.
func NewtonRaphson(f Func, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	o, err := gatherOptions(DefaultNewtonTolerance, opts)
	if err != nil {
		return Result{}, err
	}

	x, fx := x0, f(x0)
	if math.Abs(fx) < o.Tolerance {
		return Result{Root: x}, nil
	}

	var d, next float64
	for it := 1; it <= o.MaxIterations; it++ {
		d = (f(x+o.Step) - f(x-o.Step)) / (2 * o.Step)
		if d == 0 {
			return Result{}, fmt.Errorf("%w at x=%g", ErrZeroDerivative, x)
		}
		next = x - fx/d
		fx = f(next)
		if math.Abs(next-x) < o.Tolerance || math.Abs(fx) < o.Tolerance {
			return Result{Root: next, Iterations: it}, nil
		}
		x = next
	}

	return Result{}, fmt.Errorf("%w: newton after %d iterations", ErrNoConvergence, o.MaxIterations)
}

// Secant iterates the chord through (x0, f(x0)) and (x1, f(x1)):
//
//	x2 = x1 - f(x1)·(x1 - x0) / (f(x1) - f(x0))
//
// A near-horizontal chord moves x1 by ShiftFactor·(1+|x1|) instead of dividing.
// It stops when |Δx| < Tolerance or |f(x)| < Tolerance.
//
// Errors: ErrNilFunc, ErrOptionViolation, ErrNoConvergence.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	o, err := gatherOptions(DefaultSecantTolerance, opts)
	if err != nil {
		return Result{}, err
	}

	f0, f1 := f(x0), f(x1)
	var denom, x2, f2 float64
	for it := 1; it <= o.MaxIterations; it++ {
		denom = f1 - f0
		if math.Abs(denom) < verticalThreshold {
			x0, f0 = x1, f1
			x1 += o.ShiftFactor * (1 + math.Abs(x1))
			f1 = f(x1)
			continue
		}
		x2 = x1 - f1*(x1-x0)/denom
		f2 = f(x2)
		if math.Abs(x2-x1) < o.Tolerance || math.Abs(f2) < o.Tolerance {
			return Result{Root: x2, Iterations: it}, nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return Result{}, fmt.Errorf("%w: secant after %d iterations", ErrNoConvergence, o.MaxIterations)
}

// endpointRoot reports an exact root at either end of the bracket.
func endpointRoot(lo, hi, flo, fhi float64) (Result, bool) {
	switch {
	case flo == 0:
		return Result{Root: lo}, true
	case fhi == 0:
		return Result{Root: hi}, true
	}

	return Result{}, false
}
