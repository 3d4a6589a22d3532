// SPDX-License-Identifier: MIT
package integrate

import (
	"fmt"
	"math"
)

// checkInterval validates the shared preconditions of every rule.
func checkInterval(f Func, lo, hi float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi <= lo {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lo, hi)
	}
	return nil
}

// Trapezoid integrates f over [lo, hi] with the composite trapezoidal rule:
//
//	h · ( (f(lo) + f(hi))/2 + Σ_{i=1}^{n-1} f(lo + i·h) ),  h = (hi-lo)/n
//
// Errors: ErrInvalidDivisions, ErrInvalidInterval, ErrNilFunc.
// Complexity: O(n) evaluations of f.
func Trapezoid(f Func, lo, hi float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDivisions, n)
	}
	if err := checkInterval(f, lo, hi); err != nil {
		return 0, err
	}
	h := (hi - lo) / float64(n)
	sum := (f(lo) + f(hi)) / 2
	for i := 1; i < n; i++ {
		sum += f(lo + float64(i)*h)
	}

	return sum * h, nil
}

// Simpson integrates f over [lo, hi] with the composite Simpson 1/3 rule:
//
//	h/3 · ( f(lo) + f(hi) + 4·Σ odd + 2·Σ even ),  h = (hi-lo)/n
//
// Errors: ErrInvalidDivisions, ErrOddDivisions, ErrInvalidInterval, ErrNilFunc.
// Complexity: O(n) evaluations of f.
func Simpson(f Func, lo, hi float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDivisions, n)
	}
	if n%2 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrOddDivisions, n)
	}
	if err := checkInterval(f, lo, hi); err != nil {
		return 0, err
	}
	h := (hi - lo) / float64(n)
	var odd, even float64
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			odd += f(lo + float64(i)*h)
		} else {
			even += f(lo + float64(i)*h)
		}
	}

	return h / 3 * (f(lo) + f(hi) + 4*odd + 2*even), nil
}

// Romberg integrates f over [lo, hi] by Richardson extrapolation:
//
//	R[0][0] = (f(lo) + f(hi)) · (hi-lo)/2
//	R[i][0] = R[i-1][0]/2 + h_i · Σ f(lo + (2k-1)·h_i),  h_i = (hi-lo)/2^i
//	R[i][j] = R[i][j-1] + (R[i][j-1] - R[i-1][j-1]) / (4^j - 1)
//
// and returns R[i][i] once |R[i][i] - R[i-1][i-1]| < Tolerance.
// Only the previous row is kept.
//
// Errors: ErrInvalidInterval, ErrNilFunc, ErrOptionViolation, ErrNoConvergence.
// Complexity: O(2^MaxIterations) evaluations of f in the worst case.
func Romberg(f Func, lo, hi float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return 0, o.err
	}
	if err := checkInterval(f, lo, hi); err != nil {
		return 0, err
	}

	prev := make([]float64, o.MaxIterations)
	curr := make([]float64, o.MaxIterations)
	prev[0] = (f(lo) + f(hi)) * (hi - lo) / 2

	var (
		i, j, k int
		h, sum  float64
		pow4    float64
		points  int
	)
	for i = 1; i < o.MaxIterations; i++ {
		points = 1 << (i - 1) // new midpoints in this row
		h = (hi - lo) / float64(int(1)<<i)
		sum = 0
		for k = 1; k <= points; k++ {
			sum += f(lo + float64(2*k-1)*h)
		}
		curr[0] = prev[0]/2 + h*sum

		pow4 = 1
		for j = 1; j <= i; j++ {
			pow4 *= 4
			curr[j] = curr[j-1] + (curr[j-1]-prev[j-1])/(pow4-1)
		}
		if math.Abs(curr[i]-prev[i-1]) < o.Tolerance {
			return curr[i], nil
		}
		prev, curr = curr, prev
	}

	return 0, fmt.Errorf("%w after %d iterations (last estimate %g)", ErrNoConvergence, o.MaxIterations, prev[o.MaxIterations-1])
}
