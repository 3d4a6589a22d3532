// Package integrate approximates definite integrals of univariate functions.
//
//   - Trapezoid: composite trapezoidal rule over n equal divisions, error O(h²).
//   - Simpson:   composite Simpson 1/3 rule over an even n, error O(h⁴); exact for cubics.
//   - Romberg:   Richardson extrapolation of successively halved trapezoids until
//     two diagonal entries differ by less than the tolerance.
//
// All rules require lo < hi and return a sentinel error otherwise; no rule panics.
package integrate
