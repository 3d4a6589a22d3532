// Package interp provides Newton forward-difference interpolation over
// equally spaced samples.
//
// Fit builds the interpolating polynomial once in Newton form
//
//	p(t) = c0 + c1·(t-x0) + c2·(t-x0)(t-x1) + … + cn·(t-x0)…(t-x(n-1))
//
// where ck = Δ^k y0 / (k!·h^k) are the divided differences; Polynomial.At
// evaluates it with a nested (Horner-like) scheme. NewtonForward is the one-shot
// form that fits and evaluates in a single call.
package interp
