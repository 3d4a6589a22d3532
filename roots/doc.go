// Package roots finds a zero of a real function of one variable.
//
// Methods:
//
//   - Bisection:     halves a sign-changing bracket; always converges, linearly.
//   - RegulaFalsi:   false position inside a sign-changing bracket.
//   - NewtonRaphson: tangent steps from a single guess, derivative by central difference.
//   - Secant:        chord steps from two guesses; no derivative needed.
//
// Every method returns a Result carrying the root and the number of iterations
// it took, or a sentinel error. Defaults differ per method and are applied for
// any option left unset:
//
//	Method        Tolerance  MaxIterations  Extra
//	Bisection     1e-8       1000
//	RegulaFalsi   1e-6       1000
//	NewtonRaphson 1e-5       1000           Step 1e-5
//	Secant        1e-5       1000           ShiftFactor 0.01
package roots
