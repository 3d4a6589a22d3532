// SPDX-License-Identifier: MIT

package matrix

// Test bridge for the recursion internals. Being a _test.go file in package
// matrix, it is visible to matrix_test and absent from production builds.

import (
	"context"
	"sync/atomic"
)

// CountedMultiply_TestOnly runs the recursion of MultiplyContext on validated
// operands and also returns how many multiply steps it took, base cases included.
func CountedMultiply_TestOnly(a, b *Dense, v Variant, opts ...Option) (*Dense, int64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidateRecursiveOperands(a, b); err != nil {
		return nil, 0, err
	}
	mu := newMultiplier(v, o)
	mu.calls = new(atomic.Int64)
	out, err := mu.multiply(context.Background(), a, b)

	return out, mu.calls.Load(), err
}

// SplitProducts_TestOnly evaluates the given number of 1×1 sub-products at one
// split level for variant v, exercising the product-count guard.
func SplitProducts_TestOnly(v Variant, n int) error {
	one := &Dense{r: 1, c: 1, data: []float64{1}}
	ops := make([]operands, n)
	for i := range ops {
		ops[i] = operands{one, one}
	}
	_, err := newMultiplier(v, DefaultOptions()).products(context.Background(), 1, ops)
	return err
}
