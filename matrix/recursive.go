// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Recursive power-of-two square multiplication in two variants:
//     Standard (divide-and-conquer, 8 products per split) and Strassen
//     (7 products per split).
//
// Recursion:
//
//	multiply(A, B):
//	  n == 1  → [[A00·B00]]
//	  else    → split A, B into quadrants
//	            evaluate 8 (Standard) or 7 (Strassen) sub-products
//	            combine with Add/Sub kernels, join quadrants
//
// Ownership:
//   - Every call allocates its quadrants, operand sums and products; nothing
//     is shared between sibling calls, so sub-products may run concurrently.
//
// Concurrency (MultiplyContext with WithParallel):
//   - A split whose half-side is >= ParallelThreshold forks its sub-products
//     through an errgroup; the join waits for all of them (fork-join barrier).
//   - A weighted semaphore sized MaxWorkers bounds helpers across the whole
//     tree. TryAcquire never blocks, so a branch without a slot runs inline and
//     nested fork-join cannot deadlock.
//   - The first error (in practice ctx cancellation) cancels every sibling and
//     aborts the tree; no partial product is returned.

package matrix

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Multiply computes A × B with the chosen recursive variant, sequentially.
//
// Implementation:
//   - Stage 1: reject unknown variants (ErrUnknownVariant).
//   - Stage 2: ValidateRecursiveOperands(a, b) once at the top level.
//   - Stage 3: recurse down to 1×1 products and join on the way back.
//
// Inputs:
//   - a, b: square n×n matrices with n = 2^k (k ≥ 0).
//   - v   : Standard or Strassen.
//
// Returns:
//   - *Dense: freshly allocated n×n product.
//
// Errors:
//   - ErrUnknownVariant, ErrNilMatrix, ErrNotPowerOfTwo, ErrShape; all wrapped with "Multiply".
//
// Determinism:
//   - Fixed combination order; for integer-valued inputs both variants return identical results.
//
// Complexity:
//   - Standard: Time O(n³). Strassen: Time O(n^log2(7)) ≈ O(n^2.807).
//   - Space O(n²) live per recursion level.
func Multiply(a, b Matrix, v Variant) (*Dense, error) {
	return MultiplyContext(context.Background(), a, b, v)
}

// MultiplyContext is Multiply with cancellation and options (parallelism, logging).
//
// Errors (in priority order):
//   - ErrUnknownVariant, ErrOptionViolation,
//   - ErrNilMatrix, ErrNotPowerOfTwo, ErrShape,
//   - ctx.Err() when the context is done before or during the computation.
//
// AI-Hints:
//   - For n below ~2·ParallelThreshold the call is effectively sequential.
//   - Pass *Dense operands to skip the At-based materialization step.
func MultiplyContext(ctx context.Context, a, b Matrix, v Variant, opts ...Option) (*Dense, error) {
	if !v.Valid() {
		return nil, matrixErrorf(opMultiply, ErrUnknownVariant)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err = ValidateRecursiveOperands(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	mu := newMultiplier(v, o)

	start := time.Now()
	o.Logger.DebugContext(ctx, "multiply started",
		"variant", v.String(),
		"size", da.r,
		"parallel", o.Parallel,
	)
	out, err := mu.multiply(ctx, da, db)
	if err != nil {
		o.Logger.DebugContext(ctx, "multiply aborted",
			"variant", v.String(),
			"size", da.r,
			"error", err,
		)
		return nil, matrixErrorf(opMultiply, err)
	}
	o.Logger.DebugContext(ctx, "multiply completed",
		"variant", v.String(),
		"size", da.r,
		"duration", time.Since(start),
	)

	return out, nil
}

// errProductCount means a split produced a number of sub-products other than
// Variant.Products.
var errProductCount = errors.New("matrix: sub-product count does not match variant")

// multiplier carries the per-call configuration through the recursion.
type multiplier struct {
	variant   Variant
	threshold int                 // minimum half-side that is forked
	workers   *semaphore.Weighted // nil → sequential recursion
	calls     *atomic.Int64       // nil unless counting recursive steps
}

// newMultiplier builds the recursion state for one top-level call.
func newMultiplier(v Variant, o Options) *multiplier {
	mu := &multiplier{variant: v, threshold: o.ParallelThreshold}
	if o.Parallel {
		mu.workers = semaphore.NewWeighted(int64(o.MaxWorkers))
	}
	return mu
}

// operands is one pending recursive product left × right.
type operands struct {
	left, right *Dense
}

// multiply is the recursive step; a and b are validated n×n, n = 2^k.
func (mu *multiplier) multiply(ctx context.Context, a, b *Dense) (*Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mu.calls != nil {
		mu.calls.Add(1)
	}

	// Base case: scalar product, no recursion.
	if a.r == 1 {
		return &Dense{r: 1, c: 1, data: []float64{a.data[0] * b.data[0]}}, nil
	}

	a11, a12, a21, a22 := splitDense(a)
	b11, b12, b21, b22 := splitDense(b)

	if mu.variant == Strassen {
		return mu.strassen(ctx, a11, a12, a21, a22, b11, b12, b21, b22)
	}

	return mu.standard(ctx, a11, a12, a21, a22, b11, b12, b21, b22)
}

// standard combines 8 recursive products:
//
//	c11 = a11·b11 + a12·b21    c12 = a11·b12 + a12·b22
//	c21 = a21·b11 + a22·b21    c22 = a21·b12 + a22·b22
func (mu *multiplier) standard(ctx context.Context, a11, a12, a21, a22, b11, b12, b21, b22 *Dense) (*Dense, error) {
	p, err := mu.products(ctx, a11.r, []operands{
		{a11, b11}, {a12, b21}, // c11
		{a11, b12}, {a12, b22}, // c12
		{a21, b11}, {a22, b21}, // c21
		{a21, b12}, {a22, b22}, // c22
	})
	if err != nil {
		return nil, err
	}

	return joinDense(
		addDense(p[0], p[1]),
		addDense(p[2], p[3]),
		addDense(p[4], p[5]),
		addDense(p[6], p[7]),
	), nil
}

// strassen combines 7 recursive products:
//
//	P = (a11+a22)·(b11+b22)    T = (a11+a12)·b22
//	Q = (a21+a22)·b11          U = (a21-a11)·(b11+b12)
//	R = a11·(b12-b22)          V = (a12-a22)·(b21+b22)
//	S = a22·(b21-b11)
//
//	C11 = P+S-T+V   C12 = R+T   C21 = Q+S   C22 = P+R-Q+U
func (mu *multiplier) strassen(ctx context.Context, a11, a12, a21, a22, b11, b12, b21, b22 *Dense) (*Dense, error) {
	pr, err := mu.products(ctx, a11.r, []operands{
		{addDense(a11, a22), addDense(b11, b22)}, // P
		{addDense(a21, a22), b11},                // Q
		{a11, subDense(b12, b22)},                // R
		{a22, subDense(b21, b11)},                // S
		{addDense(a11, a12), b22},                // T
		{subDense(a21, a11), addDense(b11, b12)}, // U
		{subDense(a12, a22), addDense(b21, b22)}, // V
	})
	if err != nil {
		return nil, err
	}
	P, Q, R, S, T, U, V := pr[0], pr[1], pr[2], pr[3], pr[4], pr[5], pr[6]

	c11 := addDense(subDense(addDense(P, S), T), V)
	c12 := addDense(R, T)
	c21 := addDense(Q, S)
	c22 := addDense(subDense(addDense(P, R), Q), U)

	return joinDense(c11, c12, c21, c22), nil
}

// products evaluates every pending product and returns them in input order.
// half is the side of the operands; it decides whether this level forks.
func (mu *multiplier) products(ctx context.Context, half int, ops []operands) ([]*Dense, error) {
	if len(ops) != mu.variant.Products() {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", errProductCount, mu.variant, mu.variant.Products(), len(ops))
	}
	out := make([]*Dense, len(ops))

	// Sequential path: no worker budget, or the split is too small to pay off.
	if mu.workers == nil || half < mu.threshold {
		for i, op := range ops {
			p, err := mu.multiply(ctx, op.left, op.right)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	// Fork-join: a cancellable scope so an inline failure also stops forked siblings.
	scope, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(scope)
	for i, op := range ops {
		i, op := i, op
		if mu.workers.TryAcquire(1) {
			g.Go(func() error {
				defer mu.workers.Release(1)
				p, err := mu.multiply(gctx, op.left, op.right)
				if err != nil {
					return err
				}
				out[i] = p // distinct index per goroutine
				return nil
			})
			continue
		}
		// No free slot: compute inline on this goroutine.
		p, err := mu.multiply(gctx, op.left, op.right)
		if err != nil {
			cancel()
			_ = g.Wait()
			return nil, err
		}
		out[i] = p
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
