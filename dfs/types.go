// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, an early-exit target, and basic diagnostics.
package dfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a reached vertex without an adjacency entry.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior of DFS traversal.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id K) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id K) bool

	// FullTraversal runs DFS from every unvisited vertex (ascending order),
	// covering disconnected components. The start argument is ignored.
	FullTraversal bool

	// Target, when HasTarget is set, stops the traversal as soon as it is discovered.
	Target    K
	HasTarget bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering, no target
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[K cmp.Ordered](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[K cmp.Ordered](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth[K cmp.Ordered](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false
// and counts them in Result.SkippedNeighbors.
func WithFilterNeighbor[K cmp.Ordered](fn func(id K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) { o.FullTraversal = true }
}

// WithTarget stops the traversal once target is discovered.
func WithTarget[K cmp.Ordered](target K) Option[K] {
	return func(o *Options[K]) {
		o.Target = target
		o.HasTarget = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[K cmp.Ordered] struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []K

	// Finish records vertices in the sequence they finished (post-order).
	// On an early exit at the target, unfinished vertices are absent.
	Finish []K

	// Depth maps each vertex to its tree depth from its root.
	Depth map[K]int

	// Parent maps each vertex to the vertex it was first discovered from.
	// Roots do not appear in this map.
	Parent map[K]K

	// Found reports whether the target (if any) was discovered.
	Found bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// PathTo returns the tree path from the root of dest's tree to dest.
// Returns an error if dest was not discovered.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("dfs: %v not discovered", dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
