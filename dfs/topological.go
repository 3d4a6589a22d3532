// Package dfs provides topological sorting of directed search.Adjacency graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every arc u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and arc visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/numlab/search"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K cmp.Ordered] struct {
	graph search.Adjacency[K]
	opts  topoOptions
	state map[K]int // White, Gray, Black
	order []K       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g,
// treating every adjacency entry as an arc. Roots are tried in ascending
// order, so the result is deterministic.
// An undirected graph with at least one edge is reported as cyclic.
func TopologicalSort[K cmp.Ordered](g search.Adjacency[K], options ...TopoOption) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	verts := g.Vertices()
	sorter := &topoSorter[K]{
		graph: g,
		opts:  opts,
		state: make(map[K]int, len(verts)),
		order: make([]K, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-arcs.
func (t *topoSorter[K]) visit(id K) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w at %v", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, nid := range neighbors {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
