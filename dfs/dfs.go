// Package dfs implements depth-first search (single-source and forest) on
// search.Adjacency graphs, plus topological sorting.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - WithTarget: stop at the first discovery of a vertex and read its path
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/numlab/search"
)

// walker encapsulates state during DFS.
type walker[K cmp.Ordered] struct {
	graph   search.Adjacency[K]
	opts    Options[K]
	res     *Result[K]
	visited map[K]bool
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all components in ascending vertex order; otherwise it starts only
// from start. On error the partially filled Result is returned alongside.
func DFS[K cmp.Ordered](g search.Adjacency[K], start K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[K]()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.Has(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := len(g)
	w := &walker[K]{
		graph: g,
		opts:  o,
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Finish: make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
		visited: make(map[K]bool, n),
	}

	// 5. Traverse: forest or single tree
	roots := []K{start}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, v := range roots {
		if w.visited[v] {
			continue
		}
		stop, err := w.traverse(v, 0)
		if err != nil {
			return w.res, err
		}
		if stop {
			break
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into its neighbors.
// stop reports that the target was discovered and the walk must unwind.
func (w *walker[K]) traverse(id K, depth int) (stop bool, err error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return false, nil
	}

	// 3. Mark visited and record discovery
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(id); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}
	if w.opts.HasTarget && id == w.opts.Target {
		w.res.Found = true
		return true, nil
	}

	// 5. Explore each neighbor
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.visited[nid] {
			continue
		}
		// Parent is recorded only when the child is actually entered.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if stop, err = w.traverse(nid, depth+1); err != nil || stop {
			return stop, err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return false, fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Finish = append(w.res.Finish, id)

	return false, nil
}
