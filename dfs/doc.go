// Package dfs implements depth-first search and topological sorting over
// search.Adjacency graphs.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants.
//   - WithMaxDepth(limit)       stops recursion beyond given depth (>=0).
//   - WithFilterNeighbor(fn)    filters neighbors; return false to skip.
//   - WithFullTraversal()       visits every component.
//   - WithTarget(v)             stops at the first discovery of v; Result.PathTo(v) gives the path.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrNeighborFetch          if a reached vertex has no adjacency entry.
//   - ErrCycleDetected          from TopologicalSort on a cyclic graph.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
