// Package bfs provides breadth-first search over a search.Adjacency graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found: whether WithTarget's vertex was reached (the search stops there)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	search.Adjacency keeps neighbors in insertion order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	g := search.NewUndirected([][2]int{{1, 2}, {1, 3}, {2, 4}})
//	res, err := bfs.BFS(g, 1, bfs.WithTarget(4))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, hook errors
//	}
//	path, _ := res.PathTo(4) // [1 2 4]
//
// Options without a vertex argument need the key type spelled out:
//
//	bfs.BFS(g, 1, bfs.WithMaxDepth[int](2))
package bfs
