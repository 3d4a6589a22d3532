// SPDX-License-Identifier: MIT
package search

import (
	"cmp"
	"fmt"
	"slices"
)

// Adjacency is an adjacency-list graph: vertex → neighbors in insertion order.
// Every vertex that appears in an edge is a key, possibly with no neighbors.
type Adjacency[K cmp.Ordered] map[K][]K

// NewUndirected builds an undirected graph; each edge {u, v} is stored as
// u→v and v→u. A self-loop is stored once.
// Complexity: O(E).
func NewUndirected[K cmp.Ordered](edges [][2]K) Adjacency[K] {
	g := make(Adjacency[K], len(edges))
	for _, e := range edges {
		g.AddEdge(e[0], e[1], false)
	}

	return g
}

// NewDirected builds a directed graph with one arc u→v per edge.
// Complexity: O(E).
func NewDirected[K cmp.Ordered](edges [][2]K) Adjacency[K] {
	g := make(Adjacency[K], len(edges))
	for _, e := range edges {
		g.AddEdge(e[0], e[1], true)
	}

	return g
}

// AddVertex registers v without neighbors; existing vertices are untouched.
func (g Adjacency[K]) AddVertex(v K) {
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
}

// AddEdge adds u→v, and v→u as well unless directed.
func (g Adjacency[K]) AddEdge(u, v K, directed bool) {
	g.AddVertex(u)
	g.AddVertex(v)
	g[u] = append(g[u], v)
	if !directed && u != v {
		g[v] = append(g[v], u)
	}
}

// Has reports whether v is a vertex of g.
func (g Adjacency[K]) Has(v K) bool {
	_, ok := g[v]
	return ok
}

// Neighbors returns the neighbors of v in insertion order.
// Errors: ErrVertexNotFound.
func (g Adjacency[K]) Neighbors(v K) ([]K, error) {
	nbs, ok := g[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return nbs, nil
}

// Vertices returns all vertices in ascending order.
// Complexity: O(V log V).
func (g Adjacency[K]) Vertices() []K {
	out := make([]K, 0, len(g))
	for v := range g {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}
