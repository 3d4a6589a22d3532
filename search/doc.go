// Package search provides array searching (linear, binary, interpolation)
// and the adjacency-list graph type traversed by the bfs and dfs packages.
//
// Array searches return (index, found). Binary and Interpolation require the
// input to be sorted in ascending order; Search dispatches on a closed Method
// enum and falls back to Linear for unsorted input.
//
// Complexity:
//
//   - Linear:        O(n)
//   - Binary:        O(log n)
//   - Interpolation: O(log log n) on uniformly distributed keys, O(n) worst case
//
// Adjacency[K] maps a vertex to its neighbors in insertion order, so every
// traversal over it is deterministic.
package search
