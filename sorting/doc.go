// Package sorting implements the classic comparison sorts over any
// cmp.Ordered element type.
//
// Every function sorts its argument in place and returns the same slice for
// call chaining.
//
//   - Bubble:    O(n²), stops after the first pass without swaps (O(n) on sorted input).
//   - Insertion: O(n²), O(n) on sorted input, stable.
//   - Selection: O(n²) comparisons, at most n-1 swaps; moves the maximum to the end each pass.
//   - Merge:     O(n log n), stable, O(n) scratch space.
//
// Floating-point NaN values have no defined position.
package sorting
