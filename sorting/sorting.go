// SPDX-License-Identifier: MIT
package sorting

import "cmp"

// Bubble sorts arr by repeatedly swapping adjacent out-of-order pairs.
// A pass without swaps ends the sort early.
func Bubble[T cmp.Ordered](arr []T) []T {
	var pass, i int
	var swapped bool
	for pass = len(arr) - 1; pass > 0; pass-- {
		swapped = false
		for i = 0; i < pass; i++ {
			if arr[i] > arr[i+1] {
				arr[i], arr[i+1] = arr[i+1], arr[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return arr
}

// Insertion sorts arr by shifting each element left into its place.
func Insertion[T cmp.Ordered](arr []T) []T {
	var j int
	for i := 1; i < len(arr); i++ {
		current := arr[i]
		for j = i - 1; j >= 0 && current < arr[j]; j-- {
			arr[j+1] = arr[j]
		}
		arr[j+1] = current
	}

	return arr
}

// Selection sorts arr by moving the maximum of the unsorted prefix to its end.
func Selection[T cmp.Ordered](arr []T) []T {
	var pass, i, maxIdx int
	for pass = len(arr) - 1; pass > 0; pass-- {
		maxIdx = 0
		for i = 1; i <= pass; i++ {
			if arr[i] > arr[maxIdx] {
				maxIdx = i
			}
		}
		arr[maxIdx], arr[pass] = arr[pass], arr[maxIdx]
	}

	return arr
}

// Merge sorts arr with top-down merge sort. Equal elements keep their order.
func Merge[T cmp.Ordered](arr []T) []T {
	if len(arr) < 2 {
		return arr
	}
	scratch := make([]T, len(arr))
	mergeSort(arr, scratch)

	return arr
}

// mergeSort sorts arr using scratch (same length) as the merge buffer.
func mergeSort[T cmp.Ordered](arr, scratch []T) {
	if len(arr) < 2 {
		return
	}
	mid := len(arr) / 2
	mergeSort(arr[:mid], scratch[:mid])
	mergeSort(arr[mid:], scratch[mid:])

	copy(scratch, arr)
	left, right := scratch[:mid], scratch[mid:]
	var i, j, k int
	for i < len(left) && j < len(right) {
		// <= keeps the left element first on ties (stability)
		if left[i] <= right[j] {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])
}
