// SPDX-License-Identifier: MIT
package search

import "cmp"

// Linear returns the index of the first element equal to target.
// Complexity: O(n).
func Linear[T comparable](arr []T, target T) (int, bool) {
	for idx, v := range arr {
		if v == target {
			return idx, true
		}
	}

	return -1, false
}

// Binary returns the index of target in an ascending slice.
// With duplicates any matching index may be returned.
// Complexity: O(log n).
func Binary[T cmp.Ordered](arr []T, target T) (int, bool) {
	low, high := 0, len(arr)-1
	var mid int
	for low <= high {
		mid = low + (high-low)/2
		switch {
		case arr[mid] == target:
			return mid, true
		case arr[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1, false
}

// Interpolation returns the index of target in an ascending slice, probing at
//
//	pos = low + (target - arr[low]) / (arr[high] - arr[low]) * (high - low)
//
// clamped to [low, high]. A flat range (arr[high] == arr[low]) stops the probe
// loop and falls back to comparing the single remaining value.
// Complexity: O(log log n) average on uniform data, O(n) worst case.
func Interpolation[T Number](arr []T, target T) (int, bool) {
	low, high := 0, len(arr)-1
	var pos int
	for low <= high && target >= arr[low] && target <= arr[high] {
		if low == high || arr[high] == arr[low] {
			if arr[low] == target {
				return low, true
			}
			return -1, false
		}
		frac := (float64(target) - float64(arr[low])) / (float64(arr[high]) - float64(arr[low]))
		pos = low + int(frac*float64(high-low))
		pos = max(min(pos, high), low)

		switch {
		case arr[pos] == target:
			return pos, true
		case arr[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}

	return -1, false
}

// Search finds target in arr. Unsorted input is always scanned linearly;
// sorted input uses method m.
//
// Errors:
//   - ErrUnknownMethod when sorted is true and m is not a declared Method.
func Search[T Number](arr []T, target T, sorted bool, m Method) (int, bool, error) {
	if !sorted {
		idx, ok := Linear(arr, target)
		return idx, ok, nil
	}
	switch m {
	case MethodLinear:
		idx, ok := Linear(arr, target)
		return idx, ok, nil
	case MethodBinary:
		idx, ok := Binary(arr, target)
		return idx, ok, nil
	case MethodInterpolation:
		idx, ok := Interpolation(arr, target)
		return idx, ok, nil
	default:
		return -1, false, ErrUnknownMethod
	}
}
