// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import "cmp"

// NotFound is returned when the target is not present.
const NotFound = -1

// Linear returns the index of the first element equal to target.
func Linear[T comparable](items []T, target T) int {
	for i := range items {
		if items[i] == target {
			return i
		}
	}
	return NotFound
}

// BinaryIterative searches items, which must be sorted ascending.
func BinaryIterative[T cmp.Ordered](items []T, target T) int {
	low, high := 0, len(items)-1

	for low <= high {
		// low + (high-low)/2 cannot overflow where (low+high)/2 could.
		mid := low + (high-low)/2

		switch {
		case items[mid] == target:
			return mid
		case items[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}

// BinaryRecursive searches items, which must be sorted ascending, over
// the whole slice.
func BinaryRecursive[T cmp.Ordered](items []T, target T) int {
	return BinaryRecursiveRange(items, target, 0, len(items)-1)
}

// BinaryRecursiveRange searches the inclusive window items[low..high].
// An empty window (low > high) yields NotFound. Bounds outside the slice
// are clamped.
func BinaryRecursiveRange[T cmp.Ordered](items []T, target T, low, high int) int {
	if low < 0 {
		low = 0
	}
	if high > len(items)-1 {
		high = len(items) - 1
	}
	return binaryRecursive(items, target, low, high)
}

func binaryRecursive[T cmp.Ordered](items []T, target T, low, high int) int {
	if low > high {
		return NotFound
	}

	mid := low + (high-low)/2

	switch {
	case items[mid] == target:
		return mid
	case items[mid] < target:
		return binaryRecursive(items, target, mid+1, high)
	default:
		return binaryRecursive(items, target, low, mid-1)
	}
}
