// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// RangeMultiplier sets the generation range to [1, RangeMultiplier*size].
const RangeMultiplier = 10

var (
	// ErrInvalidSize is returned for sizes below 1.
	ErrInvalidSize = errors.New("collection size must be positive")

	// ErrRangeTooSmall is returned when more distinct values are requested
	// than the range holds.
	ErrRangeTooSmall = errors.New("sample larger than population")
)

// Generate returns size distinct integers from [1, RangeMultiplier*size]
// in random order.
func Generate(r *rand.Rand, size int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return Sample(r, 1, size*RangeMultiplier, size)
}

// Sample draws k distinct integers uniformly from the inclusive range
// [lo, hi]. It runs a partial Fisher-Yates shuffle over a virtual array,
// keeping only displaced slots in a map, so cost is O(k) regardless of
// the range width.
func Sample(r *rand.Rand, lo, hi, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, k)
	}
	population := hi - lo + 1
	if population < k {
		return nil, fmt.Errorf("%w: k=%d, range [%d, %d]", ErrRangeTooSmall, k, lo, hi)
	}

	out := make([]int, k)
	displaced := make(map[int]int, k)

	for i := 0; i < k; i++ {
		j := i + r.IntN(population-i)

		vj, ok := displaced[j]
		if !ok {
			vj = j
		}
		vi, ok := displaced[i]
		if !ok {
			vi = i
		}

		displaced[j] = vi
		out[i] = lo + vj
	}

	return out, nil
}

// PickExisting returns a uniformly chosen element of items.
// items must not be empty.
func PickExisting(r *rand.Rand, items []int) int {
	return items[r.IntN(len(items))]
}

// MissingTarget returns a value outside the generation range for size.
func MissingTarget(size int) int {
	return size*RangeMultiplier + 2
}
