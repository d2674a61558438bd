// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchFunc is the common shape of the three strategies.
type searchFunc func(items []int, target int) int

var strategies = map[string]searchFunc{
	"linear":           Linear[int],
	"binary iterative": BinaryIterative[int],
	"binary recursive": BinaryRecursive[int],
}

// =============================================================================
// SCENARIO TESTS
// =============================================================================

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		target int
		want   int
	}{
		{name: "middle element", items: []int{1, 3, 5, 7, 9}, target: 5, want: 2},
		{name: "first element", items: []int{1, 3, 5, 7, 9}, target: 1, want: 0},
		{name: "last element", items: []int{1, 3, 5, 7, 9}, target: 9, want: 4},
		{name: "gap between elements", items: []int{1, 3, 5, 7, 9}, target: 4, want: NotFound},
		{name: "below range", items: []int{1, 3, 5, 7, 9}, target: 0, want: NotFound},
		{name: "above range", items: []int{1, 3, 5, 7, 9}, target: 10, want: NotFound},
		{name: "empty collection", items: []int{}, target: 3, want: NotFound},
		{name: "nil collection", items: nil, target: 3, want: NotFound},
		{name: "single element hit", items: []int{42}, target: 42, want: 0},
		{name: "single element miss", items: []int{42}, target: 7, want: NotFound},
		{name: "two elements, second", items: []int{10, 20}, target: 20, want: 1},
	}

	for _, tt := range tests {
		for name, fn := range strategies {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				assert.Equal(t, tt.want, fn(tt.items, tt.target))
			})
		}
	}
}

func TestLinear_UnsortedInput(t *testing.T) {
	items := []int{9, 2, 7, 4, 7, 1}

	assert.Equal(t, 2, Linear(items, 7), "first match wins")
	assert.Equal(t, 5, Linear(items, 1))
	assert.Equal(t, NotFound, Linear(items, 3))
}

func TestLinear_Strings(t *testing.T) {
	items := []string{"delta", "alpha", "charlie"}

	assert.Equal(t, 1, Linear(items, "alpha"))
	assert.Equal(t, NotFound, Linear(items, "bravo"))
}

func TestBinary_Strings(t *testing.T) {
	items := []string{"alpha", "bravo", "charlie", "delta"}

	assert.Equal(t, 2, BinaryIterative(items, "charlie"))
	assert.Equal(t, 2, BinaryRecursive(items, "charlie"))
	assert.Equal(t, NotFound, BinaryIterative(items, "echo"))
	assert.Equal(t, NotFound, BinaryRecursive(items, "echo"))
}

// =============================================================================
// EXPLICIT RANGE TESTS
// =============================================================================

func TestBinaryRecursiveRange(t *testing.T) {
	items := []int{1, 3, 5, 7, 9, 11, 13}

	tests := []struct {
		name      string
		target    int
		low, high int
		want      int
	}{
		{name: "full window", target: 11, low: 0, high: 6, want: 5},
		{name: "target inside sub-window", target: 5, low: 1, high: 3, want: 2},
		{name: "target left of window", target: 1, low: 2, high: 6, want: NotFound},
		{name: "target right of window", target: 13, low: 0, high: 4, want: NotFound},
		{name: "empty window", target: 5, low: 4, high: 3, want: NotFound},
		{name: "negative low clamped", target: 1, low: -5, high: 2, want: 0},
		{name: "high past end clamped", target: 13, low: 3, high: 100, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BinaryRecursiveRange(items, tt.target, tt.low, tt.high))
		})
	}
}

// Consecutive calls must not share a resolved upper bound.
func TestBinaryRecursive_IndependentCalls(t *testing.T) {
	short := []int{1, 2, 3}
	long := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, 2, BinaryRecursive(short, 3))
	assert.Equal(t, 9, BinaryRecursive(long, 10))
	assert.Equal(t, NotFound, BinaryRecursive(short, 10))
}

// =============================================================================
// LARGE INPUT TESTS
// =============================================================================

func TestSearch_LargeSortedInput(t *testing.T) {
	const size = 1_000_000

	items := make([]int, size)
	for i := range items {
		items[i] = i*10 + 1
	}

	for _, idx := range []int{0, 1, size / 3, size / 2, size - 2, size - 1} {
		target := items[idx]
		require.Equal(t, idx, BinaryIterative(items, target))
		require.Equal(t, idx, BinaryRecursive(items, target))
	}

	missing := size*10 + 2
	assert.Equal(t, NotFound, BinaryIterative(items, missing))
	assert.Equal(t, NotFound, BinaryRecursive(items, missing))
	assert.Equal(t, NotFound, Linear(items, missing))
}
