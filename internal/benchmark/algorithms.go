// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"github.com/jeranaias/searchbench/internal/search"
)

// =============================================================================
// ALGORITHM DEFINITIONS
// =============================================================================

// SearchFunc returns the index of target in items or search.NotFound.
type SearchFunc func(items []int, target int) int

// Family groups algorithms by the precondition they place on input.
type Family string

const (
	FamilyLinear Family = "linear"
	FamilyBinary Family = "binary"
)

// Algorithm is a single benchmarked search strategy.
type Algorithm struct {
	Key         string
	Name        string
	Family      Family
	Search      SearchFunc
	Description string
}

// RequiresSorted reports whether the algorithm must be given sorted input.
func (a Algorithm) RequiresSorted() bool {
	return a.Family == FamilyBinary
}

// Algorithm keys.
const (
	KeyLinear          = "linear"
	KeyBinaryIterative = "binary-iterative"
	KeyBinaryRecursive = "binary-recursive"
)

// =============================================================================
// STANDARD SUITE
// =============================================================================

// StandardAlgorithms returns linear, iterative binary and recursive binary
// search, in the order they are measured.
func StandardAlgorithms() []Algorithm {
	return []Algorithm{
		{
			Key:         KeyLinear,
			Name:        "Linear Search",
			Family:      FamilyLinear,
			Search:      search.Linear[int],
			Description: "Sequential scan of the unsorted collection",
		},
		{
			Key:         KeyBinaryIterative,
			Name:        "Binary Search (Iterative)",
			Family:      FamilyBinary,
			Search:      search.BinaryIterative[int],
			Description: "Loop over a halving window of the sorted copy",
		},
		{
			Key:         KeyBinaryRecursive,
			Name:        "Binary Search (Recursive)",
			Family:      FamilyBinary,
			Search:      search.BinaryRecursive[int],
			Description: "Self-invocation on a halving window of a cloned sorted copy",
		},
	}
}

// DefaultSizes returns the collection sizes measured when none are given.
func DefaultSizes() []int {
	return []int{10, 100, 1000, 10000, 100000, 1000000}
}

// =============================================================================
// SUITE HELPERS
// =============================================================================

// FilterByFamily returns only algorithms of a specific family.
func FilterByFamily(algorithms []Algorithm, family Family) []Algorithm {
	filtered := make([]Algorithm, 0)
	for _, alg := range algorithms {
		if alg.Family == family {
			filtered = append(filtered, alg)
		}
	}
	return filtered
}

// FindAlgorithm looks up an algorithm by key.
func FindAlgorithm(algorithms []Algorithm, key string) (Algorithm, bool) {
	for _, alg := range algorithms {
		if alg.Key == key {
			return alg, true
		}
	}
	return Algorithm{}, false
}
