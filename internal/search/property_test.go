// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Generated values stay inside [0, maxValue]; anything above is absent.
const maxValue = 10_000

func TestSearchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("linear search finds a present element", prop.ForAll(
		func(items []int, pick int) string {
			items = append(items, pick)
			target := items[pick%len(items)]

			idx := Linear(items, target)
			if idx == NotFound {
				return fmt.Sprintf("target %d not found in %v", target, items)
			}
			if items[idx] != target {
				return fmt.Sprintf("index %d holds %d, want %d", idx, items[idx], target)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(0, maxValue)),
		gen.IntRange(0, maxValue),
	))

	properties.Property("binary variants agree on present elements", prop.ForAll(
		func(items []int, pick int) string {
			sorted := sortedUnique(append(items, pick))
			target := sorted[pick%len(sorted)]

			iterative := BinaryIterative(sorted, target)
			recursive := BinaryRecursive(sorted, target)
			if iterative == NotFound || sorted[iterative] != target {
				return fmt.Sprintf("iterative returned %d for %d", iterative, target)
			}
			if recursive != iterative {
				return fmt.Sprintf("recursive returned %d, iterative %d", recursive, iterative)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(0, maxValue)),
		gen.IntRange(0, maxValue),
	))

	properties.Property("absent targets are not found", prop.ForAll(
		func(items []int, offset int) string {
			target := maxValue + 1 + offset
			sorted := sortedUnique(items)

			if got := Linear(items, target); got != NotFound {
				return fmt.Sprintf("linear returned %d", got)
			}
			if got := BinaryIterative(sorted, target); got != NotFound {
				return fmt.Sprintf("iterative returned %d", got)
			}
			if got := BinaryRecursive(sorted, target); got != NotFound {
				return fmt.Sprintf("recursive returned %d", got)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(0, maxValue)),
		gen.IntRange(0, maxValue),
	))

	properties.Property("searches are idempotent and leave input untouched", prop.ForAll(
		func(items []int, target int) bool {
			sorted := sortedUnique(items)
			before := slices.Clone(sorted)

			for _, fn := range strategies {
				first := fn(sorted, target)
				second := fn(sorted, target)
				if first != second {
					return false
				}
			}
			return slices.Equal(before, sorted)
		},
		gen.SliceOf(gen.IntRange(0, maxValue)),
		gen.IntRange(-10, maxValue+10),
	))

	properties.TestingRun(t)
}

func sortedUnique(items []int) []int {
	out := slices.Clone(items)
	slices.Sort(out)
	return slices.Compact(out)
}
