// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search implements the three search strategies benchmarked by
// searchbench.
//
// # Functions
//
//   - Linear: sequential scan, no ordering precondition
//   - BinaryIterative: loop over a shrinking low/high window
//   - BinaryRecursive: the same window expressed as self-invocation
//   - BinaryRecursiveRange: BinaryRecursive with explicit bounds
//
// All functions return the index of the target or NotFound (-1). The
// binary variants require input sorted in ascending order; on unsorted
// input the result is unspecified but the call still terminates.
//
// None of the functions modify the slice they are given.
//
// # Usage
//
//	idx := search.Linear(items, 42)
//
//	slices.Sort(items)
//	idx = search.BinaryIterative(items, 42)
//	idx = search.BinaryRecursive(items, 42)
package search
