// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package benchmark times search algorithms over generated collections
// of increasing size.
//
// For every size the Runner generates a fresh collection, picks one
// target that is present and one that cannot be, and times each
// algorithm against both. Algorithms that need sorted input are handed a
// sorted copy whose sort time is recorded alongside the searches.
//
// # Key Types
//
//   - Runner: drives the trials for a sequence of sizes
//   - Algorithm: a named search function and its input precondition
//   - Trial: timings for one algorithm at one size
//   - Series: all trials of one algorithm, in size order
//   - Report: every series of a run plus aggregates and analysis
//   - Observer: receives progress events between timed sections
//
// # Usage
//
//	runner := benchmark.NewRunner(
//	    benchmark.WithSeed(42),
//	    benchmark.WithObserver(printer),
//	)
//	report, err := runner.Run(ctx, benchmark.DefaultSizes())
//
// # Sort Methodology
//
// By default the sort is timed once per size and the same duration is
// attached to every sorted-input series (the later series search a clone
// of the sorted copy). WithSharedSort(false) times a separate sort for
// each sorted-input algorithm instead.
package benchmark
