// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the Bubble Tea components behind the
searchbench live view.

# Components

Spinner (spinner.go) - ASCII spinner with a message and elapsed timer.
BenchmarkView (benchmark_view.go) - Progress bar across every trial step,
the current activity and the list of completed sizes.

# Feeding Events

The benchmark runner reports through benchmark.Observer. ProgramObserver
forwards those events to a running tea.Program as BenchmarkEventMsg values;
the caller sends BenchmarkCompleteMsg when Run returns:

	view := components.NewBenchmarkView(runner.StepsPerTrial()*len(sizes), cancel)
	p := tea.NewProgram(view)
	runner := benchmark.NewRunner(benchmark.WithObserver(components.ProgramObserver(p)))
*/
package components
