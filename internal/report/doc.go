// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders benchmark progress and results as text.
//
// # Output Sections
//
//   - Progress: ProgressPrinter is a benchmark.Observer that prints the
//     banner, one header per size and one line per search or sort step
//   - Run details: run id, seed and host description
//   - Tables: one fixed-column pipe table per algorithm, or boxed tables
//     when styled output is selected
//   - Analysis: closing note, break-even sizes, sort methodology and any
//     failed trials
//
// All durations are printed in milliseconds with four decimals.
package report
