// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/searchbench/internal/benchmark"
)

// sampleReport builds a two-size report with hand-picked durations.
func sampleReport() *benchmark.Report {
	algs := benchmark.StandardAlgorithms()
	passed := benchmark.TrialStatusPassed

	binary := func() []benchmark.Trial {
		return []benchmark.Trial{
			{Size: 10, Sorted: true, Sort: 5 * time.Microsecond, Existing: 100 * time.Nanosecond, Missing: 200 * time.Nanosecond, Status: passed},
			{Size: 100, Sorted: true, Sort: 20 * time.Microsecond, Existing: 200 * time.Nanosecond, Missing: 300 * time.Nanosecond, Status: passed},
		}
	}

	r := &benchmark.Report{
		RunID:      "run-1",
		Seed:       42,
		SharedSort: true,
		Sizes:      []int{10, 100},
		Duration:   1500 * time.Millisecond,
		Series: []benchmark.Series{
			{Algorithm: algs[0], Trials: []benchmark.Trial{
				{Size: 10, Existing: time.Microsecond, Missing: 2 * time.Microsecond, Status: passed},
				{Size: 100, Existing: 10 * time.Microsecond, Missing: 50 * time.Microsecond, Status: passed},
			}},
			{Algorithm: algs[1], Trials: binary()},
			{Algorithm: algs[2], Trials: binary()},
		},
		PassedTrials: 6,
	}
	return r
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

// =============================================================================
// PLAIN TABLE TESTS
// =============================================================================

func TestWriteTables_Linear(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, SummaryTitle)
	assert.Contains(t, out, "\nLinear Search:\n")

	header := fmt.Sprintf("| %-15s | %-23s | %-38s |", "List Size", "Time (ms) - Existing", "Time (ms) - Missing (Worst Case)")
	separator := "|" + strings.Repeat("-", 17) + "|" + strings.Repeat("-", 25) + "|" + strings.Repeat("-", 40) + "|"
	row := fmt.Sprintf("| %-15s | %-23s | %-38s |", "10", "0.0010", "0.0020")

	assert.Contains(t, out, header+"\n"+separator+"\n"+row+"\n")
	assert.Contains(t, out, fmt.Sprintf("| %-15s | %-23s | %-38s |", "100", "0.0100", "0.0500"))
}

func TestWriteTables_Binary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "\nBinary Search (Iterative) (Includes sort time):\n")
	assert.Contains(t, out, "\nBinary Search (Recursive) (Includes sort time):\n")

	row := fmt.Sprintf("| %-15s | %-24s | %-32s | %-47s |", "100", "0.0200", "0.0002", "0.0003")
	assert.Equal(t, 2, strings.Count(out, row), "both binary tables report the shared sort")
}

func TestWriteTables_FixedWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, sampleReport()))

	widths := map[int]int{}
	for _, line := range lines(buf.String()) {
		if strings.HasPrefix(line, "|") {
			widths[len(line)]++
		}
	}

	// Linear: 1 + 17+1 + 25+1 + 40+1. Binary: 1 + 17+1 + 26+1 + 34+1 + 49+1.
	assert.Equal(t, map[int]int{86: 4, 131: 8}, widths)
}

func TestWriteTables_WriteError(t *testing.T) {
	assert.EqualError(t, WriteTables(failingWriter{}, sampleReport()), "disk full")
}

// =============================================================================
// STYLED TABLE TESTS
// =============================================================================

func TestWriteStyled(t *testing.T) {
	r := sampleReport()
	r.Series[2].Trials[1].Status = benchmark.TrialStatusFailed

	var buf bytes.Buffer
	require.NoError(t, WriteStyled(&buf, r))
	out := buf.String()

	assert.Contains(t, out, SummaryTitle)
	assert.Contains(t, out, "Linear Search:")
	assert.Contains(t, out, "Sort Time (ms)")
	assert.Contains(t, out, "0.0500")
	assert.Contains(t, out, "0.0200")
}

// =============================================================================
// ANALYSIS TESTS
// =============================================================================

func TestWriteAnalysis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, sampleReport()))
	out := buf.String()

	for _, line := range closingNote {
		assert.Contains(t, out, line)
	}
	assert.Contains(t, out, "Break-even (sort + worst-case search vs Linear Search worst case):")
	assert.Contains(t, out, "  - Binary Search (Iterative): faster from 100 elements; at 100 elements the sort pays off after 1 worst-case queries")
	assert.Contains(t, out, methodologyNote(true))
	assert.NotContains(t, out, "WARNING")
}

func TestWriteAnalysis_NotReached(t *testing.T) {
	r := sampleReport()
	for i := range r.Series[1].Trials {
		r.Series[1].Trials[i].Sort = time.Second
		r.Series[1].Trials[i].Missing = time.Second
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, r))

	assert.Contains(t, buf.String(), "Binary Search (Iterative): not reached at any measured size; no per-query saving at 100 elements")
}

func TestWriteAnalysis_Failures(t *testing.T) {
	r := sampleReport()
	r.SharedSort = false
	r.Series[0].Trials[0].Status = benchmark.TrialStatusFailed
	r.Series[0].Trials[0].ExistingIndex = 3
	r.Series[0].Trials[0].MissingIndex = 7

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, r))
	out := buf.String()

	assert.Contains(t, out, methodologyNote(false))
	assert.Contains(t, out, "WARNING: 1 trial(s) returned an unexpected index:")
	assert.Contains(t, out, "  - Linear Search at 10 elements: existing index 3, missing index 7")
}

func TestWriteAnalysis_NoBaseline(t *testing.T) {
	r := sampleReport()
	r.Series = r.Series[1:]

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, r))
	assert.NotContains(t, buf.String(), "Break-even")
}

// =============================================================================
// HEADER AND COMBINED OUTPUT TESTS
// =============================================================================

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, sampleReport(), "go1.24.0 linux/amd64"))
	out := buf.String()

	assert.Contains(t, out, "--- Run Details ---")
	assert.Contains(t, out, "Run ID:   run-1")
	assert.Contains(t, out, "Seed:     42")
	assert.Contains(t, out, "Sort:     shared (timed once per size)")
	assert.Contains(t, out, "Duration: 1.5s")
	assert.Contains(t, out, "Host:     go1.24.0 linux/amd64")
}

func TestWriteHeader_NoHost(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, sampleReport(), ""))
	assert.NotContains(t, buf.String(), "Host:")
}

func TestWrite_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), Options{}))
	out := buf.String()

	details := strings.Index(out, "--- Run Details ---")
	summary := strings.Index(out, SummaryTitle)
	analysis := strings.Index(out, "Additional Analysis:")

	assert.True(t, details >= 0 && details < summary && summary < analysis, "sections out of order:\n%s", out)
}

func TestWrite_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), Options{Styled: true, Host: "test-host"}))
	out := buf.String()

	assert.Contains(t, out, "test-host")
	assert.Contains(t, out, "Additional Analysis:")
	assert.NotContains(t, out, "|-----------------|", "styled output has no pipe separators")
}

// =============================================================================
// PROGRESS TESTS
// =============================================================================

func TestProgressPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressPrinter(&buf, true)

	linear := benchmark.StandardAlgorithms()[0]
	iterative := benchmark.StandardAlgorithms()[1]

	events := []benchmark.Event{
		{Kind: benchmark.EventRunStarted, Sizes: []int{1000}, Seed: 1},
		{Kind: benchmark.EventTrialStarted, Size: 1000},
		{Kind: benchmark.EventSearchStarted, Algorithm: linear, Target: 57, TargetKind: benchmark.TargetExisting},
		{Kind: benchmark.EventSearchFinished, Algorithm: linear, Target: 57, TargetKind: benchmark.TargetExisting, Index: 3, Elapsed: 1500 * time.Nanosecond},
		{Kind: benchmark.EventSearchStarted, Algorithm: linear, Target: 10002, TargetKind: benchmark.TargetMissing},
		{Kind: benchmark.EventSearchFinished, Algorithm: linear, Target: 10002, TargetKind: benchmark.TargetMissing, Index: -1, Elapsed: 2 * time.Millisecond},
		{Kind: benchmark.EventSortStarted, Algorithm: iterative, Size: 1000},
		{Kind: benchmark.EventSortFinished, Algorithm: iterative, Size: 1000, Elapsed: 250 * time.Microsecond},
		{Kind: benchmark.EventTrialFinished, Size: 1000},
	}
	for _, e := range events {
		p.Observe(e)
	}
	require.NoError(t, p.Err())

	assert.Equal(t, []string{
		BannerTitle,
		BannerSubtitle,
		"",
		"--- Testing with a list of 1,000 elements ---",
		"  Running Linear Search for target 57 (existing)...",
		"    - Linear Search (existing): Index 3, Time: 0.0015 ms",
		"  Running Linear Search for target 10002 (missing/worst case)...",
		"    - Linear Search (missing/worst case): Time: 2.0000 ms",
		"  Sorting the list for binary searches...",
		"    - Sort time: 0.2500 ms",
	}, lines(buf.String()))
}

func TestProgressPrinter_IndependentSort(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressPrinter(&buf, false)

	p.Observe(benchmark.Event{Kind: benchmark.EventSortStarted, Algorithm: benchmark.StandardAlgorithms()[2]})

	assert.Equal(t, "  Sorting the list for Binary Search (Recursive)...\n", buf.String())
}

func TestProgressPrinter_WriteError(t *testing.T) {
	p := NewProgressPrinter(failingWriter{}, true)
	p.Observe(benchmark.Event{Kind: benchmark.EventRunStarted})
	p.Observe(benchmark.Event{Kind: benchmark.EventTrialStarted, Size: 10})

	assert.EqualError(t, p.Err(), "disk full")
}

func TestProgressPrinter_WithRunner(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressPrinter(&buf, true)

	runner := benchmark.NewRunner(benchmark.WithSeed(7), benchmark.WithObserver(p))
	report, err := runner.Run(context.Background(), []int{10, 100})
	require.NoError(t, err)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, BannerTitle+"\n"+BannerSubtitle+"\n"))
	assert.Contains(t, out, "--- Testing with a list of 10 elements ---")
	assert.Contains(t, out, "--- Testing with a list of 100 elements ---")
	assert.Equal(t, 2, strings.Count(out, "Sorting the list for binary searches..."))
	assert.Equal(t, 2*runner.StepsPerTrial(), strings.Count(out, "    - "))

	var tables bytes.Buffer
	require.NoError(t, WriteTables(&tables, report))
	assert.Equal(t, 3, strings.Count(tables.String(), "| 100             |"))
}
