// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jeranaias/searchbench/internal/benchmark"
	"github.com/jeranaias/searchbench/internal/ui/styles"
)

// closingNote prompts the reader to weigh the sort cost against the linear
// worst case.
var closingNote = []string{
	"Additional Analysis:",
	"For a complete evaluation of Binary Search on initially unsorted data,",
	"the total 'Sort + Search' time must be considered.",
	"Comparing Linear Search's 'Time (ms) - Missing (Worst Case)' with the sum",
	"of 'Sort Time (ms)' and 'Search Time (ms) - Missing (Worst Case)' of Binary Search (iterative or recursive)",
	"shows the point at which Binary Search becomes more efficient, even with the cost of sorting.",
}

// Options controls Write.
type Options struct {
	// Styled renders boxed, colored tables instead of pipe tables.
	Styled bool
	// Host describes the machine; empty omits the line.
	Host string
}

// Write renders the run details, the tables and the analysis.
func Write(w io.Writer, r *benchmark.Report, opts Options) error {
	lw := &lineWriter{w: w}

	writeHeader(lw, r, opts.Host, opts.Styled)
	if opts.Styled {
		writeStyled(lw, r)
	} else {
		writeTables(lw, r)
	}
	writeAnalysis(lw, r, opts.Styled)

	return lw.err
}

// =============================================================================
// RUN DETAILS
// =============================================================================

// WriteHeader writes run id, seed, sort methodology and, when host is not
// empty, the host description.
func WriteHeader(w io.Writer, r *benchmark.Report, host string) error {
	lw := &lineWriter{w: w}
	writeHeader(lw, r, host, false)
	return lw.err
}

func writeHeader(lw *lineWriter, r *benchmark.Report, host string, styled bool) {
	pairs := [][2]string{
		{"Run ID", r.RunID},
		{"Seed", fmt.Sprintf("%d", r.Seed)},
		{"Sort", sortMethodology(r.SharedSort)},
		{"Duration", benchmark.FormatDuration(r.Duration)},
	}
	if host != "" {
		pairs = append(pairs, [2]string{"Host", host})
	}

	title := "--- Run Details ---"
	if styled {
		title = styles.Title.Render(title)
	}
	lw.printf("\n%s\n", title)

	for _, kv := range pairs {
		label := fmt.Sprintf("%-9s", kv[0]+":")
		if styled {
			lw.printf("%s %s\n", styles.Label.Render(label), styles.Value.Render(kv[1]))
		} else {
			lw.printf("%s %s\n", label, kv[1])
		}
	}
}

func sortMethodology(shared bool) string {
	if shared {
		return "shared (timed once per size)"
	}
	return "independent (timed per binary variant)"
}

// =============================================================================
// ANALYSIS
// =============================================================================

// WriteAnalysis writes the closing note, the break-even summary, the sort
// methodology note and any failed trials.
func WriteAnalysis(w io.Writer, r *benchmark.Report) error {
	lw := &lineWriter{w: w}
	writeAnalysis(lw, r, false)
	return lw.err
}

func writeAnalysis(lw *lineWriter, r *benchmark.Report, styled bool) {
	lw.printf("\n")
	for _, line := range closingNote {
		lw.println(line)
	}

	if breakEvens := r.BreakEvens(); len(breakEvens) > 0 {
		lw.printf("\nBreak-even (sort + worst-case search vs %s worst case):\n", breakEvens[0].Baseline.Name)
		for _, be := range breakEvens {
			lw.printf("  - %s: %s\n", be.Algorithm.Name, describeBreakEven(be))
		}
	}

	note := methodologyNote(r.SharedSort)
	if styled {
		note = styles.Muted.Render(note)
	}
	lw.printf("\n%s\n", note)

	failures := r.Failures()
	if len(failures) == 0 {
		return
	}

	headline := fmt.Sprintf("WARNING: %d trial(s) returned an unexpected index:", len(failures))
	if styled {
		headline = styles.RenderWarning(headline)
	}
	lw.printf("\n%s\n", headline)
	for _, f := range failures {
		lw.printf("  - %s at %s elements: existing index %d, missing index %d\n",
			f.Algorithm.Name, humanize.Comma(int64(f.Trial.Size)),
			f.Trial.ExistingIndex, f.Trial.MissingIndex)
	}
}

func describeBreakEven(be benchmark.BreakEven) string {
	var reached string
	if be.Reached {
		reached = fmt.Sprintf("faster from %s elements", humanize.Comma(int64(be.Size)))
	} else {
		reached = "not reached at any measured size"
	}

	largest := humanize.Comma(int64(be.LargestSize))
	if be.QueriesToAmortize == 0 {
		return fmt.Sprintf("%s; no per-query saving at %s elements", reached, largest)
	}
	return fmt.Sprintf("%s; at %s elements the sort pays off after %s worst-case queries",
		reached, largest, humanize.Comma(int64(be.QueriesToAmortize)))
}

func methodologyNote(shared bool) string {
	if shared {
		return "Note: the sort was timed once per size; the same sort time is reported for both binary variants."
	}
	return "Note: each binary variant timed its own sort of the unsorted list."
}
