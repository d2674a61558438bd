// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jeranaias/searchbench/internal/benchmark"
)

// Banner lines printed when a run starts.
const (
	BannerTitle    = "--- Practical Case: Search Efficiency Comparison ---"
	BannerSubtitle = "--- Simulating search over a simple database ---"
)

// ProgressPrinter writes one line per benchmark step while a run is in
// flight. It implements benchmark.Observer.
type ProgressPrinter struct {
	out        *lineWriter
	sharedSort bool
}

// NewProgressPrinter creates a printer writing to w. sharedSort selects
// the wording of sort lines and must match the runner's methodology.
func NewProgressPrinter(w io.Writer, sharedSort bool) *ProgressPrinter {
	return &ProgressPrinter{out: &lineWriter{w: w}, sharedSort: sharedSort}
}

// Err returns the first write error, if any. Later events are dropped
// once a write has failed.
func (p *ProgressPrinter) Err() error {
	return p.out.err
}

// Observe implements benchmark.Observer.
func (p *ProgressPrinter) Observe(e benchmark.Event) {
	if p.out.err != nil {
		return
	}

	switch e.Kind {
	case benchmark.EventRunStarted:
		p.printf("%s\n%s\n", BannerTitle, BannerSubtitle)

	case benchmark.EventTrialStarted:
		p.printf("\n--- Testing with a list of %s elements ---\n", humanize.Comma(int64(e.Size)))

	case benchmark.EventSearchStarted:
		p.printf("  Running %s for target %d (%s)...\n", e.Algorithm.Name, e.Target, targetLabel(e.TargetKind))

	case benchmark.EventSearchFinished:
		if e.TargetKind == benchmark.TargetExisting {
			p.printf("    - %s (%s): Index %d, Time: %s ms\n",
				e.Algorithm.Name, targetLabel(e.TargetKind), e.Index, benchmark.FormatMillis(e.Elapsed))
		} else {
			p.printf("    - %s (%s): Time: %s ms\n",
				e.Algorithm.Name, targetLabel(e.TargetKind), benchmark.FormatMillis(e.Elapsed))
		}

	case benchmark.EventSortStarted:
		if p.sharedSort {
			p.printf("  Sorting the list for binary searches...\n")
		} else {
			p.printf("  Sorting the list for %s...\n", e.Algorithm.Name)
		}

	case benchmark.EventSortFinished:
		p.printf("    - Sort time: %s ms\n", benchmark.FormatMillis(e.Elapsed))
	}
}

func (p *ProgressPrinter) printf(format string, args ...any) {
	p.out.printf(format, args...)
}

// targetLabel describes a target kind the way progress lines and table
// headers do.
func targetLabel(kind benchmark.TargetKind) string {
	if kind == benchmark.TargetMissing {
		return "missing/worst case"
	}
	return "existing"
}
