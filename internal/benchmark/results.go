// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"fmt"
	"math"
	"time"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Report contains the complete results of one run.
type Report struct {
	RunID        string
	Seed         uint64
	SharedSort   bool
	Sizes        []int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Series       []Series
	PassedTrials int
	FailedTrials int
}

// Series holds every trial of one algorithm, in size order.
type Series struct {
	Algorithm Algorithm
	Trials    []Trial
}

// Trial contains the timings of one algorithm at one collection size.
type Trial struct {
	Size           int
	ExistingTarget int
	MissingTarget  int
	ExistingIndex  int
	MissingIndex   int
	Existing       time.Duration // search for a present value
	Missing        time.Duration // search for an absent value (worst case)
	Sort           time.Duration // zero unless Sorted
	Sorted         bool
	Status         TrialStatus
}

// TrialStatus indicates whether a trial's search results were correct.
type TrialStatus string

const (
	TrialStatusPassed TrialStatus = "passed"
	TrialStatusFailed TrialStatus = "failed"
)

// WorstCaseTotal returns the sort time plus the missing-target search time.
func (t Trial) WorstCaseTotal() time.Duration {
	return t.Sort + t.Missing
}

// Trial returns the trial measured at size.
func (s Series) Trial(size int) (Trial, bool) {
	for _, t := range s.Trials {
		if t.Size == size {
			return t, true
		}
	}
	return Trial{}, false
}

// =============================================================================
// RESULT COMPUTATION
// =============================================================================

// finish stamps the end time and computes aggregates.
func (r *Report) finish() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.computeAggregates()
}

// computeAggregates counts passed and failed trials.
func (r *Report) computeAggregates() {
	r.PassedTrials, r.FailedTrials = 0, 0
	for _, s := range r.Series {
		for _, t := range s.Trials {
			if t.Status == TrialStatusPassed {
				r.PassedTrials++
			} else if t.Status == TrialStatusFailed {
				r.FailedTrials++
			}
		}
	}
}

// SeriesFor returns the series of the algorithm with the given key.
func (r *Report) SeriesFor(key string) (Series, bool) {
	for _, s := range r.Series {
		if s.Algorithm.Key == key {
			return s, true
		}
	}
	return Series{}, false
}

// FailedTrial identifies a trial whose results were incorrect.
type FailedTrial struct {
	Algorithm Algorithm
	Trial     Trial
}

// Failures lists every failed trial.
func (r *Report) Failures() []FailedTrial {
	var failed []FailedTrial
	for _, s := range r.Series {
		for _, t := range s.Trials {
			if t.Status == TrialStatusFailed {
				failed = append(failed, FailedTrial{Algorithm: s.Algorithm, Trial: t})
			}
		}
	}
	return failed
}

// =============================================================================
// RESULT ANALYSIS
// =============================================================================

// BreakEven compares a sorted-input algorithm with the unsorted baseline.
type BreakEven struct {
	Algorithm Algorithm
	Baseline  Algorithm

	// Size is the smallest size at which sort plus worst-case search beat
	// the baseline's worst case. Valid only when Reached.
	Size    int
	Reached bool

	// At the largest measured size: how many worst-case queries it takes
	// for the one-off sort to pay for itself. Zero when the algorithm is
	// not faster per query there.
	LargestSize       int
	QueriesToAmortize int
}

// BreakEvens analyses every sorted-input series against the first series
// that searches unsorted input. Returns nil when there is no baseline.
func (r *Report) BreakEvens() []BreakEven {
	var baseline *Series
	for i := range r.Series {
		if !r.Series[i].Algorithm.RequiresSorted() {
			baseline = &r.Series[i]
			break
		}
	}
	if baseline == nil {
		return nil
	}

	var results []BreakEven
	for _, s := range r.Series {
		if !s.Algorithm.RequiresSorted() {
			continue
		}

		be := BreakEven{Algorithm: s.Algorithm, Baseline: baseline.Algorithm}
		for _, t := range s.Trials {
			base, ok := baseline.Trial(t.Size)
			if !ok {
				continue
			}
			if !be.Reached && t.WorstCaseTotal() < base.Missing {
				be.Size = t.Size
				be.Reached = true
			}
			if t.Size >= be.LargestSize {
				be.LargestSize = t.Size
				be.QueriesToAmortize = queriesToAmortize(t, base)
			}
		}
		results = append(results, be)
	}

	return results
}

// queriesToAmortize returns the smallest n with
// t.Sort + n*t.Missing < n*base.Missing, or 0 when no such n exists.
func queriesToAmortize(t, base Trial) int {
	saving := base.Missing - t.Missing
	if saving <= 0 {
		return 0
	}
	n := int(math.Floor(float64(t.Sort)/float64(saving))) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// =============================================================================
// SUMMARY GENERATION
// =============================================================================

// Summary returns a text summary of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf(
		"Run: %s\n"+
			"Seed: %d\n"+
			"Sizes: %d\n"+
			"Duration: %s\n"+
			"Trials: %d passed, %d failed",
		r.RunID,
		r.Seed,
		len(r.Sizes),
		FormatDuration(r.Duration),
		r.PassedTrials,
		r.FailedTrials,
	)
}
