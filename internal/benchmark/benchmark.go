// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/searchbench/internal/dataset"
	"github.com/jeranaias/searchbench/internal/search"
)

// =============================================================================
// BENCHMARK RUNNER
// =============================================================================

// Runner executes search benchmarks over a sequence of collection sizes.
// Note: Runner is not thread-safe and should not be used concurrently
// from multiple goroutines.
type Runner struct {
	algorithms []Algorithm
	seed       uint64
	rng        *rand.Rand
	sharedSort bool
	observer   Observer
	logger     *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithAlgorithms replaces the standard algorithm suite.
func WithAlgorithms(algorithms []Algorithm) Option {
	return func(r *Runner) {
		r.algorithms = slices.Clone(algorithms)
	}
}

// WithSeed fixes the random seed. Zero picks a fresh seed.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithSharedSort selects whether the sort is timed once per size (true)
// or once per sorted-input algorithm (false).
func WithSharedSort(shared bool) Option {
	return func(r *Runner) {
		r.sharedSort = shared
	}
}

// WithObserver sets the progress observer.
func WithObserver(observer Observer) Option {
	return func(r *Runner) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// WithLogger sets the logger used for run and trial diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a new benchmark runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		algorithms: StandardAlgorithms(),
		sharedSort: true,
		observer:   nopObserver{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.seed == 0 {
		r.seed = rand.Uint64()
	}
	r.rng = rand.New(rand.NewPCG(r.seed, r.seed^0x9e3779b97f4a7c15))

	return r
}

// Seed returns the seed driving data generation and target selection.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Algorithms returns the algorithms measured by the runner.
func (r *Runner) Algorithms() []Algorithm {
	return slices.Clone(r.algorithms)
}

// StepsPerTrial returns how many search and sort events a single size
// produces.
func (r *Runner) StepsPerTrial() int {
	steps := 2 * len(r.algorithms)

	sorted := len(FilterByFamily(r.algorithms, FamilyBinary))
	if sorted > 0 {
		if r.sharedSort {
			steps++
		} else {
			steps += sorted
		}
	}

	return steps
}

// Run measures every algorithm for each size in order. When ctx is
// cancelled between sizes the partial report is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, sizes []int) (*Report, error) {
	report := &Report{
		RunID:      uuid.NewString(),
		Seed:       r.seed,
		SharedSort: r.sharedSort,
		Sizes:      slices.Clone(sizes),
		StartTime:  time.Now(),
		Series:     make([]Series, len(r.algorithms)),
	}
	for i, alg := range r.algorithms {
		report.Series[i] = Series{Algorithm: alg, Trials: make([]Trial, 0, len(sizes))}
	}

	logger := r.logger.With(zap.String("run_id", report.RunID))
	logger.Info("benchmark run started",
		zap.Uint64("seed", r.seed),
		zap.Ints("sizes", sizes),
		zap.Bool("shared_sort", r.sharedSort),
	)
	r.observer.Observe(Event{Kind: EventRunStarted, Sizes: report.Sizes, Seed: r.seed})

	for _, size := range sizes {
		// Check for context cancellation before each size
		select {
		case <-ctx.Done():
			report.finish()
			logger.Warn("benchmark run cancelled", zap.Int("next_size", size))
			return report, ctx.Err()
		default:
		}

		trials, err := r.runTrial(logger, size)
		if err != nil {
			report.finish()
			return report, fmt.Errorf("trial for size %d: %w", size, err)
		}
		for i, trial := range trials {
			report.Series[i].Trials = append(report.Series[i].Trials, trial)
		}
	}

	report.finish()
	logger.Info("benchmark run finished",
		zap.Duration("duration", report.Duration),
		zap.Int("passed", report.PassedTrials),
		zap.Int("failed", report.FailedTrials),
	)
	r.observer.Observe(Event{Kind: EventRunFinished, Report: report})

	return report, nil
}

// runTrial generates one collection and times every algorithm against it.
func (r *Runner) runTrial(logger *zap.Logger, size int) ([]Trial, error) {
	r.observer.Observe(Event{Kind: EventTrialStarted, Size: size})

	items, err := dataset.Generate(r.rng, size)
	if err != nil {
		return nil, err
	}
	existing := dataset.PickExisting(r.rng, items)
	missing := dataset.MissingTarget(size)

	var (
		sorted     []int
		sortedTime time.Duration
	)

	trials := make([]Trial, 0, len(r.algorithms))
	for _, alg := range r.algorithms {
		trial := Trial{
			Size:           size,
			ExistingTarget: existing,
			MissingTarget:  missing,
		}

		input := items
		if alg.RequiresSorted() {
			switch {
			case sorted == nil:
				sorted, sortedTime = r.timedSort(alg, items)
				input = sorted
			case r.sharedSort:
				// Same measured sort, separate copy to search.
				input = slices.Clone(sorted)
			default:
				input, sortedTime = r.timedSort(alg, items)
			}
			trial.Sorted = true
			trial.Sort = sortedTime
		}

		trial.ExistingIndex, trial.Existing = r.timedSearch(alg, input, existing, TargetExisting)
		trial.MissingIndex, trial.Missing = r.timedSearch(alg, input, missing, TargetMissing)
		trial.Status = trial.verify(input)

		logger.Debug("trial complete",
			zap.String("algorithm", alg.Key),
			zap.Int("size", size),
			zap.Duration("existing", trial.Existing),
			zap.Duration("missing", trial.Missing),
			zap.Duration("sort", trial.Sort),
			zap.String("status", string(trial.Status)),
		)
		if trial.Status == TrialStatusFailed {
			logger.Warn("search returned an unexpected index",
				zap.String("algorithm", alg.Key),
				zap.Int("size", size),
				zap.Int("existing_index", trial.ExistingIndex),
				zap.Int("missing_index", trial.MissingIndex),
			)
		}

		trials = append(trials, trial)
	}

	r.observer.Observe(Event{Kind: EventTrialFinished, Size: size})
	return trials, nil
}

// timedSort measures producing a sorted copy of items.
func (r *Runner) timedSort(alg Algorithm, items []int) ([]int, time.Duration) {
	r.observer.Observe(Event{Kind: EventSortStarted, Size: len(items), Algorithm: alg})

	start := time.Now()
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	elapsed := time.Since(start)

	r.observer.Observe(Event{Kind: EventSortFinished, Size: len(items), Algorithm: alg, Elapsed: elapsed})
	return sorted, elapsed
}

// timedSearch measures a single search call.
func (r *Runner) timedSearch(alg Algorithm, items []int, target int, kind TargetKind) (int, time.Duration) {
	r.observer.Observe(Event{
		Kind:       EventSearchStarted,
		Size:       len(items),
		Algorithm:  alg,
		Target:     target,
		TargetKind: kind,
	})

	start := time.Now()
	index := alg.Search(items, target)
	elapsed := time.Since(start)

	r.observer.Observe(Event{
		Kind:       EventSearchFinished,
		Size:       len(items),
		Algorithm:  alg,
		Target:     target,
		TargetKind: kind,
		Index:      index,
		Elapsed:    elapsed,
	})
	return index, elapsed
}

// verify checks the indices a trial recorded against the searched input.
func (t Trial) verify(items []int) TrialStatus {
	if t.ExistingIndex < 0 || t.ExistingIndex >= len(items) || items[t.ExistingIndex] != t.ExistingTarget {
		return TrialStatusFailed
	}
	if t.MissingIndex != search.NotFound {
		return TrialStatusFailed
	}
	return TrialStatusPassed
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// FormatMillis formats d as milliseconds with four decimals.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.4f", Millis(d))
}

// FormatDuration formats duration for display.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "N/A"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
