// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jeranaias/searchbench/internal/benchmark"
	"github.com/jeranaias/searchbench/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// BenchmarkEventMsg carries one runner event into the view.
type BenchmarkEventMsg struct {
	Event benchmark.Event
}

// BenchmarkCompleteMsg indicates the run returned.
type BenchmarkCompleteMsg struct {
	Report *benchmark.Report
	Error  error
}

// Sender is the part of tea.Program the observer bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramObserver forwards runner events to a Bubble Tea program.
func ProgramObserver(p Sender) benchmark.Observer {
	return benchmark.ObserverFunc(func(e benchmark.Event) {
		p.Send(BenchmarkEventMsg{Event: e})
	})
}

// =============================================================================
// BENCHMARK VIEW
// =============================================================================

const maxBarWidth = 60

// BenchmarkView renders a live benchmark run.
type BenchmarkView struct {
	width int

	totalSteps int
	doneSteps  int
	completed  []int

	progress progress.Model
	spinner  Spinner
	cancel   context.CancelFunc

	report    *benchmark.Report
	err       error
	done      bool
	cancelled bool
}

// NewBenchmarkView creates a view expecting totalSteps search and sort
// steps. cancel is called when the user interrupts; it may be nil.
func NewBenchmarkView(totalSteps int, cancel context.CancelFunc) *BenchmarkView {
	return &BenchmarkView{
		width:      maxBarWidth,
		totalSteps: totalSteps,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth-20)),
		spinner:    NewSpinner(),
		cancel:     cancel,
	}
}

// SetTotalSteps sets the number of steps the run will report. Call it
// before the program starts.
func (v *BenchmarkView) SetTotalSteps(n int) {
	v.totalSteps = n
}

// Percent returns the completed share of steps in [0, 1].
func (v *BenchmarkView) Percent() float64 {
	if v.totalSteps <= 0 {
		return 0
	}
	p := float64(v.doneSteps) / float64(v.totalSteps)
	if p > 1 {
		p = 1
	}
	return p
}

// Completed returns the sizes whose trials have finished.
func (v *BenchmarkView) Completed() []int {
	return v.completed
}

// Report returns the report delivered by BenchmarkCompleteMsg.
func (v *BenchmarkView) Report() *benchmark.Report {
	return v.report
}

// Err returns the run error delivered by BenchmarkCompleteMsg.
func (v *BenchmarkView) Err() error {
	return v.err
}

// Cancelled reports whether the user interrupted the run.
func (v *BenchmarkView) Cancelled() bool {
	return v.cancelled
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the spinner.
func (v *BenchmarkView) Init() tea.Cmd {
	return v.spinner.Start()
}

// Update handles runner events, key presses and window resizes.
func (v *BenchmarkView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.progress.Width = min(msg.Width, maxBarWidth) - 20
		if v.progress.Width < 10 {
			v.progress.Width = 10
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if v.cancelled {
				// Second interrupt: stop waiting for the current size.
				return v, tea.Quit
			}
			v.cancelled = true
			if v.cancel != nil {
				v.cancel()
			}
			v.spinner.SetMessage("Cancelling after the current size")
		}
		return v, nil

	case BenchmarkEventMsg:
		v.apply(msg.Event)
		return v, nil

	case BenchmarkCompleteMsg:
		v.done = true
		v.report = msg.Report
		v.err = msg.Error
		v.spinner.Stop()
		return v, tea.Quit
	}

	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

// apply folds one runner event into the view state.
func (v *BenchmarkView) apply(e benchmark.Event) {
	var activity string

	switch e.Kind {
	case benchmark.EventRunStarted:
		activity = fmt.Sprintf("Starting run (seed %d)", e.Seed)
	case benchmark.EventTrialStarted:
		activity = fmt.Sprintf("Generating %s elements", humanize.Comma(int64(e.Size)))
	case benchmark.EventSearchStarted:
		activity = fmt.Sprintf("%s: target %d (%s) in %s elements",
			e.Algorithm.Name, e.Target, e.TargetKind, humanize.Comma(int64(e.Size)))
	case benchmark.EventSortStarted:
		activity = fmt.Sprintf("Sorting %s elements for %s", humanize.Comma(int64(e.Size)), e.Algorithm.Name)
	case benchmark.EventSearchFinished, benchmark.EventSortFinished:
		v.doneSteps++
	case benchmark.EventTrialFinished:
		v.completed = append(v.completed, e.Size)
	case benchmark.EventRunFinished:
		activity = "Finishing"
	}

	if activity != "" && !v.cancelled {
		v.spinner.SetMessage(activity)
	}
}

// View renders the view.
func (v *BenchmarkView) View() string {
	if v.done {
		switch {
		case v.cancelled:
			return styles.RenderWarning("Benchmark cancelled") + "\n"
		case v.err != nil:
			return styles.RenderError("Benchmark failed: "+v.err.Error()) + "\n"
		default:
			return styles.RenderSuccess("Benchmark complete") + "\n"
		}
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Search Efficiency Benchmark"))
	b.WriteString("\n\n")

	b.WriteString(v.spinner.View())
	b.WriteString("\n\n")

	b.WriteString(v.progress.ViewAs(v.Percent()))
	b.WriteString(lipgloss.NewStyle().Foreground(styles.TextMuted).Render(
		fmt.Sprintf("  %d/%d steps", v.doneSteps, v.totalSteps)))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Completed sizes: "))
	if len(v.completed) == 0 {
		b.WriteString(styles.Muted.Render("none yet"))
	} else {
		sizes := make([]string, len(v.completed))
		for i, size := range v.completed {
			sizes[i] = humanize.Comma(int64(size))
		}
		b.WriteString(styles.Value.Render(strings.Join(sizes, ", ")))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("ctrl+c to cancel"))
	b.WriteString("\n")

	return b.String()
}
