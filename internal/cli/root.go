// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// root.go - The root command: runs the benchmark and prints the report.

package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jeranaias/searchbench/internal/benchmark"
	"github.com/jeranaias/searchbench/internal/config"
	"github.com/jeranaias/searchbench/internal/logging"
	"github.com/jeranaias/searchbench/internal/report"
	"github.com/jeranaias/searchbench/internal/sysinfo"
	"github.com/jeranaias/searchbench/internal/ui/components"
)

// rootOptions holds the values bound to root command flags.
type rootOptions struct {
	configPath string
	verbose    bool
	logLevel   string

	sizes           string
	seed            uint64
	style           string
	color           string
	independentSort bool
	quiet           bool
	tui             bool
	noEnv           bool
}

// NewRootCmd builds the searchbench command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "searchbench",
		Short: "Compare linear and binary search on growing random collections",
		Long: `searchbench times linear search, iterative binary search and recursive
binary search over random collections of unique integers, from 10 up to
1,000,000 elements. Each size is searched for a value that exists and for
one that cannot exist, and the sort that binary search depends on is timed
too, so the total cost of sorting first can be compared with scanning.`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("color") {
				return nil
			}
			switch opts.color {
			case config.ColorAuto, config.ColorAlways, config.ColorNever:
				lipgloss.SetColorProfile(ColorProfileFor(opts.color))
				return nil
			}
			return NewValidationErrorWithExample("--color", opts.color, "must be one of: auto, always, never", "--color never")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewValidationError("flags", "", err.Error())
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.searchbench/config.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose/debug logging")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.color, "color", "", "Color output: auto, always or never")

	f := cmd.Flags()
	f.StringVar(&opts.sizes, "sizes", "", "Comma-separated collection sizes (e.g. 10,100,1_000)")
	f.Uint64Var(&opts.seed, "seed", 0, "Random seed; 0 picks a fresh one")
	f.StringVar(&opts.style, "style", "", "Table style: plain or styled")
	f.BoolVar(&opts.independentSort, "independent-sort", false, "Time a separate sort for each binary search variant")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print progress lines")
	f.BoolVar(&opts.tui, "tui", false, "Show a live progress view while running")
	f.BoolVar(&opts.noEnv, "no-env", false, "Do not print the host description")

	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return cmd
}

// applyFlags overlays explicitly set flags on cfg and revalidates it.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts *rootOptions) error {
	if flags.Changed("sizes") {
		sizes, err := config.ParseSizes(opts.sizes)
		if err != nil {
			return NewValidationErrorWithExample("--sizes", opts.sizes, err.Error(), "--sizes 10,100,1_000")
		}
		cfg.Sizes = sizes
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("style") {
		cfg.Output.Style = opts.style
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if opts.independentSort {
		cfg.Sort.Shared = false
	}
	if opts.quiet {
		cfg.Output.Progress = false
	}
	if opts.noEnv {
		cfg.Output.ShowEnvironment = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return NewValidationError("flags", "", err.Error())
	}
	return nil
}

// runBenchmark is the root command's action.
func runBenchmark(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cmd.Flags(), opts); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Writer: cmd.ErrOrStderr(),
		Name:   "searchbench",
	})
	if err != nil {
		return NewValidationError("--log-level", cfg.Log.Level, err.Error())
	}
	defer func() { _ = logger.Sync() }()

	lipgloss.SetColorProfile(ColorProfileFor(cfg.Output.Color))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOpts := []benchmark.Option{
		benchmark.WithSeed(cfg.Seed),
		benchmark.WithSharedSort(cfg.Sort.Shared),
		benchmark.WithLogger(logger),
	}

	out := cmd.OutOrStdout()
	useTUI := opts.tui && isTerminalWriter(out)
	if opts.tui && !useTUI {
		logger.Warn("live view needs a terminal; printing progress lines instead")
	}

	var rep *benchmark.Report
	if useTUI {
		rep, err = runLive(ctx, cmd.InOrStdin(), out, cfg.Sizes, runOpts)
	} else {
		rep, err = runPlain(ctx, out, cfg, runOpts)
	}

	if hasTrials(rep) {
		host := ""
		if cfg.Output.ShowEnvironment {
			host = sysinfo.Collect().String()
		}
		werr := report.Write(out, rep, report.Options{
			Styled: cfg.Output.Style == config.StyleStyled,
			Host:   host,
		})
		if werr != nil && err == nil {
			err = werr
		}
	}

	if err != nil {
		logger.Debug("run ended with error", zap.Error(err))
		return NewCommandError("run", "benchmark did not complete", err)
	}
	return nil
}

// runPlain runs the benchmark with optional progress lines on out.
func runPlain(ctx context.Context, out io.Writer, cfg *config.Config, opts []benchmark.Option) (*benchmark.Report, error) {
	var printer *report.ProgressPrinter
	if cfg.Output.Progress {
		printer = report.NewProgressPrinter(out, cfg.Sort.Shared)
		opts = append(opts, benchmark.WithObserver(printer))
	}

	rep, err := benchmark.NewRunner(opts...).Run(ctx, cfg.Sizes)
	if err == nil && printer != nil {
		err = printer.Err()
	}
	return rep, err
}

// runLive runs the benchmark on a goroutine while a Bubble Tea program
// renders its progress.
func runLive(ctx context.Context, in io.Reader, out io.Writer, sizes []int, opts []benchmark.Option) (*benchmark.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := components.NewBenchmarkView(0, cancel)
	program := tea.NewProgram(view, tea.WithInput(in), tea.WithOutput(out))

	runner := benchmark.NewRunner(append(opts, benchmark.WithObserver(components.ProgramObserver(program)))...)
	view.SetTotalSteps(runner.StepsPerTrial() * len(sizes))

	go func() {
		rep, err := runner.Run(ctx, sizes)
		program.Send(components.BenchmarkCompleteMsg{Report: rep, Error: err})
	}()

	if _, err := program.Run(); err != nil {
		return nil, err
	}
	if view.Report() == nil && view.Cancelled() {
		return nil, context.Canceled
	}
	return view.Report(), view.Err()
}

func hasTrials(r *benchmark.Report) bool {
	if r == nil {
		return false
	}
	for _, s := range r.Series {
		if len(s.Trials) > 0 {
			return true
		}
	}
	return false
}
