// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/searchbench/internal/benchmark"
	"github.com/jeranaias/searchbench/internal/ui/styles"
)

// SummaryTitle heads the result tables.
const SummaryTitle = "--- Execution Time Summary ---"

// =============================================================================
// COLUMN LAYOUT
// =============================================================================

// column describes one fixed-width table column.
type column struct {
	title string
	width int
	value func(benchmark.Trial) string
}

var (
	sizeColumn = column{
		title: "List Size",
		width: 15,
		value: func(t benchmark.Trial) string { return strconv.Itoa(t.Size) },
	}
	sortColumn = column{
		title: "Sort Time (ms)",
		width: 24,
		value: func(t benchmark.Trial) string { return benchmark.FormatMillis(t.Sort) },
	}
)

func existingColumn(title string, width int) column {
	return column{title: title, width: width, value: func(t benchmark.Trial) string {
		return benchmark.FormatMillis(t.Existing)
	}}
}

func missingColumn(title string, width int) column {
	return column{title: title, width: width, value: func(t benchmark.Trial) string {
		return benchmark.FormatMillis(t.Missing)
	}}
}

// columnsFor returns the table layout for an algorithm. Sorted-input
// algorithms get an extra sort column.
func columnsFor(alg benchmark.Algorithm) []column {
	if !alg.RequiresSorted() {
		return []column{
			sizeColumn,
			existingColumn("Time (ms) - Existing", 23),
			missingColumn("Time (ms) - Missing (Worst Case)", 38),
		}
	}
	return []column{
		sizeColumn,
		sortColumn,
		existingColumn("Search Time (ms) - Existing", 32),
		missingColumn("Search Time (ms) - Missing (Worst Case)", 47),
	}
}

// caption returns the line printed above an algorithm's table.
func caption(alg benchmark.Algorithm) string {
	if alg.RequiresSorted() {
		return alg.Name + " (Includes sort time):"
	}
	return alg.Name + ":"
}

// =============================================================================
// PLAIN TABLES
// =============================================================================

// WriteTables writes one fixed-column pipe table per series.
func WriteTables(w io.Writer, r *benchmark.Report) error {
	lw := &lineWriter{w: w}
	writeTables(lw, r)
	return lw.err
}

func writeTables(lw *lineWriter, r *benchmark.Report) {
	lw.printf("\n%s\n", SummaryTitle)

	for _, s := range r.Series {
		cols := columnsFor(s.Algorithm)

		lw.printf("\n%s\n", caption(s.Algorithm))
		lw.println(formatRow(cols, func(c column) string { return c.title }))
		lw.println(separatorRow(cols))
		for _, t := range s.Trials {
			lw.println(formatRow(cols, func(c column) string { return c.value(t) }))
		}
	}
}

// formatRow left-aligns each cell in its column.
func formatRow(cols []column, cell func(column) string) string {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cols {
		fmt.Fprintf(&b, " %-*s |", c.width, cell(c))
	}
	return b.String()
}

func separatorRow(cols []column) string {
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cols {
		b.WriteString(strings.Repeat("-", c.width+2))
		b.WriteString("|")
	}
	return b.String()
}

// =============================================================================
// STYLED TABLES
// =============================================================================

// WriteStyled writes the result tables as bordered lipgloss tables.
// Rows of failed trials are highlighted.
func WriteStyled(w io.Writer, r *benchmark.Report) error {
	lw := &lineWriter{w: w}
	writeStyled(lw, r)
	return lw.err
}

func writeStyled(lw *lineWriter, r *benchmark.Report) {
	lw.printf("\n%s\n", styles.Title.Render(SummaryTitle))

	for _, s := range r.Series {
		lw.printf("\n%s\n%s\n", styles.Section.Render(caption(s.Algorithm)), styledTable(s).String())
	}
}

func styledTable(s benchmark.Series) *table.Table {
	cols := columnsFor(s.Algorithm)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.title
	}

	rows := make([][]string, len(s.Trials))
	for i, t := range s.Trials {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = c.value(t)
		}
		rows[i] = row
	}

	failed := lipgloss.NewStyle().Foreground(styles.Rose).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			style := styles.TableCell
			if row >= 0 && row < len(s.Trials) && s.Trials[row].Status == benchmark.TrialStatusFailed {
				style = failed
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
}
