// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab renders comparison reports as tables.
//
// A Table is a derived, display-oriented view over a
// benchrun.Report. It can be written as fixed-width text, CSV, or an
// HTML fragment.
package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/microbench/benchrun"
)

// A Table presents the rows of a Report for rendering. Rows appear
// in the Report's order: ascending by summary statistic, fastest
// first.
type Table struct {
	// Statistic is the label of the summary column, for example
	// "mean".
	Statistic string

	// Rows holds one row per ranked candidate.
	Rows []TableRow

	// HasFailures reports whether any candidate had failed
	// replications, in which case text output gains a note
	// column.
	HasFailures bool
}

// A TableRow is one candidate's formatted results.
type TableRow struct {
	// Name is the candidate name.
	Name string

	// Completed is the number of completed replications.
	Completed int

	// Failures is the number of failed replications.
	Failures int

	// Summary is the summary statistic in seconds.
	Summary float64

	// PctRange is the confidence interval range as a percent of
	// Summary, for example "2%".
	PctRange string

	// Relative is the candidate's summary divided by the fastest
	// candidate's summary.
	Relative float64
}

// New builds a Table from a Report.
func New(rep *benchrun.Report) *Table {
	t := &Table{Statistic: rep.Statistic}
	for _, row := range rep.Rows {
		t.Rows = append(t.Rows, TableRow{
			Name:      row.Name,
			Completed: row.Completed,
			Failures:  row.Failures,
			Summary:   row.Summary.Center,
			PctRange:  row.Summary.PctRangeString(),
			Relative:  row.Relative,
		})
		if row.Failures > 0 {
			t.HasFailures = true
		}
	}
	return t
}

// ToText writes t as a fixed-width text table, assuming a fixed-width
// font.
func (t *Table) ToText(w io.Writer) error {
	// All summaries share the fastest row's scale so the column
	// reads consistently.
	var scaler Scaler
	if len(t.Rows) > 0 {
		scaler = NewScaler(t.Rows[len(t.Rows)-1].Summary)
	}

	rows := [][]string{t.header()}
	for _, r := range t.Rows {
		rows = append(rows, t.textRow(r, scaler))
	}

	// Column-width pass.
	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	for _, row := range rows {
		for i, s := range row {
			switch i {
			case 0:
				fmt.Fprintf(w, "%-*s", max[i], s)
			case len(row) - 1:
				fmt.Fprintf(w, "  %s", s)
			default:
				fmt.Fprintf(w, "  %*s", max[i], s)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}

// ToCSV writes t in CSV format.
func (t *Table) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header()); err != nil {
		return err
	}
	for _, r := range t.Rows {
		row := []string{
			r.Name,
			strconv.Itoa(r.Completed),
			strconv.FormatFloat(r.Summary, 'g', -1, 64),
			r.PctRange,
			strconv.FormatFloat(r.Relative, 'f', 2, 64),
		}
		if t.HasFailures {
			row = append(row, strconv.Itoa(r.Failures))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *Table) header() []string {
	h := []string{"name", "n", t.Statistic, "±", "relative"}
	if t.HasFailures {
		h = append(h, "failures")
	}
	return h
}

func (t *Table) textRow(r TableRow, scaler Scaler) []string {
	row := []string{
		r.Name,
		strconv.Itoa(r.Completed),
		scaler(r.Summary),
		r.PctRange,
		fmt.Sprintf("%.2fx", r.Relative),
	}
	if t.HasFailures {
		note := ""
		if r.Failures > 0 {
			note = fmt.Sprintf("(%d failed)", r.Failures)
		}
		row = append(row, note)
	}
	return row
}
