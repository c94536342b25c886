// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("table").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<table class='benchtab'>
<thead>
<tr><th>name<th>n<th>{{.Statistic}}<th>±<th>relative{{if .HasFailures}}<th>failures{{end}}
</thead>
<tbody>
{{range .Rows -}}
<tr><td>{{.Name}}<td>{{.Completed}}<td>{{.Summary}}<td>{{.PctRange}}<td>{{.Relative}}{{if $.HasFailures}}<td class='note'>{{.Failures}}{{end}}
{{end -}}
</tbody>
</table>
`)))

// htmlTable mirrors Table with the numeric columns pre-formatted.
type htmlTable struct {
	Statistic   string
	HasFailures bool
	Rows        []htmlRow
}

type htmlRow struct {
	Name      string
	Completed int
	Summary   string
	PctRange  string
	Relative  string
	Failures  int
}

func (t *Table) htmlTable() *htmlTable {
	var scaler Scaler
	if len(t.Rows) > 0 {
		scaler = NewScaler(t.Rows[len(t.Rows)-1].Summary)
	}
	h := &htmlTable{Statistic: t.Statistic, HasFailures: t.HasFailures}
	for _, r := range t.Rows {
		h.Rows = append(h.Rows, htmlRow{
			Name:      r.Name,
			Completed: r.Completed,
			Summary:   scaler(r.Summary),
			PctRange:  r.PctRange,
			Relative:  fmt.Sprintf("%.2fx", r.Relative),
			Failures:  r.Failures,
		})
	}
	return h
}

// ToHTML renders t as a contextually auto-escaped HTML table
// fragment.
func (t *Table) ToHTML() (safehtml.HTML, error) {
	return htmlTemplate.ExecuteToHTML(t.htmlTable())
}

// WriteHTML writes the HTML rendering of t to w.
func (t *Table) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, t.htmlTable())
}
