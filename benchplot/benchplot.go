// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders comparison reports as charts.
package benchplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"golang.org/x/microbench/benchrun"
)

// Bars builds a bar chart of each candidate's relative slowdown,
// fastest first, with a reference line at 1.0 (the baseline).
func Bars(rep *benchrun.Report) (*plot.Plot, error) {
	if rep == nil || len(rep.Rows) == 0 {
		return nil, fmt.Errorf("report has no rows to plot")
	}

	values := make(plotter.Values, 0, len(rep.Rows))
	names := make([]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		values = append(values, row.Relative)
		names = append(names, row.Name)
	}

	pl := plot.New()
	pl.Title.Text = "relative " + rep.Statistic
	pl.Y.Label.Text = "candidate " + rep.Statistic + " / fastest " + rep.Statistic

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff}
	pl.Add(bars)

	// Reference line at the baseline ratio.
	baseline := plotter.XYs{
		{X: -0.5, Y: 1},
		{X: float64(len(values)) - 0.5, Y: 1},
	}
	line, err := plotter.NewLine(baseline)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = color.Gray{Y: 0x80}
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	pl.Add(line)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	pl.NominalX(names...)
	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	// Bars grow from zero; force it onto the axis.
	pl.Y.Min = math.Min(pl.Y.Min, 0)
	return pl, nil
}

// WritePNG renders rep as a PNG bar chart and writes it to w.
func WritePNG(rep *benchrun.Report, w io.Writer) error {
	pl, err := Bars(rep)
	if err != nil {
		return err
	}

	// Heuristic width: wider for more candidates.
	width := vg.Length(4+2*len(rep.Rows)) * vg.Centimeter
	height := 10 * vg.Centimeter
	canvas := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(canvas))
	_, err = canvas.WriteTo(w)
	return err
}

// SavePNG renders rep as a PNG bar chart at path.
func SavePNG(rep *benchrun.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(rep, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
