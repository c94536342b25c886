// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath provides statistics over distributions of
// repeated benchmark measurements.
//
// This package is opinionated. Callers pick a summary Statistic (mean
// or median) and this package chooses the appropriate confidence
// interval construction for it.
//
// Results carry a list of warnings, captured as an []error value.
// These aren't errors that prevent analysis, but should be presented
// to the user along with the results.
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of a single candidate.
type Sample struct {
	// Values are all measured values, in ascending order.
	Values []float64

	// RValues are Values with outliers removed, in ascending
	// order. Outliers are values outside the interval
	// [q1 - 1.5 iqr, q3 + 1.5 iqr].
	RValues []float64

	// Min and Max are the bounds of RValues.
	Min, Max float64

	// Warnings is a list of warnings about this sample that
	// should be reported to the user.
	Warnings []error
}

// NewSample constructs a Sample from a set of measurements,
// discarding outliers by the interquartile range rule.
func NewSample(values []float64) *Sample {
	s := &Sample{Values: append([]float64(nil), values...)}
	sort.Float64s(s.Values)

	all := stats.Sample{Xs: s.Values, Sorted: true}
	q1, q3 := all.Quantile(0.25), all.Quantile(0.75)
	lo, hi := q1-1.5*(q3-q1), q3+1.5*(q3-q1)
	for _, v := range s.Values {
		if lo <= v && v <= hi {
			s.RValues = append(s.RValues, v)
		}
	}
	if n := len(s.Values) - len(s.RValues); n > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("removed %d outlier(s) of %d measurements", n, len(s.Values)))
	}
	s.Min, s.Max = stats.Bounds(s.RValues)
	return s
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.RValues, Sorted: true}
}

// A Statistic summarizes a Sample with a measure of central tendency
// and a confidence interval around it.
type Statistic interface {
	// Label returns the string name of the summary statistic,
	// for example "mean" or "median".
	Label() string

	// Summarize returns the summary statistic and its confidence
	// interval at the given confidence level for Sample s.
	//
	// Confidence is given in the range [0,1], e.g., 0.95 for 95%
	// confidence.
	Summarize(s *Sample, confidence float64) Summary
}

// A Summary summarizes a Sample.
type Summary struct {
	// Center is the sample's measure of central tendency.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the actual confidence level of the interval
	// given by Lo, Hi. It may differ from the requested level.
	Confidence float64

	// Warnings is a list of warnings about this summary or its
	// confidence interval.
	Warnings []error
}

// PctRangeString returns a string representation of the range of this
// Summary's confidence interval as a percentage.
func (s Summary) PctRangeString() string {
	if math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the center, we can't
	// render it as a percent.
	var csign = mathx.Sign(s.Center)
	if csign != mathx.Sign(s.Lo) || csign != mathx.Sign(s.Hi) {
		return "?"
	}

	// If center is 0, avoid dividing by zero. We can only get
	// here if lo and hi are also 0, in which case it seems
	// reasonable to call this 0%.
	if s.Center == 0 {
		return "0%"
	}

	v := math.Max(s.Hi/s.Center-1, 1-s.Lo/s.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}
