// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

// Mean summarizes a sample by its arithmetic mean, with a confidence
// interval from the t-distribution. It is a good default for timing
// distributions that are roughly normal.
var Mean Statistic = meanStat{}

type meanStat struct{}

func (meanStat) Label() string {
	return "mean"
}

func (meanStat) Summarize(s *Sample, confidence float64) Summary {
	sample := s.sample()
	mean, lo, hi := sample.MeanCI(confidence)

	return Summary{
		Center:     mean,
		Lo:         lo,
		Hi:         hi,
		Confidence: confidence,
		Warnings:   s.Warnings,
	}
}
