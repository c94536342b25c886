// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/microbench/benchmath"
)

// ErrNoCandidates is returned by Run when the registry is empty.
var ErrNoCandidates = errors.New("registry has no candidates")

// ErrNoSuccessfulCandidates is returned by Run when every candidate
// failed on every replication. A report with no usable baseline is
// meaningless, so Run never returns an empty report in its place.
var ErrNoSuccessfulCandidates = errors.New("no candidate completed any replication")

// DefaultConfidence is the confidence level used for summary
// intervals when Config.Confidence is zero.
const DefaultConfidence = 0.95

// A Config configures a comparison run.
type Config struct {
	// Replications is the number of times to measure each
	// candidate. It must be at least 1.
	Replications int

	// Policy controls what happens when a candidate fails during
	// measurement. The zero value is PolicyRecord.
	Policy FailurePolicy

	// Statistic summarizes each candidate's measurements. If nil,
	// benchmath.Mean is used.
	Statistic benchmath.Statistic

	// Confidence is the confidence level for summary intervals,
	// in (0,1). If zero, DefaultConfidence is used.
	Confidence float64
}

// A Report is a read-only view over the measurements of one run. It
// is recomputed fresh by each Run and never mutated in place.
type Report struct {
	// Statistic is the label of the summary statistic, for
	// example "mean".
	Statistic string

	// Confidence is the confidence level of the summary
	// intervals.
	Confidence float64

	// Rows holds one row per candidate with at least one
	// successful measurement, in ascending summary order. Ties
	// keep registration order.
	Rows []Row
}

// A Row reports one candidate's aggregate results.
type Row struct {
	// Name is the candidate's name.
	Name string

	// Completed and Failures count the candidate's successful and
	// failed replications.
	Completed, Failures int

	// Summary is the summary statistic over the successful
	// measurements.
	Summary benchmath.Summary

	// Relative is Summary.Center divided by the minimum summary
	// center across all candidates in the run. The fastest
	// candidate has Relative exactly 1.
	Relative float64

	// Sample is the analyzed sample behind Summary.
	Sample *benchmath.Sample
}

// Run measures every candidate in reg and returns a Report ranking
// them by the configured summary statistic.
//
// Candidates are measured in registration order, each for
// cfg.Replications replications, strictly sequentially. Under
// PolicyAbort the first candidate failure aborts the run and is
// returned as a *CandidateError; under PolicyRecord failures reduce
// the candidate's completed count and the summary is computed over
// the successes that remain. A candidate with no successes is
// excluded from the ranking. If no candidate has any success, Run
// returns ErrNoSuccessfulCandidates.
func Run(reg *Registry, cfg Config) (*Report, error) {
	if cfg.Replications < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidReplications, cfg.Replications)
	}
	if reg == nil || reg.Len() == 0 {
		return nil, ErrNoCandidates
	}
	stat := cfg.Statistic
	if stat == nil {
		stat = benchmath.Mean
	}
	confidence := cfg.Confidence
	if confidence == 0 {
		confidence = DefaultConfidence
	}

	sets := make([]MeasurementSet, 0, reg.Len())
	for _, c := range reg.Candidates() {
		set, err := Repeat(c, cfg.Replications, cfg.Policy)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return NewReport(sets, stat, confidence)
}

// NewReport aggregates already-collected measurement sets into a
// ranked Report. Most callers should use Run instead; NewReport is
// for callers that drive Repeat themselves.
func NewReport(sets []MeasurementSet, stat benchmath.Statistic, confidence float64) (*Report, error) {
	rep := &Report{
		Statistic:  stat.Label(),
		Confidence: confidence,
	}
	for _, set := range sets {
		vals := set.WallSeconds()
		if len(vals) == 0 {
			// Fully failed candidate: excluded from ranking.
			continue
		}
		sample := benchmath.NewSample(vals)
		rep.Rows = append(rep.Rows, Row{
			Name:      set.Candidate,
			Completed: set.Completed(),
			Failures:  set.Failures(),
			Summary:   stat.Summarize(sample, confidence),
			Sample:    sample,
		})
	}
	if len(rep.Rows) == 0 {
		return nil, ErrNoSuccessfulCandidates
	}

	// Rank ascending by summary; SliceStable keeps registration
	// order for ties.
	sort.SliceStable(rep.Rows, func(i, j int) bool {
		return rep.Rows[i].Summary.Center < rep.Rows[j].Summary.Center
	})
	base := rep.Rows[0].Summary.Center
	for i := range rep.Rows {
		if base > 0 {
			rep.Rows[i].Relative = rep.Rows[i].Summary.Center / base
		} else {
			// Degenerate zero-duration baseline.
			rep.Rows[i].Relative = 1
		}
	}
	return rep, nil
}
