// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/microbench/benchmath"
)

// sleeper returns a candidate computation that sleeps for d.
func sleeper(d time.Duration) func() error {
	return func() error {
		time.Sleep(d)
		return nil
	}
}

func TestRunRanking(t *testing.T) {
	reg := NewRegistry()
	// Registered slowest first to prove ranking is by time, not
	// registration order.
	if err := reg.Register("slow", sleeper(12 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("fast", sleeper(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("medium", sleeper(5 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	rep, err := Run(reg, Config{Replications: 5})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Statistic != "mean" {
		t.Errorf("Statistic = %q, want default %q", rep.Statistic, "mean")
	}
	if rep.Confidence != DefaultConfidence {
		t.Errorf("Confidence = %v, want %v", rep.Confidence, DefaultConfidence)
	}

	want := []string{"fast", "medium", "slow"}
	if len(rep.Rows) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(rep.Rows), len(want))
	}
	for i, name := range want {
		if rep.Rows[i].Name != name {
			t.Errorf("Rows[%d].Name = %q, want %q", i, rep.Rows[i].Name, name)
		}
		if rep.Rows[i].Completed != 5 {
			t.Errorf("Rows[%d].Completed = %d, want 5", i, rep.Rows[i].Completed)
		}
	}

	// Ranked non-decreasing by summary.
	for i := 1; i < len(rep.Rows); i++ {
		if rep.Rows[i].Summary.Center < rep.Rows[i-1].Summary.Center {
			t.Errorf("Rows not sorted: %v before %v",
				rep.Rows[i-1].Summary.Center, rep.Rows[i].Summary.Center)
		}
	}

	// The fastest candidate's relative value is exactly 1.
	if rep.Rows[0].Relative != 1.0 {
		t.Errorf("fastest Relative = %v, want exactly 1.0", rep.Rows[0].Relative)
	}
	for i := 1; i < len(rep.Rows); i++ {
		if rep.Rows[i].Relative <= 1.0 {
			t.Errorf("Rows[%d].Relative = %v, want > 1.0", i, rep.Rows[i].Relative)
		}
	}
}

func TestRunInvalidReplications(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("a", sleeper(0)); err != nil {
		t.Fatal(err)
	}
	for _, reps := range []int{0, -3} {
		_, err := Run(reg, Config{Replications: reps})
		if !errors.Is(err, ErrInvalidReplications) {
			t.Errorf("Run(reps=%d) = %v, want ErrInvalidReplications", reps, err)
		}
	}
}

func TestRunEmptyRegistry(t *testing.T) {
	_, err := Run(NewRegistry(), Config{Replications: 1})
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Run(empty) = %v, want ErrNoCandidates", err)
	}
}

func TestRunNoSuccessfulCandidates(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	for _, name := range []string{"a", "b"} {
		if err := reg.Register(name, func() error { return boom }); err != nil {
			t.Fatal(err)
		}
	}

	rep, err := Run(reg, Config{Replications: 3})
	if !errors.Is(err, ErrNoSuccessfulCandidates) {
		t.Errorf("Run = %v, want ErrNoSuccessfulCandidates", err)
	}
	if rep != nil {
		t.Errorf("Run returned a report alongside the error: %+v", rep)
	}
}

func TestRunAbortPolicy(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	if err := reg.Register("bad", func() error { return boom }); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("good", sleeper(0)); err != nil {
		t.Fatal(err)
	}

	rep, err := Run(reg, Config{Replications: 3, Policy: PolicyAbort})
	var cerr *CandidateError
	if !errors.As(err, &cerr) {
		t.Fatalf("Run = %v, want *CandidateError", err)
	}
	if cerr.Candidate != "bad" {
		t.Errorf("CandidateError.Candidate = %q, want %q", cerr.Candidate, "bad")
	}
	if rep != nil {
		t.Errorf("Run returned a report alongside the error: %+v", rep)
	}
}

func TestRunRecordsFailures(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	reg := NewRegistry()
	if err := reg.Register("flaky", func() error {
		calls++
		if calls == 1 {
			return boom
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("steady", sleeper(0)); err != nil {
		t.Fatal(err)
	}

	rep, err := Run(reg, Config{Replications: 4})
	if err != nil {
		t.Fatal(err)
	}
	var flaky *Row
	for i := range rep.Rows {
		if rep.Rows[i].Name == "flaky" {
			flaky = &rep.Rows[i]
		}
	}
	if flaky == nil {
		t.Fatal("flaky candidate missing from report")
	}
	if flaky.Completed != 3 || flaky.Failures != 1 {
		t.Errorf("flaky Completed, Failures = %d, %d, want 3, 1", flaky.Completed, flaky.Failures)
	}
}

func TestRunFullyFailedExcluded(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	if err := reg.Register("dead", func() error { return boom }); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("alive", sleeper(0)); err != nil {
		t.Fatal(err)
	}

	rep, err := Run(reg, Config{Replications: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Rows) != 1 || rep.Rows[0].Name != "alive" {
		t.Errorf("Rows = %+v, want only %q", rep.Rows, "alive")
	}
	if rep.Rows[0].Relative != 1.0 {
		t.Errorf("sole candidate Relative = %v, want 1.0", rep.Rows[0].Relative)
	}
}

func TestRunMedian(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("fast", sleeper(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("slow", sleeper(10 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	rep, err := Run(reg, Config{Replications: 8, Statistic: benchmath.Median})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Statistic != "median" {
		t.Errorf("Statistic = %q, want %q", rep.Statistic, "median")
	}
	if rep.Rows[0].Name != "fast" || rep.Rows[1].Name != "slow" {
		t.Errorf("ranking = %q, %q, want fast, slow", rep.Rows[0].Name, rep.Rows[1].Name)
	}
	if rep.Rows[1].Relative <= 1 {
		t.Errorf("slow Relative = %v, want > 1", rep.Rows[1].Relative)
	}
}

func TestNewReportTieBreak(t *testing.T) {
	// Identical synthetic wall times: ties keep input order.
	mk := func(name string) MeasurementSet {
		set := MeasurementSet{Candidate: name}
		for i := 0; i < 3; i++ {
			set.Measurements = append(set.Measurements, Measurement{
				Candidate: name, Replication: i, Wall: time.Millisecond,
			})
		}
		return set
	}
	rep, err := NewReport([]MeasurementSet{mk("x"), mk("y"), mk("z")}, benchmath.Mean, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"x", "y", "z"} {
		if rep.Rows[i].Name != name {
			t.Errorf("Rows[%d].Name = %q, want %q (stable tie-break)", i, rep.Rows[i].Name, name)
		}
		if rep.Rows[i].Relative != 1.0 {
			t.Errorf("Rows[%d].Relative = %v, want 1.0", i, rep.Rows[i].Relative)
		}
	}
}
