// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/microbench/benchtime"
)

// ErrInvalidReplications is returned when a replication count is less
// than one.
var ErrInvalidReplications = errors.New("replication count must be at least 1")

// A FailurePolicy controls what Repeat does when a candidate's
// computation returns an error.
type FailurePolicy int

const (
	// PolicyRecord records the failure as a sentinel measurement
	// and continues with the remaining replications. This is the
	// default.
	PolicyRecord FailurePolicy = iota

	// PolicyAbort stops at the first failure and returns the
	// partial measurement set along with a *CandidateError.
	PolicyAbort
)

func (p FailurePolicy) String() string {
	switch p {
	case PolicyRecord:
		return "record"
	case PolicyAbort:
		return "abort"
	}
	return fmt.Sprintf("FailurePolicy(%d)", int(p))
}

// ParseFailurePolicy parses the name of a FailurePolicy as accepted
// on a command line: "record" or "abort".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "record":
		return PolicyRecord, nil
	case "abort":
		return PolicyAbort, nil
	}
	return 0, fmt.Errorf("unknown failure policy %q", s)
}

// A Measurement is the recorded outcome of one replication of a
// candidate's computation. It is immutable once recorded.
type Measurement struct {
	// Candidate is the name of the measured candidate.
	Candidate string

	// Replication is the zero-based replication index.
	Replication int

	// Wall is the elapsed wall-clock time of the replication. For
	// a failed replication this is the duration until the failure.
	Wall time.Duration

	// User and Sys are the CPU time consumed during the
	// replication, when the platform reports it.
	User, Sys time.Duration

	// Err is the failure cause for a failed replication, or nil.
	Err error
}

// A MeasurementSet is the ordered sequence of measurements for a
// single candidate across all replications of one run.
type MeasurementSet struct {
	// Candidate is the name of the measured candidate.
	Candidate string

	// Measurements holds one entry per executed replication, in
	// replication order. Under PolicyAbort it may be shorter than
	// the requested count.
	Measurements []Measurement
}

// Completed returns the number of successful measurements.
func (s *MeasurementSet) Completed() int {
	n := 0
	for i := range s.Measurements {
		if s.Measurements[i].Err == nil {
			n++
		}
	}
	return n
}

// Failures returns the number of failed measurements.
func (s *MeasurementSet) Failures() int {
	return len(s.Measurements) - s.Completed()
}

// WallSeconds returns the wall times of the successful measurements,
// in seconds, in replication order.
func (s *MeasurementSet) WallSeconds() []float64 {
	var vals []float64
	for i := range s.Measurements {
		if s.Measurements[i].Err == nil {
			vals = append(vals, s.Measurements[i].Wall.Seconds())
		}
	}
	return vals
}

// A CandidateError reports the failure of a candidate's computation
// during measurement. It carries the timing observed up to the
// failure and wraps the underlying cause.
type CandidateError struct {
	// Candidate is the name of the failed candidate.
	Candidate string

	// Replication is the zero-based index of the failed
	// replication.
	Replication int

	// Elapsed is the wall-clock duration until the failure.
	Elapsed time.Duration

	// Err is the underlying cause.
	Err error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("candidate %q failed on replication %d after %v: %v", e.Candidate, e.Replication, e.Elapsed, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}

// Repeat measures candidate c count times sequentially and returns
// the resulting MeasurementSet.
//
// If count < 1, Repeat returns an error wrapping
// ErrInvalidReplications.
//
// When a replication fails, the policy decides what happens next:
// PolicyRecord records the failure and keeps going; PolicyAbort
// returns the partial set along with a *CandidateError. Failures are
// never retried: a failing computation is a candidate defect, not a
// transient condition to hide.
func Repeat(c Candidate, count int, policy FailurePolicy) (MeasurementSet, error) {
	set := MeasurementSet{Candidate: c.Name}
	if count < 1 {
		return set, fmt.Errorf("%w (got %d)", ErrInvalidReplications, count)
	}
	if c.Fn == nil {
		return set, fmt.Errorf("candidate %q has no computation", c.Name)
	}

	for i := 0; i < count; i++ {
		usage, err := benchtime.Measure(c.Fn)
		set.Measurements = append(set.Measurements, Measurement{
			Candidate:   c.Name,
			Replication: i,
			Wall:        usage.Wall,
			User:        usage.User,
			Sys:         usage.Sys,
			Err:         err,
		})
		if err != nil && policy == PolicyAbort {
			return set, &CandidateError{
				Candidate:   c.Name,
				Replication: i,
				Elapsed:     usage.Wall,
				Err:         err,
			}
		}
	}
	return set, nil
}
