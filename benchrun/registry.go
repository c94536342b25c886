// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrun compares the performance of alternative
// implementations of the same computation.
//
// Callers register named candidate computations in a Registry, then
// call Run to time each candidate over a number of replications and
// produce a Report ranking the candidates by a summary statistic,
// with a relative slowdown against the fastest.
//
// All candidates in one run must operate over logically equivalent
// input (same size, same seed or state). Candidates are opaque
// closures, so this is a caller responsibility; the registry cannot
// enforce it structurally.
//
// Measurements run strictly sequentially on the calling goroutine.
// Timing accuracy depends on exclusive access to CPU and memory
// bandwidth during the measured interval, so concurrent measurement
// is deliberately unsupported, as is mid-measurement cancellation: a
// candidate runs to completion or failure. A caller wanting a time
// budget must impose it by choosing smaller inputs.
package benchrun

import "fmt"

// A Candidate is a named computation under comparison. Any input it
// needs must be captured by Fn and held fixed across invocations.
type Candidate struct {
	Name string
	Fn   func() error
}

// A Registry holds the set of candidates for one comparison run, in
// registration order.
//
// A Registry is mutated only during setup; Run treats it as
// read-only. It is not safe for concurrent use.
type Registry struct {
	candidates []Candidate
	byName     map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a named candidate computation. It returns a
// *DuplicateError and leaves the registry unchanged if name is
// already registered.
func (r *Registry) Register(name string, fn func() error) error {
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	if _, ok := r.byName[name]; ok {
		return &DuplicateError{Name: name}
	}
	r.byName[name] = len(r.candidates)
	r.candidates = append(r.candidates, Candidate{Name: name, Fn: fn})
	return nil
}

// Candidates returns the registered candidates in registration order.
// The caller must not modify the returned slice.
func (r *Registry) Candidates() []Candidate {
	return r.candidates
}

// Len returns the number of registered candidates.
func (r *Registry) Len() int {
	return len(r.candidates)
}

// A DuplicateError indicates a candidate name that was already
// registered.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("candidate %q already registered", e.Name)
}
