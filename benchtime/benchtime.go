// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtime measures the cost of a single invocation of a
// computation.
//
// Measurements report wall-clock time and, where the platform supports
// it, the user and system CPU time consumed by the process during the
// invocation. CPU times are process-wide, so a fair comparison requires
// that nothing else runs in the process during measurement.
package benchtime

import "time"

// A Usage records the resources consumed by one invocation of a
// computation.
type Usage struct {
	// Wall is the elapsed wall-clock time. It is always >= 0.
	Wall time.Duration

	// User and Sys are the user-mode and kernel-mode CPU time
	// consumed by the process during the invocation. They are zero
	// on platforms without rusage accounting.
	User, Sys time.Duration
}

// Measure invokes f exactly once and reports the resources it
// consumed. Side effects of f happen as part of measurement; Measure
// does not sandbox or suppress them.
//
// If f returns an error, Measure returns that error along with the
// Usage accumulated up to the failure.
func Measure(f func() error) (Usage, error) {
	startUser, startSys := cpuTimes()
	start := time.Now()
	err := f()
	wall := time.Since(start)
	endUser, endSys := cpuTimes()

	if wall < 0 {
		// Clock steps backward under some virtualized clocks.
		wall = 0
	}
	u := Usage{
		Wall: wall,
		User: endUser - startUser,
		Sys:  endSys - startSys,
	}
	if u.User < 0 {
		u.User = 0
	}
	if u.Sys < 0 {
		u.Sys = 0
	}
	return u, err
}
