// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/microbench/benchrun"
)

// WriteBenchFormat writes the successful measurements in sets as Go
// benchmark format lines, one line per replication, so they can be
// consumed by benchmark analysis tools such as benchstat. Failed
// replications are skipped.
func WriteBenchFormat(w io.Writer, sets []benchrun.MeasurementSet) error {
	for _, set := range sets {
		name := benchName(set.Candidate)
		for i := range set.Measurements {
			m := &set.Measurements[i]
			if m.Err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "Benchmark%s 1 %d ns/op\n", name, m.Wall.Nanoseconds()); err != nil {
				return err
			}
		}
	}
	return nil
}

// benchName converts a candidate name to a legal benchmark name.
// Space runs become a single underscore, which the benchmark format
// reserves as a field separator.
func benchName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
