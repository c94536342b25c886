// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Median summarizes a sample by its median, with a distribution-free
// confidence interval built from order statistics. It makes no
// assumption about the shape of the timing distribution, at the cost
// of needing more replications for a tight interval.
var Median Statistic = medianStat{}

type medianStat struct{}

func (medianStat) Label() string {
	return "median"
}

func (medianStat) Summarize(s *Sample, confidence float64) Summary {
	sample := s.sample()
	summary := Summary{
		Center:   sample.Quantile(0.5),
		Warnings: s.Warnings,
	}

	xs := s.RValues
	k, actual := medianCI(len(xs), confidence)
	if k == 0 {
		// Too few samples for a confidence interval at this
		// level. Report an infinite interval.
		summary.Lo, summary.Hi = math.Inf(-1), math.Inf(1)
		summary.Confidence = 1
		_, n := medianSamples(confidence)
		summary.Warnings = append(summary.Warnings, fmt.Errorf("need >= %d samples for confidence interval at level %v", n, confidence))
		return summary
	}
	summary.Lo, summary.Hi = xs[k-1], xs[len(xs)-k]
	summary.Confidence = actual
	return summary
}

// medianCI returns the largest k such that the order statistic
// interval [x_k, x_(n+1-k)] (1-based) covers the true median with
// probability at least confidence. It returns k == 0 if no such
// interval exists for this n.
func medianCI(n int, confidence float64) (k int, actual float64) {
	if n < 2 {
		return 0, 0
	}
	d := stats.BinomialDist{N: n, P: 0.5}
	// Coverage of [x_k, x_(n+1-k)] is P(k <= B <= n-k) for
	// B ~ Binomial(n, 1/2). Coverage shrinks as k grows, so walk
	// in from the widest interval and keep the narrowest one that
	// still meets the requested level.
	tail := 0.0
	for i := 1; i <= n/2; i++ {
		tail += d.PMF(float64(i - 1))
		cov := 1 - 2*tail
		if cov < confidence {
			break
		}
		k, actual = i, cov
	}
	return k, actual
}

// medianSamples returns the minimum number of samples required for a
// median confidence interval at the given level, as "op n".
func medianSamples(confidence float64) (op string, n int) {
	const limit = 50
	for n = 2; n <= limit; n++ {
		d := stats.BinomialDist{N: n, P: 0.5}
		if 1-(d.PMF(0)+d.PMF(float64(d.N))) >= confidence {
			return ">=", n
		}
	}
	// Didn't find it. Might not be possible.
	return ">", limit
}
