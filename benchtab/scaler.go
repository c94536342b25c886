// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import "fmt"

// A Scaler is a function that scales and formats a duration given in
// seconds. All summaries within a table are formatted using the same
// scaler, so that the units are consistent down the column.
type Scaler func(float64) string

// NewScaler returns a Scaler appropriate for formatting the duration
// sec, given in seconds.
func NewScaler(sec float64) Scaler {
	var format string
	var scale float64
	switch x := sec; {
	case x >= 99.5:
		format, scale = "%.0fs", 1
	case x >= 9.95:
		format, scale = "%.1fs", 1
	case x >= 0.995:
		format, scale = "%.2fs", 1
	case x >= 0.0995:
		format, scale = "%.0fms", 1e3
	case x >= 0.00995:
		format, scale = "%.1fms", 1e3
	case x >= 0.000995:
		format, scale = "%.2fms", 1e3
	case x >= 0.0000995:
		format, scale = "%.0fµs", 1e6
	case x >= 0.00000995:
		format, scale = "%.1fµs", 1e6
	case x >= 0.000000995:
		format, scale = "%.2fµs", 1e6
	case x >= 0.0000000995:
		format, scale = "%.0fns", 1e9
	case x >= 0.00000000995:
		format, scale = "%.1fns", 1e9
	default:
		format, scale = "%.2fns", 1e9
	}
	return func(sec float64) string {
		return fmt.Sprintf(format, sec*scale)
	}
}
