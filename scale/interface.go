// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides quantitative axis scales and tick generation.
//
// A scale maps some input domain to the interval [0, 1] and can
// propose tick marks for labeling that domain. Scales are small value
// types with no shared state, so they are safe to copy and to use
// from multiple goroutines.
package scale // import "github.com/aclements/go-axis/scale"

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	// Of maps x from the scale's input range to [0, 1]. Inputs
	// outside the range map outside [0, 1].
	Of(x float64) float64

	// Ticks returns major and minor tick marks for the scale's
	// input range, given in input-range values. n is a guide for
	// the number of major ticks, not a guarantee. Ticks panics if
	// the scale's range cannot produce ticks; PrettyBreaks reports
	// the same conditions as errors.
	Ticks(n int) (major, minor []float64)
}
