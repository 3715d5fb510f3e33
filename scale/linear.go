// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

type Linear struct {
	min, width float64
}

// NewLinear returns a linear scale over the range of input.
func NewLinear(input []float64) Linear {
	min, max := minmax(input)
	return Linear{min, max - min}
}

// NewLinearRange returns a linear scale over [min, max]. min may
// exceed max, which gives a descending scale.
func NewLinearRange(min, max float64) Linear {
	return Linear{min, max - min}
}

// Min and Max return the endpoints of s's input range.
func (s Linear) Min() float64 { return s.min }
func (s Linear) Max() float64 { return s.min + s.width }

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Invert returns the coefficients of the affine map inverse to s.
// See InvertRange.
func (s Linear) Invert() (newMin, newMax, scaleFactor float64, err error) {
	return InvertRange(s.min, s.min+s.width)
}

// Nice widens s's range outward to multiples of the neat unit that
// PrettyBreaks would choose for n breaks, so that the endpoints
// themselves land on breaks. It is a no-op if the range is degenerate
// or n is not positive.
func (s *Linear) Nice(n int) {
	if s.width == 0 || n <= 0 {
		return
	}
	unit := neatUnit(s.width / float64(n))
	min := math.Floor(s.min/unit) * unit
	max := math.Ceil((s.min+s.width)/unit) * unit
	s.min, s.width = min, max-min
}

// Ticks returns the pretty breaks for s's range as major ticks. The
// trailing duplicate from PrettyBreaks is dropped. Linear scales have
// no minor ticks.
//
// Ticks panics if s's range is degenerate or n is not positive.
func (s Linear) Ticks(n int) (major, minor []float64) {
	breaks, err := PrettyBreaks(s.min, s.min+s.width, n)
	if err != nil {
		panic("scale: " + err.Error())
	}
	return breaks[:len(breaks)-1], []float64{}
}

// InvertRange returns the coefficients of the affine map inverse to
// the normalization defined by [min, max]. If f(v) = (v-min)/(max-min)
// maps the range onto [0, 1], the returned coefficients express f
// itself in slope-offset form, scaleFactor = 1/(max-min) and
// newMin = f(0), newMax = f(1), so that applying them as a range is
// the inverse of applying [min, max].
//
// The arithmetic is performed in a fixed order so results are
// bit-for-bit reproducible; do not "simplify" the newMax expression.
//
// InvertRange returns a *DegenerateRangeError if min == max.
func InvertRange(min, max float64) (newMin, newMax, scaleFactor float64, err error) {
	if min == max {
		return 0, 0, 0, &DegenerateRangeError{min, max}
	}
	rangeInverse := 1 / (max - min)
	newMin = -min * rangeInverse
	newMax = rangeInverse - min*rangeInverse
	return newMin, newMax, rangeInverse, nil
}
