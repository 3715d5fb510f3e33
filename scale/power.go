// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

type Power struct {
	lin Linear
	exp float64
}

// NewPower returns a power scale, which maps like the underlying
// linear scale raised to exp.
func NewPower(input []float64, exp float64) Power {
	return Power{NewLinear(input), exp}
}

// NewPowerRange returns a power scale over [min, max].
func NewPowerRange(min, max, exp float64) Power {
	return Power{NewLinearRange(min, max), exp}
}

func (s Power) Of(x float64) float64 {
	return math.Pow(s.lin.Of(x), s.exp)
}

// Min and Max return the endpoints of s's input range.
func (s Power) Min() float64 { return s.lin.Min() }
func (s Power) Max() float64 { return s.lin.Max() }

// Ticks returns ticks at pretty breaks of the underlying linear
// range. The ticks are evenly spaced in the input domain, not in the
// output interval.
func (s Power) Ticks(n int) (major, minor []float64) {
	return s.lin.Ticks(n)
}
