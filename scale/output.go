// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// An OutputScale maps normalized [0, 1] values to a device
// coordinate range, with a configurable policy for inputs outside
// [0, 1]. min may exceed max, which flips the output axis (useful
// for device Y coordinates that grow downward).
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an output scale for [min, max] that crops
// out-of-range inputs.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes Of report out-of-range inputs as not ok.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp lets out-of-range inputs extrapolate past the output range.
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp pins out-of-range inputs to the nearer output endpoint.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x from [0, 1] to the output range. ok is false only in
// crop mode, for x outside [0, 1].
func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}
