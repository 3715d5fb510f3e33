// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// neatMultipliers are the allowed mantissas of a break step. A step
// is always of the form d*10^e for some d in this list.
var neatMultipliers = [...]float64{1, 2, 4, 5, 10}

// neatUnit returns the "neat" step size closest to gross, where a
// neat step is d*10^e with d drawn from neatMultipliers and
// e = floor(log10(gross)). Candidates are scanned in order and
// compared by squared distance; on an exact tie the earlier candidate
// wins.
func neatUnit(gross float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(gross)))
	unit := neatMultipliers[0] * mag
	dist := (unit - gross) * (unit - gross)
	for _, d := range neatMultipliers[1:] {
		c := d * mag
		if cd := (c - gross) * (c - gross); cd < dist {
			unit, dist = c, cd
		}
	}
	return unit
}

// PrettyBreaks returns round tick values covering [min, max], spaced
// by the neat unit closest to (max-min)/n. n guides the number of
// breaks but the result length is determined by where neat multiples
// fall; the first break is the smallest neat multiple >= min and the
// subsequent ones step by the unit up to the largest neat multiple
// <= max.
//
// The last break value appears twice in the result; callers that
// want distinct values must drop the final element.
//
// TODO: Stop emitting the duplicate. That changes result lengths, so
// it needs a coordinated change with callers that index from the end.
//
// PrettyBreaks returns a *DegenerateRangeError if min == max and a
// *BreakCountError if n <= 0. Behavior is undefined for max < min.
func PrettyBreaks(min, max float64, n int) ([]float64, error) {
	if min == max {
		return nil, &DegenerateRangeError{min, max}
	}
	if n <= 0 {
		return nil, &BreakCountError{n}
	}

	unit := neatUnit((max - min) / float64(n))
	minNeat := math.Ceil(min/unit) * unit
	maxNeat := math.Floor(max/unit) * unit

	newN := int(math.Round((maxNeat - minNeat) / unit))
	breaks := make([]float64, 0, newN+2)
	for i := 0; i <= newN; i++ {
		breaks = append(breaks, minNeat+float64(i)*unit)
	}
	breaks = append(breaks, maxNeat)
	return breaks, nil
}
