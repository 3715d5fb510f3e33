// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// A DegenerateRangeError indicates a range whose endpoints are equal,
// which no scale or tick operation can work with.
type DegenerateRangeError struct {
	Min, Max float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate range [%v, %v]", e.Min, e.Max)
}

// A BreakCountError indicates a requested break count that is not
// positive.
type BreakCountError struct {
	N int
}

func (e *BreakCountError) Error() string {
	return fmt.Sprintf("break count %d is not positive", e.N)
}
