// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "testing"

func TestOutputScale(t *testing.T) {
	s := NewOutputScale(100, 200)

	if got, ok := s.Of(0.5); !ok || got != 150 {
		t.Errorf("crop Of(0.5) = %v, %v, want 150, true", got, ok)
	}
	if _, ok := s.Of(1.5); ok {
		t.Error("crop Of(1.5) reported ok")
	}

	s.Clamp()
	if got, ok := s.Of(1.5); !ok || got != 200 {
		t.Errorf("clamp Of(1.5) = %v, %v, want 200, true", got, ok)
	}
	if got, ok := s.Of(-1); !ok || got != 100 {
		t.Errorf("clamp Of(-1) = %v, %v, want 100, true", got, ok)
	}

	s.Unclamp()
	if got, ok := s.Of(1.5); !ok || got != 250 {
		t.Errorf("unclamp Of(1.5) = %v, %v, want 250, true", got, ok)
	}
}

func TestOutputScaleFlipped(t *testing.T) {
	// Flipped output ranges map 0 to the bottom of a downward Y axis.
	s := NewOutputScale(200, 100)
	if got, ok := s.Of(0); !ok || got != 200 {
		t.Errorf("Of(0) = %v, %v, want 200, true", got, ok)
	}
	if got, ok := s.Of(1); !ok || got != 100 {
		t.Errorf("Of(1) = %v, %v, want 100, true", got, ok)
	}
}
