// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sciform

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.2e4", "1.2×10⁴"},
		{"3.4e-5", "3.4×10⁻⁵"},
		{"1e0", "1×10⁰"},
		{"-2.5e+3", "-2.5×10³"},
		{"6.02e23", "6.02×10²³"},
	}
	for _, test := range tests {
		got, err := FormatScientific(test.in)
		if err != nil {
			t.Errorf("FormatScientific(%q) failed: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("FormatScientific(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFormatScientificErrors(t *testing.T) {
	var synErr *SyntaxError
	for _, in := range []string{"42", "1e2e3", "1.2ex", "1.2e4.5", ""} {
		if _, err := FormatScientific(in); !errors.As(err, &synErr) {
			t.Errorf("FormatScientific(%q) = %v, want *SyntaxError", in, err)
		}
	}
}

func TestToSuperscript(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", "⁰"},
		{"-12", "⁻¹²"},
		{"+7", "⁷"},
		{"1234567890", "¹²³⁴⁵⁶⁷⁸⁹⁰"},
	}
	for _, test := range tests {
		got, err := ToSuperscript(test.in)
		if err != nil {
			t.Errorf("ToSuperscript(%q) failed: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ToSuperscript(%q) = %q, want %q", test.in, got, test.want)
		}
	}

	var synErr *SyntaxError
	if _, err := ToSuperscript("1a2"); !errors.As(err, &synErr) {
		t.Errorf("ToSuperscript(\"1a2\") = %v, want *SyntaxError", err)
	}
}

func TestToSuperscriptFidelity(t *testing.T) {
	// Every input character maps to exactly one superscript rune,
	// except '+' which maps to none, and a reverse lookup recovers
	// the original.
	reverse := map[string]byte{}
	for b, s := range superscripts {
		if b == '+' {
			continue
		}
		reverse[s] = b
	}

	for _, in := range []string{"-123", "+456", "0", "99", "-0", "+-19"} {
		got, err := ToSuperscript(in)
		if err != nil {
			t.Fatalf("ToSuperscript(%q) failed: %v", in, err)
		}
		wantRunes := len(in) - strings.Count(in, "+")
		if n := len([]rune(got)); n != wantRunes {
			t.Errorf("ToSuperscript(%q) = %q (%d runes), want %d runes", in, got, n, wantRunes)
		}
		var back []byte
		for _, r := range got {
			b, ok := reverse[string(r)]
			if !ok {
				t.Fatalf("ToSuperscript(%q) produced unmapped rune %q", in, r)
			}
			back = append(back, b)
		}
		want := strings.ReplaceAll(in, "+", "")
		if string(back) != want {
			t.Errorf("reverse lookup of ToSuperscript(%q) = %q, want %q", in, back, want)
		}
	}
}
