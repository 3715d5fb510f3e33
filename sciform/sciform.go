// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sciform formats scientific-notation numbers using Unicode
// superscript exponents, for compact axis labels: "1.2e4" becomes
// "1.2×10⁴".
package sciform // import "github.com/aclements/go-axis/sciform"

import (
	"fmt"
	"strings"
)

// superscripts maps exponent bytes to their superscript form. '+'
// maps to the empty string because positive exponents are shown
// unsigned.
var superscripts = map[byte]string{
	'-': "⁻", '+': "",
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
}

// A SyntaxError indicates input that is not a scientific-notation
// string or exponent.
type SyntaxError struct {
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bad scientific notation %q: %s", e.Input, e.Msg)
}

// ToSuperscript converts an exponent string consisting of '-', '+',
// and decimal digits to superscript form, in order. '+' is dropped.
// Any other byte results in a *SyntaxError.
func ToSuperscript(exponent string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(exponent); i++ {
		s, ok := superscripts[exponent[i]]
		if !ok {
			return "", &SyntaxError{exponent, fmt.Sprintf("byte %q is not an exponent character", exponent[i])}
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// FormatScientific renders a number in "<base>e<exponent>" form as
// "<base>×10<superscript exponent>". value must contain exactly one
// "e" separator and the exponent must consist of '-', '+', and
// digits; otherwise FormatScientific returns a *SyntaxError.
func FormatScientific(value string) (string, error) {
	base, exp, ok := strings.Cut(value, "e")
	if !ok {
		return "", &SyntaxError{value, `missing "e" separator`}
	}
	if strings.Contains(exp, "e") {
		return "", &SyntaxError{value, `multiple "e" separators`}
	}
	sup, err := ToSuperscript(exp)
	if err != nil {
		return "", &SyntaxError{value, err.(*SyntaxError).Msg}
	}
	return base + "×10" + sup, nil
}
