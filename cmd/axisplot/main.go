// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot renders a labeled horizontal axis for a numeric
// range to SVG or PNG. It is a demonstration driver for the scale
// and sciform packages: the range is widened to pretty break
// boundaries, major ticks land on the breaks, and labels that come
// out in scientific notation are rendered with Unicode superscript
// exponents.
//
// For example,
//
//	axisplot -min 0 -max 1e22 -n 5 -o axis.svg
//
// writes an axis with ticks at neat multiples and labels like 2×10²¹.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/sciform"
)

func main() {
	var (
		flagMin      = flag.Float64("min", 0, "axis range minimum")
		flagMax      = flag.Float64("max", 10, "axis range maximum")
		flagN        = flag.Int("n", 4, "approximate number of major ticks")
		flagScale    = flag.String("scale", "linear", "axis `type`: linear, log, or power")
		flagBase     = flag.Float64("base", 10, "tick base for log scales")
		flagExp      = flag.Float64("exp", 0.5, "exponent for power scales")
		flagWidth    = flag.Int("w", 640, "output width in pixels")
		flagOut      = flag.String("o", "axis.svg", "write axis to `file` (.svg or .png)")
		flagFont     = flag.String("font", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "TrueType font `file` for PNG labels")
		flagFontSize = flag.Float64("fontsize", 12, "label size in points")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Reject degenerate ranges up front with a real error rather
	// than panicking in Ticks mid-render.
	if _, _, _, err := scale.InvertRange(*flagMin, *flagMax); err != nil {
		log.Fatal(err)
	}

	var s scale.Interface
	switch *flagScale {
	case "linear":
		lin := scale.NewLinearRange(*flagMin, *flagMax)
		lin.Nice(*flagN)
		s = lin
	case "log":
		s = scale.NewLogRange(*flagMin, *flagMax, *flagBase)
	case "power":
		s = scale.NewPowerRange(*flagMin, *flagMax, *flagExp)
	default:
		fmt.Fprintln(os.Stderr, "-scale must be linear, log, or power")
		os.Exit(1)
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	switch filepath.Ext(*flagOut) {
	case ".png":
		err = writePNG(f, s, *flagN, *flagWidth, *flagFont, *flagFontSize)
	default:
		err = writeSVG(f, s, *flagN, *flagWidth)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

// tickLabel formats a tick value compactly, rewriting scientific
// notation with a superscript exponent.
func tickLabel(v float64) string {
	l := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.Contains(l, "e") {
		if sl, err := sciform.FormatScientific(l); err == nil {
			l = sl
		}
	}
	return l
}
