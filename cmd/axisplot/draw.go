// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-moremath/vec"
)

type TicksFormat struct {
	tickLen, minorTickLen, textSep float64
	tickColor, labelColor          color.Color
	label                          func(v float64) string
}

// HAxis draws a horizontal axis line at output coordinate y with tick
// marks and labels for s's ticks, using x to map normalized positions
// to device X coordinates.
func (f *TicksFormat) HAxis(svg *SVG, s scale.Interface, x scale.OutputScale, y float64, n int) {
	x.Crop()

	major, minor := s.Ticks(n)
	majorX, minorX := vec.Map(s.Of, major), vec.Map(s.Of, minor)

	// Draw axis line and ticks
	if f.tickColor == nil {
		svg.SetStroke(color.Black)
	} else {
		svg.SetStroke(f.tickColor)
	}
	svg.NewPath()
	x0, ok0 := x.Of(0)
	x1, ok1 := x.Of(1)
	if ok0 && ok1 {
		svg.MoveTo(x0, y)
		svg.LineToRel(x1-x0, 0)
	}
	for _, sx := range majorX {
		if px, ok := x.Of(sx); ok {
			svg.MoveTo(px, y)
			svg.LineToRel(0, -f.tickLen)
		}
	}
	for _, sx := range minorX {
		if px, ok := x.Of(sx); ok {
			svg.MoveTo(px, y)
			svg.LineToRel(0, -f.minorTickLen)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)

	// Draw labels
	if f.label != nil {
		lOpts := TextOpts{Anchor: AnchorMiddle}
		if f.labelColor == nil {
			svg.SetFill(color.Black)
		} else {
			svg.SetFill(f.labelColor)
		}
		for i, sx := range majorX {
			if px, ok := x.Of(sx); ok {
				svg.Text(px, y-f.tickLen-f.textSep, lOpts, f.label(major[i]))
			}
		}
		svg.SetFill(nil)
	}
}

func writeSVG(w io.Writer, s scale.Interface, n, width int) error {
	const height = 48
	svg := NewSVG(w, width, height)
	out := scale.NewOutputScale(8, float64(width-8))
	ticks := &TicksFormat{tickLen: 6, minorTickLen: 3, textSep: 4, label: tickLabel}
	ticks.HAxis(svg, s, out, height-16, n)
	return svg.Done()
}
