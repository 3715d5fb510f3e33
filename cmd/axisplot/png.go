// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

func writePNG(w io.Writer, s scale.Interface, n, width int, fontPath string, fontSize float64) error {
	fontData, err := ioutil.ReadFile(fontPath)
	if err != nil {
		return err
	}
	ttf, err := freetype.ParseFont(fontData)
	if err != nil {
		return err
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: fontSize})
	defer face.Close()
	metrics := face.Metrics()
	labelHeight := (metrics.Ascent + metrics.Descent).Ceil()

	height := labelHeight + 24
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.ZP, draw.Over)

	fontCtx := freetype.NewContext()
	fontCtx.SetFontSize(fontSize)
	fontCtx.SetSrc(image.Black)
	fontCtx.SetFont(ttf)
	fontCtx.SetDst(img)
	fontCtx.SetClip(img.Bounds())

	major, minor := s.Ticks(n)
	majorX, minorX := vec.Map(s.Of, major), vec.Map(s.Of, minor)

	out := scale.NewOutputScale(8, float64(width-8))
	y := height - 8

	x0, _ := out.Of(0)
	x1, _ := out.Of(1)
	hline(img, int(x0), int(x1), y)

	for _, sx := range majorX {
		if px, ok := out.Of(sx); ok {
			vline(img, int(px), y-6, y)
		}
	}
	for _, sx := range minorX {
		if px, ok := out.Of(sx); ok {
			vline(img, int(px), y-3, y)
		}
	}

	// Center each label over its major tick.
	for i, sx := range majorX {
		px, ok := out.Of(sx)
		if !ok {
			continue
		}
		l := tickLabel(major[i])
		lw := font.MeasureString(face, l).Ceil()
		if _, err := fontCtx.DrawString(l, freetype.Pt(int(px)-lw/2, y-10)); err != nil {
			return err
		}
	}

	return png.Encode(w, img)
}

func hline(img *image.NRGBA, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, color.Black)
	}
}

func vline(img *image.NRGBA, x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, color.Black)
	}
}
