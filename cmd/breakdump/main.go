// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command breakdump prints the pretty breaks and inverse-range
// coefficients for a numeric range, for inspecting what an axis
// built over that range would look like.
//
// Usage: breakdump [-n count] min max
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/sciform"
)

func main() {
	flagN := flag.Int("n", 4, "approximate number of breaks")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: breakdump [-n count] min max")
		os.Exit(1)
	}

	min, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatal(err)
	}
	max, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		log.Fatal(err)
	}

	newMin, newMax, scaleFactor, err := scale.InvertRange(min, max)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("inverse: newMin=%v newMax=%v scaleFactor=%v\n", newMin, newMax, scaleFactor)

	breaks, err := scale.PrettyBreaks(min, max, *flagN)
	if err != nil {
		log.Fatal(err)
	}
	for _, b := range breaks {
		fmt.Printf("%v\t%s\n", b, label(b))
	}
}

// label renders b the way an axis label would, with superscript
// scientific notation when the compact form calls for it.
func label(b float64) string {
	l := strconv.FormatFloat(b, 'g', -1, 64)
	if !strings.Contains(l, "e") {
		return l
	}
	sl, err := sciform.FormatScientific(l)
	if err != nil {
		log.Fatal(err)
	}
	return sl
}
