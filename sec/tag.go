// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import "strings"

// Dims holds the raw shape dimensions as they appear in input files. Which
// fields are meaningful depends on the shape tag.
type Dims struct {
	B  float64 `json:"b"`  // width / outer width
	H  float64 `json:"h"`  // height / outer height
	D  float64 `json:"d"`  // diameter
	T  float64 `json:"t"`  // wall thickness
	Bf float64 `json:"bf"` // flange width
	Tf float64 `json:"tf"` // flange thickness
	Hw float64 `json:"hw"` // web height
	Tw float64 `json:"tw"` // web thickness
}

// FromTag maps a shape tag from an input file onto a Shape. Unrecognised tags
// fall back to the generic bounding-box approximation; override may carry
// caller-supplied properties for that case.
func FromTag(tag string, d Dims, override *Props) Shape {
	switch strings.ToLower(tag) {
	case "rectangular", "rect", "rectangle":
		return Rectangular{B: d.B, H: d.H}
	case "circular", "circle", "round":
		return Circular{D: d.D}
	case "i-section", "isection", "i", "wide-flange", "wf":
		return ISection{Bf: d.Bf, Tf: d.Tf, Hw: d.Hw, Tw: d.Tw}
	case "hollow-rectangular", "box", "rhs", "shs":
		return HollowRectangular{B: d.B, H: d.H, T: d.T}
	case "hollow-circular", "pipe", "chs", "tube":
		return HollowCircular{D: d.D, T: d.T}
	}
	return Generic{W: d.B, H: d.H, Override: override}
}
