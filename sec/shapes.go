// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec computes cross-section properties of frame members
package sec

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Props holds the derived properties of a cross section
//
//   A        -- area
//   Iy, Iz   -- second moments of area about the local y and z axes
//   J        -- torsional constant (Saint-Venant)
//   Ay, Az   -- shear areas along local y and z
//   Sy, Sz   -- section moduli
//   Ry, Rz   -- radii of gyration
type Props struct {
	A  float64 `json:"a"`
	Iy float64 `json:"iy"`
	Iz float64 `json:"iz"`
	J  float64 `json:"j"`
	Ay float64 `json:"ay"`
	Az float64 `json:"az"`
	Sy float64 `json:"sy"`
	Sz float64 `json:"sz"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
}

// Shape is one cross-section geometry able to derive its own properties
type Shape interface {
	Name() string
	Properties() (p Props, err error)
}

// Rectangular is a solid rectangle: width b (local y) and height h (local z)
type Rectangular struct {
	B float64 // width
	H float64 // height
}

// Name returns the shape name
func (o Rectangular) Name() string { return "rectangular" }

// Properties computes derived section properties
func (o Rectangular) Properties() (p Props, err error) {
	if o.B <= 0 || o.H <= 0 {
		err = chk.Err("rectangular section: dimensions must be positive: b=%g h=%g", o.B, o.H)
		return
	}
	k := 5.0 / 6.0 // shear correction
	p.A = o.B * o.H
	p.Iy = o.B * math.Pow(o.H, 3) / 12.0
	p.Iz = o.H * math.Pow(o.B, 3) / 12.0
	p.J = rectTorsion(o.B, o.H)
	p.Ay = k * p.A
	p.Az = k * p.A
	finish(&p, o.B, o.H)
	return
}

// Circular is a solid circle with diameter d
type Circular struct {
	D float64 // diameter
}

// Name returns the shape name
func (o Circular) Name() string { return "circular" }

// Properties computes derived section properties
func (o Circular) Properties() (p Props, err error) {
	if o.D <= 0 {
		err = chk.Err("circular section: diameter must be positive: d=%g", o.D)
		return
	}
	r := o.D / 2.0
	k := 9.0 / 10.0 // shear correction
	p.A = math.Pi * r * r
	p.Iy = math.Pi * math.Pow(r, 4) / 4.0
	p.Iz = p.Iy
	p.J = p.Iy
	p.Ay = k * p.A
	p.Az = k * p.A
	finish(&p, o.D, o.D)
	return
}

// ISection is a doubly-symmetric I (wide-flange) profile.
// Strong-axis bending is about the local y axis.
type ISection struct {
	Bf float64 // flange width
	Tf float64 // flange thickness
	Hw float64 // web height (clear, between flanges)
	Tw float64 // web thickness
}

// Name returns the shape name
func (o ISection) Name() string { return "i-section" }

// Properties computes derived section properties
func (o ISection) Properties() (p Props, err error) {
	if o.Bf <= 0 || o.Tf <= 0 || o.Hw <= 0 || o.Tw <= 0 {
		err = chk.Err("i-section: dimensions must be positive: bf=%g tf=%g hw=%g tw=%g", o.Bf, o.Tf, o.Hw, o.Tw)
		return
	}
	h := o.Hw + 2.0*o.Tf // total depth
	p.A = 2.0*o.Bf*o.Tf + o.Hw*o.Tw
	p.Iy = o.Bf*math.Pow(h, 3)/12.0 - (o.Bf-o.Tw)*math.Pow(o.Hw, 3)/12.0
	p.Iz = (2.0*o.Tf*math.Pow(o.Bf, 3) + o.Hw*math.Pow(o.Tw, 3)) / 12.0
	p.J = (2.0*o.Bf*math.Pow(o.Tf, 3) + o.Hw*math.Pow(o.Tw, 3)) / 3.0
	p.Ay = o.Hw * o.Tw     // web
	p.Az = 2.0 * o.Bf * o.Tf // flanges
	finish(&p, o.Bf, h)
	return
}

// HollowRectangular is a rectangular tube. A zero wall thickness selects the
// default t = 10% of the smaller outer dimension.
type HollowRectangular struct {
	B float64 // outer width
	H float64 // outer height
	T float64 // wall thickness
}

// Name returns the shape name
func (o HollowRectangular) Name() string { return "hollow-rectangular" }

// Properties computes derived section properties
func (o HollowRectangular) Properties() (p Props, err error) {
	if o.B <= 0 || o.H <= 0 {
		err = chk.Err("hollow-rectangular section: dimensions must be positive: b=%g h=%g", o.B, o.H)
		return
	}
	t := o.T
	if t == 0 {
		t = 0.1 * math.Min(o.B, o.H)
	}
	bi, hi := o.B-2.0*t, o.H-2.0*t
	if t <= 0 || bi <= 0 || hi <= 0 {
		err = chk.Err("hollow-rectangular section: wall thickness t=%g incompatible with b=%g h=%g", t, o.B, o.H)
		return
	}
	k := 5.0 / 6.0
	p.A = o.B*o.H - bi*hi
	p.Iy = (o.B*math.Pow(o.H, 3) - bi*math.Pow(hi, 3)) / 12.0
	p.Iz = (o.H*math.Pow(o.B, 3) - hi*math.Pow(bi, 3)) / 12.0
	p.J = rectTorsion(o.B, o.H) - rectTorsion(bi, hi)
	p.Ay = k * p.A
	p.Az = k * p.A
	finish(&p, o.B, o.H)
	return
}

// HollowCircular is a circular tube. A zero wall thickness selects the
// default t = 10% of the outer diameter.
type HollowCircular struct {
	D float64 // outer diameter
	T float64 // wall thickness
}

// Name returns the shape name
func (o HollowCircular) Name() string { return "hollow-circular" }

// Properties computes derived section properties
func (o HollowCircular) Properties() (p Props, err error) {
	if o.D <= 0 {
		err = chk.Err("hollow-circular section: diameter must be positive: d=%g", o.D)
		return
	}
	t := o.T
	if t == 0 {
		t = 0.1 * o.D
	}
	di := o.D - 2.0*t
	if t <= 0 || di <= 0 {
		err = chk.Err("hollow-circular section: wall thickness t=%g incompatible with d=%g", t, o.D)
		return
	}
	ro, ri := o.D/2.0, di/2.0
	k := 9.0 / 10.0
	p.A = math.Pi * (ro*ro - ri*ri)
	p.Iy = math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4.0
	p.Iz = p.Iy
	p.J = p.Iy
	p.Ay = k * p.A
	p.Az = k * p.A
	finish(&p, o.D, o.D)
	return
}

// Generic approximates an unrecognised profile from its bounding width and
// height, treated as a rectangle with a reduced torsional constant. Non-zero
// fields of Override replace the approximated values.
type Generic struct {
	W        float64 // bounding width
	H        float64 // bounding height
	Override *Props  // caller-supplied property overrides (optional)
}

// Name returns the shape name
func (o Generic) Name() string { return "generic" }

// Properties computes derived section properties
func (o Generic) Properties() (p Props, err error) {
	if o.W <= 0 || o.H <= 0 {
		err = chk.Err("generic section: dimensions must be positive: w=%g h=%g", o.W, o.H)
		return
	}
	p, err = Rectangular{B: o.W, H: o.H}.Properties()
	if err != nil {
		return
	}
	p.J = 0.1 * p.Iy // crude default
	if o.Override != nil {
		applyOverride(&p, o.Override)
		finish(&p, o.W, o.H)
	}
	return
}

// rectTorsion computes the Saint-Venant torsional constant of a solid
// rectangle b*h using the beta-table approximation
func rectTorsion(b, h float64) float64 {
	a := math.Max(b, h)
	c := math.Min(b, h)
	ratio := c / a
	var beta float64
	switch {
	case ratio >= 1.0:
		beta = 0.141
	case ratio >= 0.75:
		beta = 0.196*ratio - 0.056
	case ratio >= 0.5:
		beta = 0.267*ratio - 0.109
	default:
		beta = 0.333*ratio - 0.142
	}
	return beta * a * math.Pow(c, 3)
}

// finish fills the properties derived from A, Iy and Iz: section moduli with
// extreme fibres at h/2 and b/2, and radii of gyration
func finish(p *Props, b, h float64) {
	p.Sy = p.Iy / (h / 2.0)
	p.Sz = p.Iz / (b / 2.0)
	p.Ry = math.Sqrt(p.Iy / p.A)
	p.Rz = math.Sqrt(p.Iz / p.A)
}

// applyOverride copies the non-zero fields of src over dst
func applyOverride(dst *Props, src *Props) {
	if src.A > 0 {
		dst.A = src.A
	}
	if src.Iy > 0 {
		dst.Iy = src.Iy
	}
	if src.Iz > 0 {
		dst.Iz = src.Iz
	}
	if src.J > 0 {
		dst.J = src.J
	}
	if src.Ay > 0 {
		dst.Ay = src.Ay
	}
	if src.Az > 0 {
		dst.Az = src.Az
	}
}
