// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_rect01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("rect01. solid rectangle 0.3 x 0.5")

	p, err := Rectangular{B: 0.3, H: 0.5}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("p = %+v\n", p)
	}
	chk.Float64(tst, "A", 1e-15, p.A, 0.15)
	chk.Float64(tst, "Iy", 1e-15, p.Iy, 0.3*0.125/12.0)
	chk.Float64(tst, "Iz", 1e-15, p.Iz, 0.5*0.027/12.0)
	chk.Float64(tst, "Ay", 1e-15, p.Ay, 5.0/6.0*0.15)
	chk.Float64(tst, "Az", 1e-15, p.Az, 5.0/6.0*0.15)

	// ratio = 0.6 => beta = 0.267*0.6 - 0.109
	beta := 0.267*0.6 - 0.109
	chk.Float64(tst, "J", 1e-15, p.J, beta*0.5*math.Pow(0.3, 3))

	chk.Float64(tst, "Sy", 1e-15, p.Sy, p.Iy/0.25)
	chk.Float64(tst, "Sz", 1e-15, p.Sz, p.Iz/0.15)
	chk.Float64(tst, "Ry", 1e-15, p.Ry, math.Sqrt(p.Iy/p.A))
	chk.Float64(tst, "Rz", 1e-15, p.Rz, math.Sqrt(p.Iz/p.A))
}

func Test_rect02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("rect02. torsion beta table branches")

	// square: ratio = 1
	p, err := Rectangular{B: 0.4, H: 0.4}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J square", 1e-15, p.J, 0.141*0.4*math.Pow(0.4, 3))

	// ratio = 0.8
	p, err = Rectangular{B: 0.4, H: 0.5}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J r=0.8", 1e-15, p.J, (0.196*0.8-0.056)*0.5*math.Pow(0.4, 3))

	// ratio = 0.25
	p, err = Rectangular{B: 0.1, H: 0.4}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J r=0.25", 1e-15, p.J, (0.333*0.25-0.142)*0.4*math.Pow(0.1, 3))

	// invalid dimensions
	_, err = Rectangular{B: -0.1, H: 0.4}.Properties()
	if err == nil {
		tst.Errorf("negative width must fail\n")
	}
}

func Test_circ01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("circ01. solid circle d=0.4")

	p, err := Circular{D: 0.4}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	r := 0.2
	chk.Float64(tst, "A", 1e-15, p.A, math.Pi*r*r)
	chk.Float64(tst, "Iy", 1e-15, p.Iy, math.Pi*math.Pow(r, 4)/4.0)
	chk.Float64(tst, "Iz", 1e-15, p.Iz, p.Iy)
	chk.Float64(tst, "J", 1e-15, p.J, p.Iy)
	chk.Float64(tst, "Ay", 1e-15, p.Ay, 0.9*p.A)
	chk.Float64(tst, "Ry", 1e-15, p.Ry, math.Sqrt(p.Iy/p.A))
}

func Test_isec01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("isec01. wide-flange 200x400")

	bf, tf, hw, tw := 0.2, 0.02, 0.36, 0.012
	h := hw + 2.0*tf
	p, err := ISection{Bf: bf, Tf: tf, Hw: hw, Tw: tw}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, p.A, 2.0*bf*tf+hw*tw)
	chk.Float64(tst, "Iy", 1e-15, p.Iy, bf*math.Pow(h, 3)/12.0-(bf-tw)*math.Pow(hw, 3)/12.0)
	chk.Float64(tst, "Iz", 1e-15, p.Iz, (2.0*tf*math.Pow(bf, 3)+hw*math.Pow(tw, 3))/12.0)
	chk.Float64(tst, "J", 1e-15, p.J, (2.0*bf*math.Pow(tf, 3)+hw*math.Pow(tw, 3))/3.0)
	chk.Float64(tst, "Ay", 1e-15, p.Ay, hw*tw)
	chk.Float64(tst, "Az", 1e-15, p.Az, 2.0*bf*tf)
	chk.Float64(tst, "Sy", 1e-15, p.Sy, p.Iy/(h/2.0))
	chk.Float64(tst, "Sz", 1e-15, p.Sz, p.Iz/(bf/2.0))
}

func Test_hollow01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hollow01. tubes with default 10% wall")

	// rectangular tube: default t = 0.1*min(b,h) = 0.04
	p, err := HollowRectangular{B: 0.4, H: 0.6}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	t := 0.04
	bi, hi := 0.4-2.0*t, 0.6-2.0*t
	chk.Float64(tst, "A rhs", 1e-15, p.A, 0.4*0.6-bi*hi)
	chk.Float64(tst, "Iy rhs", 1e-15, p.Iy, (0.4*math.Pow(0.6, 3)-bi*math.Pow(hi, 3))/12.0)
	chk.Float64(tst, "J rhs", 1e-15, p.J, rectTorsion(0.4, 0.6)-rectTorsion(bi, hi))

	// circular tube: default t = 0.05
	p, err = HollowCircular{D: 0.5}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	ro, ri := 0.25, 0.20
	chk.Float64(tst, "A chs", 1e-15, p.A, math.Pi*(ro*ro-ri*ri))
	chk.Float64(tst, "Iy chs", 1e-15, p.Iy, math.Pi*(math.Pow(ro, 4)-math.Pow(ri, 4))/4.0)

	// degenerate wall
	_, err = HollowRectangular{B: 0.1, H: 0.1, T: 0.06}.Properties()
	if err == nil {
		tst.Errorf("wall thicker than half the section must fail\n")
	}
}

func Test_generic01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("generic01. fallback and overrides")

	// plain fallback behaves as a rectangle with J = 0.1*Iy
	p, err := Generic{W: 0.3, H: 0.5}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, p.A, 0.15)
	chk.Float64(tst, "J", 1e-15, p.J, 0.1*p.Iy)

	// overrides replace approximated values
	p, err = Generic{W: 0.3, H: 0.5, Override: &Props{A: 0.2, Iy: 0.004}}.Properties()
	if err != nil {
		tst.Errorf("Properties failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A over", 1e-15, p.A, 0.2)
	chk.Float64(tst, "Iy over", 1e-15, p.Iy, 0.004)
	chk.Float64(tst, "Sy over", 1e-15, p.Sy, 0.004/0.25)
}

func Test_tag01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("tag01. shape tag dispatch")

	d := Dims{B: 0.3, H: 0.5, D: 0.4, Bf: 0.2, Tf: 0.02, Hw: 0.36, Tw: 0.012}

	chk.String(tst, FromTag("rectangular", d, nil).Name(), "rectangular")
	chk.String(tst, FromTag("circle", d, nil).Name(), "circular")
	chk.String(tst, FromTag("wide-flange", d, nil).Name(), "i-section")
	chk.String(tst, FromTag("box", d, nil).Name(), "hollow-rectangular")
	chk.String(tst, FromTag("pipe", d, nil).Name(), "hollow-circular")

	// unrecognised tags only ever reach the generic fallback
	chk.String(tst, FromTag("trapezoidal", d, nil).Name(), "generic")
}
