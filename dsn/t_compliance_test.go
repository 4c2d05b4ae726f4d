// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/strukturalab/gofea/inp"
	"github.com/strukturalab/gofea/sec"
)

// single builds a one-element structure with the given material
func single(m *inp.Material) *inp.Structure {
	return &inp.Structure{
		Nodes: []*inp.Node{
			{Id: 1, C: []float64{0, 0, 0}, Fix: [6]bool{true, true, true, true, true, true}},
			{Id: 2, C: []float64{5, 0, 0}},
		},
		Elems: []*inp.Element{
			{Id: 1, Tag: "beam", Verts: [2]int{1, 2}, Mat: m.Name, Sec: "R"},
		},
		Loads: []*inp.Load{
			{Id: 1, Node: 2, Key: "fz", Value: -1000, Case: "dead"},
			{Id: 2, Node: 2, Key: "fz", Value: -500, Case: "live"},
		},
		Mats: []*inp.Material{m},
		Secs: []*inp.Section{
			{Name: "R", Shape: "rectangular", Dims: sec.Dims{B: 0.3, H: 0.5}},
		},
	}
}

func Test_comp01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("comp01. concrete strength edges")

	mk := func(fc float64) *inp.Structure {
		return single(&inp.Material{Name: "c", Class: "concrete", E: 25e9, Nu: 0.2, Rho: 2400, Fc: fc})
	}

	r := CheckConcrete(mk(19.9), inp.Stats{MaxSpan: 5}, 0)
	if r.Compliant {
		tst.Errorf("fc=19.9 must violate\n")
	}
	chk.Int(tst, "violations fc=19.9", len(r.Violations), 1)

	r = CheckConcrete(mk(20.0), inp.Stats{MaxSpan: 5}, 0)
	if !r.Compliant {
		tst.Errorf("fc=20.0 must comply: %v\n", r.Violations)
	}

	r = CheckConcrete(mk(80.5), inp.Stats{MaxSpan: 5}, 0)
	if !r.Compliant {
		tst.Errorf("fc=80.5 must comply (warning only)\n")
	}
	chk.Int(tst, "warnings fc=80.5", len(r.Warnings), 1)

	// deflection: span/250
	r = CheckConcrete(mk(30), inp.Stats{MaxSpan: 5}, 0.021)
	if r.Compliant {
		tst.Errorf("deflection above span/250 must violate\n")
	}
	r = CheckConcrete(mk(30), inp.Stats{MaxSpan: 5}, 0.019)
	if !r.Compliant {
		tst.Errorf("deflection below span/250 must comply\n")
	}
}

func Test_comp02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("comp02. steel strength edges")

	mk := func(fy float64) *inp.Structure {
		return single(&inp.Material{Name: "s", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: fy})
	}

	r := CheckSteel(mk(239), inp.Stats{MaxSpan: 5}, 0)
	if r.Compliant {
		tst.Errorf("fy=239 must violate\n")
	}

	r = CheckSteel(mk(240), inp.Stats{MaxSpan: 5}, 0)
	if !r.Compliant || len(r.Warnings) != 0 {
		tst.Errorf("fy=240 must comply cleanly\n")
	}

	r = CheckSteel(mk(550), inp.Stats{MaxSpan: 5}, 0)
	if !r.Compliant || len(r.Warnings) != 0 {
		tst.Errorf("fy=550 must comply cleanly\n")
	}

	r = CheckSteel(mk(551), inp.Stats{MaxSpan: 5}, 0)
	if !r.Compliant {
		tst.Errorf("fy=551 must comply\n")
	}
	chk.Int(tst, "warnings fy=551", len(r.Warnings), 1)

	// deflection: span/300
	r = CheckSteel(mk(240), inp.Stats{MaxSpan: 6}, 0.021)
	if r.Compliant {
		tst.Errorf("deflection above span/300 must violate\n")
	}
}

func Test_comp03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("comp03. seismic rules")

	// tall building: warning plus dynamic-analysis requirement, still compliant
	r := CheckSeismic(inp.Stats{Height: 75}, 0.1)
	if !r.Compliant {
		tst.Errorf("height alone must not violate\n")
	}
	chk.Int(tst, "warnings", len(r.Warnings), 1)
	chk.Int(tst, "requirements", len(r.Requirements), 1)

	// irregular plan
	r = CheckSeismic(inp.Stats{Height: 10, PlanIrregularity: 0.5}, 0.01)
	chk.Int(tst, "irregularity requirements", len(r.Requirements), 1)

	// drift
	r = CheckSeismic(inp.Stats{Height: 10}, 0.25)
	if r.Compliant {
		tst.Errorf("drift 0.025 must violate\n")
	}
	r = CheckSeismic(inp.Stats{Height: 10}, 0.15)
	if !r.Compliant {
		tst.Errorf("drift 0.015 must comply\n")
	}
}

func Test_comp04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("comp04. load cases and the aggregate report")

	m := &inp.Material{Name: "s", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 240}
	s := single(m)

	r := CheckLoads(s, false)
	if !r.Compliant {
		tst.Errorf("dead+live present must comply\n")
	}

	// drop the dead load: violation, unless self-weight generation covers it
	s.Loads = s.Loads[1:]
	r = CheckLoads(s, false)
	if r.Compliant {
		tst.Errorf("missing dead load must violate\n")
	}
	r = CheckLoads(s, true)
	if !r.Compliant {
		tst.Errorf("self-weight generation must satisfy the dead load case\n")
	}

	// aggregate: AND over the selected rule sets
	s = single(m)
	rep := Check(s, s.Stats(), 0.001, inp.DefaultOptions())
	if chk.Verbose {
		io.Pforan("report = %+v\n", rep)
	}
	chk.Int(tst, "nrules", len(rep.Rules), 4)
	if !rep.Compliant {
		tst.Errorf("clean structure must be compliant\n")
	}

	// one failing rule set flips the aggregate
	s.Loads = nil
	rep = Check(s, s.Stats(), 0.001, inp.DefaultOptions())
	if rep.Compliant {
		tst.Errorf("missing loads must fail the aggregate\n")
	}

	// rule-set selection
	opts := inp.DefaultOptions()
	opts.RuleSets = []string{"steel"}
	rep = Check(s, s.Stats(), 0.001, opts)
	chk.Int(tst, "selected rules", len(rep.Rules), 1)
	chk.String(tst, rep.Rules[0].Name, "steel")
}
