// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsn

import (
	"github.com/cpmech/gosl/io"

	"github.com/strukturalab/gofea/inp"
)

// code thresholds. Strengths in MPa, lengths in the model length unit.
const (
	seismicHeightLimit    = 60.0 // above this a dynamic analysis is required
	irregularityLimit     = 0.3
	driftLimit            = 0.02
	concreteMinFc         = 20.0
	concreteMaxFc         = 80.0
	steelMinFy            = 240.0
	steelMaxFy            = 550.0
	concreteDeflectionDiv = 250.0 // limit = span/250
	steelDeflectionDiv    = 300.0 // limit = span/300
)

// RuleResult is the outcome of one compliance rule set
type RuleResult struct {
	Name         string   `json:"name"`
	Compliant    bool     `json:"compliant"`
	Requirements []string `json:"requirements"`
	Violations   []string `json:"violations"`
	Warnings     []string `json:"warnings"`
}

// Report aggregates the rule sets; Compliant is the conjunction of all of them
type Report struct {
	Compliant bool         `json:"compliant"`
	Rules     []RuleResult `json:"rules"`
}

// CheckSeismic evaluates the seismic provisions: height, plan irregularity
// and storey drift
func CheckSeismic(st inp.Stats, maxDisp float64) (r RuleResult) {
	r.Name = "seismic"
	r.Compliant = true
	if st.Height > seismicHeightLimit {
		r.Warnings = append(r.Warnings, io.Sf("building height %.1f exceeds %.0f; static analysis alone is insufficient", st.Height, seismicHeightLimit))
		r.Requirements = append(r.Requirements, "perform a dynamic (response-spectrum or time-history) analysis")
	}
	if st.PlanIrregularity > irregularityLimit {
		r.Warnings = append(r.Warnings, io.Sf("plan irregularity %.2f exceeds %.2f", st.PlanIrregularity, irregularityLimit))
		r.Requirements = append(r.Requirements, "perform a full 3D analysis accounting for torsional effects")
	}
	if st.Height > 0 && maxDisp/st.Height > driftLimit {
		r.Compliant = false
		r.Violations = append(r.Violations, io.Sf("drift ratio %.4f exceeds the %.2f limit", maxDisp/st.Height, driftLimit))
	}
	return
}

// CheckLoads verifies that both dead and live load cases are defined.
// Generated self-weight counts as the dead load case.
func CheckLoads(s *inp.Structure, selfWeight bool) (r RuleResult) {
	r.Name = "load"
	r.Compliant = true
	if !selfWeight && !s.HasLoadCase("dead") {
		r.Compliant = false
		r.Violations = append(r.Violations, "no dead load case is defined")
	}
	if !s.HasLoadCase("live") {
		r.Compliant = false
		r.Violations = append(r.Violations, "no live load case is defined")
	}
	return
}

// CheckConcrete evaluates the concrete provisions: strength range and the
// span/250 deflection limit. Without concrete members the rule set passes
// trivially.
func CheckConcrete(s *inp.Structure, st inp.Stats, maxDisp float64) (r RuleResult) {
	r.Name = "concrete"
	r.Compliant = true
	used := false
	for _, e := range s.Elems {
		m := s.MatByName(e.Mat)
		if m == nil || m.Class != "concrete" {
			continue
		}
		used = true
		if m.Fc < concreteMinFc {
			r.Compliant = false
			r.Violations = append(r.Violations, io.Sf("material %q: fc=%.1f MPa is below the %.0f MPa minimum", m.Name, m.Fc, concreteMinFc))
		} else if m.Fc > concreteMaxFc {
			r.Warnings = append(r.Warnings, io.Sf("material %q: fc=%.1f MPa exceeds %.0f MPa; high-strength provisions apply", m.Name, m.Fc, concreteMaxFc))
		}
	}
	if used && st.MaxSpan > 0 && maxDisp > st.MaxSpan/concreteDeflectionDiv {
		r.Compliant = false
		r.Violations = append(r.Violations, io.Sf("deflection %.4g exceeds span/%.0f = %.4g", maxDisp, concreteDeflectionDiv, st.MaxSpan/concreteDeflectionDiv))
	}
	return
}

// CheckSteel evaluates the steel provisions: yield range and the span/300
// deflection limit. Without steel members the rule set passes trivially.
func CheckSteel(s *inp.Structure, st inp.Stats, maxDisp float64) (r RuleResult) {
	r.Name = "steel"
	r.Compliant = true
	used := false
	for _, e := range s.Elems {
		m := s.MatByName(e.Mat)
		if m == nil || m.Class != "steel" {
			continue
		}
		used = true
		if m.Fy < steelMinFy {
			r.Compliant = false
			r.Violations = append(r.Violations, io.Sf("material %q: fy=%.0f MPa is below the %.0f MPa minimum", m.Name, m.Fy, steelMinFy))
		} else if m.Fy > steelMaxFy {
			r.Warnings = append(r.Warnings, io.Sf("material %q: fy=%.0f MPa exceeds %.0f MPa; verify ductility requirements", m.Name, m.Fy, steelMaxFy))
		}
	}
	if used && st.MaxSpan > 0 && maxDisp > st.MaxSpan/steelDeflectionDiv {
		r.Compliant = false
		r.Violations = append(r.Violations, io.Sf("deflection %.4g exceeds span/%.0f = %.4g", maxDisp, steelDeflectionDiv, st.MaxSpan/steelDeflectionDiv))
	}
	return
}

// Check runs the selected rule sets (nil means all) and aggregates the report
func Check(s *inp.Structure, st inp.Stats, maxDisp float64, o *inp.Options) (rep *Report) {
	all := []string{"seismic", "load", "concrete", "steel"}
	sel := o.RuleSets
	if len(sel) == 0 {
		sel = all
	}
	rep = &Report{Compliant: true}
	for _, name := range sel {
		var r RuleResult
		switch name {
		case "seismic":
			r = CheckSeismic(st, maxDisp)
		case "load":
			r = CheckLoads(s, o.SelfWeight)
		case "concrete":
			r = CheckConcrete(s, st, maxDisp)
		case "steel":
			r = CheckSteel(s, st, maxDisp)
		default:
			continue
		}
		rep.Rules = append(rep.Rules, r)
		rep.Compliant = rep.Compliant && r.Compliant
	}
	return
}
