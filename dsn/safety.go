// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dsn implements the design layer on top of the analysis results:
// utilization and safety-factor rating, optimization suggestions and the
// code-compliance rule sets
package dsn

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/strukturalab/gofea/fem"
	"github.com/strukturalab/gofea/inp"
)

// display bounds and classification thresholds
const (
	utilizationCap   = 2.0
	safetyFloor      = 0.1
	highUtilization  = 0.9
	medUtilization   = 0.8
	lowSafetyFactor  = 1.5
	underUtilized    = 0.3
	criticalUtilized = 0.85
	overDesignedMean = 0.5
)

// Rating is the safety classification of one element
type Rating struct {
	Eid          int     `json:"eid"`
	Utilization  float64 `json:"utilization"`  // combined/allowable, capped at 2.0 for display
	SafetyFactor float64 `json:"safetyfactor"` // allowable/combined, floored at 0.1 for display
	Status       string  `json:"status"`       // normal | medium-utilization | high-utilization | low-safety-factor
}

// Suggestion is one optimization hint with an estimated improvement fraction
type Suggestion struct {
	Kind        string  `json:"kind"`     // material | geometry | overall
	Priority    string  `json:"priority"` // low | medium | high
	Eid         int     `json:"eid"`      // 0 for structure-wide suggestions
	Note        string  `json:"note"`
	Improvement float64 `json:"improvement"`
}

// Assessment is the structure-wide safety summary
type Assessment struct {
	Ratings         []Rating     `json:"ratings"`
	Valid           bool         `json:"valid"` // every element safety factor > 1
	MeanUtilization float64      `json:"meanutilization"`
	Suggestions     []Suggestion `json:"suggestions"`
}

// Allowable computes the allowable stress of a material: design factor times
// strength, divided by the average of the dead and live load factors
func Allowable(m *inp.Material, o *inp.Options) float64 {
	design := o.SteelFactor
	if m.Class == "concrete" {
		design = o.ConcreteFactor
	}
	avg := (o.DeadFactor + o.LiveFactor) / 2.0
	return m.Strength() * design / avg
}

// Assess rates every element and derives the optimization suggestions.
// Stress and strength units must agree; the built-in catalog carries
// strengths in MPa, so stresses are converted accordingly by the caller.
func Assess(elems []*fem.Frame, stresses []fem.Stresses, o *inp.Options) (a *Assessment) {
	a = &Assessment{Valid: true}
	sum := 0.0
	for i, e := range elems {
		allow := Allowable(e.Mat, o)
		r := Rating{Eid: e.Id}

		var util, sf float64
		comb := stresses[i].Combined
		if allow <= 0 {
			util, sf = utilizationCap, safetyFloor
		} else if comb <= 0 {
			util, sf = 0, math.Inf(1)
		} else {
			util = comb / allow
			sf = allow / comb
		}
		sum += util

		r.Utilization = math.Min(util, utilizationCap)
		r.SafetyFactor = math.Max(sf, safetyFloor)
		if math.IsInf(sf, 1) {
			r.SafetyFactor = 999 // fully unloaded member
		}

		switch {
		case sf < lowSafetyFactor:
			r.Status = "low-safety-factor"
		case util > highUtilization:
			r.Status = "high-utilization"
		case util > medUtilization:
			r.Status = "medium-utilization"
		default:
			r.Status = "normal"
		}
		if sf <= 1.0 {
			a.Valid = false
		}
		a.Ratings = append(a.Ratings, r)

		// per-element suggestions
		if util < underUtilized {
			a.Suggestions = append(a.Suggestions, Suggestion{
				Kind:        "material",
				Priority:    "medium",
				Eid:         e.Id,
				Note:        io.Sf("element %d uses %.0f%% of its capacity; reduce section dimensions or material grade", e.Id, util*100),
				Improvement: underUtilized - util,
			})
		}
		if util > criticalUtilized {
			a.Suggestions = append(a.Suggestions, Suggestion{
				Kind:        "geometry",
				Priority:    "high",
				Eid:         e.Id,
				Note:        io.Sf("element %d is critical at %.0f%% capacity; increase the section or add members", e.Id, util*100),
				Improvement: util - criticalUtilized,
			})
		}
	}
	if n := len(elems); n > 0 {
		a.MeanUtilization = sum / float64(n)
	}
	if a.MeanUtilization < overDesignedMean && len(elems) > 0 {
		a.Suggestions = append(a.Suggestions, Suggestion{
			Kind:        "overall",
			Priority:    "low",
			Note:        io.Sf("mean utilization is %.0f%%; the structure is over-designed", a.MeanUtilization*100),
			Improvement: overDesignedMean - a.MeanUtilization,
		})
	}
	return
}
