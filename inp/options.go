// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Options controls one analysis run. Only linear static analysis is
// available; the solver and design factors are tunable.
type Options struct {

	// solver
	Tol   float64 `json:"tol"`   // residual tolerance of the conjugate-gradient solver
	MaxIt int     `json:"maxit"` // iteration bound of the solver

	// formulation
	IncludeShear bool `json:"includeshear"` // Timoshenko shear-deformation correction
	SelfWeight   bool `json:"selfweight"`   // generate gravity loads from element mass

	// design factors
	DeadFactor     float64 `json:"deadfactor"`     // dead-load factor
	LiveFactor     float64 `json:"livefactor"`     // live-load factor
	SteelFactor    float64 `json:"steelfactor"`    // allowable-stress factor, steel
	ConcreteFactor float64 `json:"concretefactor"` // allowable-stress factor, concrete

	// compliance rule sets to run; nil means all of seismic, load, concrete, steel
	RuleSets []string `json:"rulesets"`
}

// DefaultOptions returns options with the standard factors and solver bounds
func DefaultOptions() *Options {
	return &Options{
		Tol:            1e-8,
		MaxIt:          5000,
		DeadFactor:     1.2,
		LiveFactor:     1.6,
		SteelFactor:    0.6,
		ConcreteFactor: 0.45,
	}
}

// Fix fills zeroed fields with their defaults
func (o *Options) Fix() {
	d := DefaultOptions()
	if o.Tol <= 0 {
		o.Tol = d.Tol
	}
	if o.MaxIt <= 0 {
		o.MaxIt = d.MaxIt
	}
	if o.DeadFactor <= 0 {
		o.DeadFactor = d.DeadFactor
	}
	if o.LiveFactor <= 0 {
		o.LiveFactor = d.LiveFactor
	}
	if o.SteelFactor <= 0 {
		o.SteelFactor = d.SteelFactor
	}
	if o.ConcreteFactor <= 0 {
		o.ConcreteFactor = d.ConcreteFactor
	}
}
