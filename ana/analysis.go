// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana orchestrates one linear static analysis: validation, assembly,
// boundary conditions, the iterative solve, force recovery and the design
// checks, consolidated into a single result value
package ana

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/strukturalab/gofea/dsn"
	"github.com/strukturalab/gofea/fem"
	"github.com/strukturalab/gofea/inp"
)

// State is one stage of the analysis pipeline
type State int

// pipeline states, in order; Failed is terminal and reachable from
// Validating and Solving
const (
	Validating State = iota
	Assembling
	BoundaryConditions
	Solving
	Recovering
	ComplianceChecking
	Done
	Failed
)

var stateNames = []string{"validating", "assembling", "boundary-conditions", "solving", "recovering", "compliance-checking", "done", "failed"}

// String returns the state name
func (o State) String() string {
	if int(o) < len(stateNames) {
		return stateNames[o]
	}
	return io.Sf("state(%d)", int(o))
}

// NodeValues holds six DOF-ordered values (ux,uy,uz,rx,ry,rz or the
// corresponding forces) at one node
type NodeValues struct {
	Id int        `json:"id"`
	V  [6]float64 `json:"v"`
}

// ElemValues holds the recovered actions and stresses of one element
type ElemValues struct {
	Id       int          `json:"id"`
	Forces   fem.Forces   `json:"forces"`
	Stresses fem.Stresses `json:"stresses"`
}

// Result is the consolidated outcome of one analysis. It is created fresh
// per call and never mutated afterwards.
type Result struct {
	State   State  `json:"state"`
	Message string `json:"message"` // failure description when State == Failed

	// solution
	Displacements []NodeValues `json:"displacements"` // one entry per node
	Reactions     []NodeValues `json:"reactions"`     // one entry per supported node
	Elements      []ElemValues `json:"elements"`      // one entry per element

	// diagnostics
	Converged       bool     `json:"converged"`
	Iterations      int      `json:"iterations"`
	Residual        float64  `json:"residual"`
	MaxDisplacement float64  `json:"maxdisplacement"` // largest translational resultant
	Warnings        []string `json:"warnings"`

	// design
	Valid      bool            `json:"valid"`
	Safety     *dsn.Assessment `json:"safety"`
	Compliance *dsn.Report     `json:"compliance"`
	Stats      inp.Stats       `json:"stats"`
}

// stress values feed design checks whose thresholds are in MPa
const paToMPa = 1e-6

// Analyze runs the full pipeline on one structure. Malformed structures
// return a *inp.ValidationError and no result. Numerical breakdowns during
// the solve return a Failed result with zeroed summary fields and the error
// message captured. Solver non-convergence is a warning, not a failure.
func Analyze(s *inp.Structure, opts *inp.Options) (*Result, error) {
	return AnalyzeWithStop(s, opts, nil)
}

// AnalyzeWithStop is Analyze with an optional cancellation channel checked
// at solver iteration boundaries
func AnalyzeWithStop(s *inp.Structure, opts *inp.Options, stop <-chan struct{}) (res *Result, err error) {

	if opts == nil {
		opts = inp.DefaultOptions()
	}
	opts.Fix()
	res = &Result{State: Validating}

	// validation: fatal, before any matrix work
	if verr := s.Validate(); verr != nil {
		return nil, verr
	}
	res.Stats = s.Stats()

	// assembly and boundary conditions
	res.State = Assembling
	dom, derr := fem.NewDomain(s, opts)
	if derr != nil {
		return nil, inp.Invalidf("%v", derr)
	}
	res.State = BoundaryConditions
	dom.Assemble()

	// solve
	res.State = Solving
	sol, serr := fem.SolveCG(dom.Kb, dom.F, nil, opts.MaxIt, opts.Tol, stop)
	if serr != nil {
		res.State = Failed
		res.Message = serr.Error()
		return res, nil
	}
	res.Converged = sol.Converged
	res.Iterations = sol.Iterations
	res.Residual = sol.Residual
	if !sol.Converged {
		res.Warnings = append(res.Warnings, io.Sf("solver did not converge within %d iterations (residual %.3e, tolerance %.3e); results are approximate", opts.MaxIt, sol.Residual, opts.Tol))
	}

	// recovery
	res.State = Recovering
	u := sol.U
	for i, n := range s.Nodes {
		nv := NodeValues{Id: n.Id}
		for j := 0; j < 6; j++ {
			nv.V[j] = u[i*6+j]
		}
		res.Displacements = append(res.Displacements, nv)
		t := math.Sqrt(nv.V[0]*nv.V[0] + nv.V[1]*nv.V[1] + nv.V[2]*nv.V[2])
		res.MaxDisplacement = math.Max(res.MaxDisplacement, t)
	}
	r := dom.Reactions(u)
	for i, n := range s.Nodes {
		if !n.Fixed() {
			continue
		}
		nv := NodeValues{Id: n.Id}
		for j := 0; j < 6; j++ {
			nv.V[j] = r[i*6+j]
		}
		res.Reactions = append(res.Reactions, nv)
	}
	stresses := make([]fem.Stresses, len(dom.Elems))
	for i, e := range dom.Elems {
		f := e.Recover(u)
		st := fem.StressesOf(f, e.Sec)
		st.Axial *= paToMPa
		st.Shear *= paToMPa
		st.Bending *= paToMPa
		st.Combined *= paToMPa
		stresses[i] = st
		res.Elements = append(res.Elements, ElemValues{Id: e.Id, Forces: f, Stresses: st})
	}

	// design checks
	res.State = ComplianceChecking
	res.Safety = dsn.Assess(dom.Elems, stresses, opts)
	res.Valid = res.Safety.Valid
	res.Compliance = dsn.Check(s, res.Stats, res.MaxDisplacement, opts)

	res.State = Done
	return
}
