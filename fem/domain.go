// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strukturalab/gofea/inp"
)

// Gravity is the standard gravitational acceleration used for self-weight
// load generation [m/s2]
const Gravity = 9.80665

// Domain holds the assembled global system for one structure: the element
// set with equation numbers, the stiffness triplets and the load vector.
// Each analysis allocates its own Domain; nothing is shared between runs.
type Domain struct {

	// input
	Str  *inp.Structure
	Opts *inp.Options

	// elements and equations
	Elems []*Frame
	Ndof  int
	Fixed []bool // per-DOF constraint flags

	// assembled system. Kb carries the boundary conditions (elimination);
	// Kfull is the unconstrained stiffness kept for reaction recovery.
	Kb    *la.Triplet
	Kfull *la.Triplet
	F     la.Vector // right-hand side with constrained entries zeroed
	Fext  la.Vector // raw external loads (incl. self-weight)
}

// NewDomain builds the element set of an already validated structure
func NewDomain(s *inp.Structure, opts *inp.Options) (o *Domain, err error) {
	o = &Domain{Str: s, Opts: opts, Ndof: 6 * len(s.Nodes)}

	// constraint flags
	o.Fixed = make([]bool, o.Ndof)
	for i, n := range s.Nodes {
		for j := 0; j < 6; j++ {
			o.Fixed[i*6+j] = n.Fix[j]
		}
	}

	// elements
	for _, e := range s.Elems {
		ia, ib := s.NodeIndex(e.Verts[0]), s.NodeIndex(e.Verts[1])
		m := s.MatByName(e.Mat)
		p, perr := s.SecByName(e.Sec).Properties()
		if perr != nil {
			return nil, chk.Err("element %d: section properties failed:\n%v", e.Id, perr)
		}
		frame, ferr := NewFrame(e.Id, s.Nodes[ia], s.Nodes[ib], m, p, ia, ib, opts.IncludeShear)
		if ferr != nil {
			return nil, ferr
		}
		o.Elems = append(o.Elems, frame)
	}
	return
}

// Assemble builds the global stiffness triplets and the load vector.
// Essential boundary conditions are applied by elimination: rows and columns
// of constrained DOFs are skipped and their diagonal receives the largest
// free diagonal value to keep the system well scaled.
func (o *Domain) Assemble() {

	nnzPerElem := 12 * 12
	o.Kb = la.NewTriplet(o.Ndof, o.Ndof, len(o.Elems)*nnzPerElem+o.Ndof)
	o.Kfull = la.NewTriplet(o.Ndof, o.Ndof, len(o.Elems)*nnzPerElem)
	o.F = la.NewVector(o.Ndof)
	o.Fext = la.NewVector(o.Ndof)

	// stiffness
	maxdiag := 0.0
	for _, e := range o.Elems {
		for i, I := range e.Umap {
			for j, J := range e.Umap {
				v := e.K.Get(i, j)
				if math.Abs(v) < 1e-12 {
					continue
				}
				o.Kfull.Put(I, J, v)
				if o.Fixed[I] || o.Fixed[J] {
					continue
				}
				o.Kb.Put(I, J, v)
				if I == J {
					maxdiag = math.Max(maxdiag, math.Abs(v))
				}
			}
		}
	}
	if maxdiag == 0 {
		maxdiag = 1
	}
	for d := 0; d < o.Ndof; d++ {
		if o.Fixed[d] {
			o.Kb.Put(d, d, maxdiag)
		}
	}

	// loads (accumulating)
	for _, l := range o.Str.Loads {
		d := o.Str.NodeIndex(l.Node)*6 + inp.KeyOffset(l.Key)
		o.Fext[d] += l.Value
	}

	// self-weight: half the element gravity force to the uz DOF of each end
	if o.Opts.SelfWeight {
		for _, e := range o.Elems {
			w := e.SelfWeight(Gravity) / 2.0
			o.Fext[e.Umap[2]] += w
			o.Fext[e.Umap[8]] += w
		}
	}

	// right-hand side with constrained entries zeroed
	for d := 0; d < o.Ndof; d++ {
		if !o.Fixed[d] {
			o.F[d] = o.Fext[d]
		}
	}
}

// Reactions recovers the support reactions R = Kfull*u - Fext at constrained
// DOFs; free DOFs report zero
func (o *Domain) Reactions(u la.Vector) (r la.Vector) {
	r = la.NewVector(o.Ndof)
	kf := o.Kfull.ToMatrix(nil)
	la.SpMatVecMul(r, 1, kf, u)
	for d := 0; d < o.Ndof; d++ {
		if o.Fixed[d] {
			r[d] -= o.Fext[d]
		} else {
			r[d] = 0
		}
	}
	return
}
