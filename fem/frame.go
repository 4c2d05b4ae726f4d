// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct-stiffness frame analysis: element
// stiffness, global assembly, boundary conditions, the sparse iterative
// solver and force recovery
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strukturalab/gofea/inp"
	"github.com/strukturalab/gofea/sec"
)

// Frame is one 3D linear-elastic frame element with 12 DOFs: ux,uy,uz,
// rx,ry,rz at each end node.
//
//                 z (local)
//                 ^
//                 |
//        (0)======+==============(1)---> x (local, axial)
//
// The local x axis points from node 0 to node 1. The remaining axes come
// from a reference vector: global Z in general, global X for near-vertical
// members. Member roll about its own axis is not an input.
type Frame struct {

	// basic data
	Id  int       // element id
	Na  *inp.Node // first node
	Nb  *inp.Node // second node
	Mat *inp.Material
	Sec sec.Props

	// derived geometry
	L float64 // length

	// matrices
	T  *la.Matrix // global-to-local transformation [12][12]
	Kl *la.Matrix // local stiffness
	K  *la.Matrix // global stiffness

	// assembly map: 12 global equation numbers
	Umap []int

	// scratchpad
	ue la.Vector // element displacements (global)
	fe la.Vector // element forces (global)
	fl la.Vector // element forces (local)
}

// Forces holds the internal actions at the first end of an element, in the
// local system: axial N, shears Vy and Vz, torsion T, bending My and Mz
type Forces struct {
	N  float64 `json:"n"`
	Vy float64 `json:"vy"`
	Vz float64 `json:"vz"`
	T  float64 `json:"t"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}

// Stresses holds the element stress summary. Combined is the linear
// interaction axial + bending, kept consistent through the design checks.
type Stresses struct {
	Axial    float64 `json:"axial"`
	Shear    float64 `json:"shear"`
	Bending  float64 `json:"bending"`
	Combined float64 `json:"combined"`
}

// NewFrame builds one frame element: geometry, local stiffness (optionally
// with the Timoshenko shear correction), transformation and global stiffness.
// The assembly map derives from the node positions within the structure.
func NewFrame(id int, na, nb *inp.Node, m *inp.Material, p sec.Props, ia, ib int, includeShear bool) (o *Frame, err error) {

	// basic data
	o = &Frame{Id: id, Na: na, Nb: nb, Mat: m, Sec: p}

	// geometry
	dx := nb.C[0] - na.C[0]
	dy := nb.C[1] - na.C[1]
	dz := nb.C[2] - na.C[2]
	o.L = math.Sqrt(dx*dx + dy*dy + dz*dz)
	if o.L < 1e-10 {
		return nil, chk.Err("element %d: nodes %d and %d are coincident", id, na.Id, nb.Id)
	}

	// assembly map
	o.Umap = make([]int, 12)
	for i := 0; i < 6; i++ {
		o.Umap[i] = ia*6 + i
		o.Umap[6+i] = ib*6 + i
	}

	// matrices and scratchpad
	o.T = la.NewMatrix(12, 12)
	o.Kl = la.NewMatrix(12, 12)
	o.K = la.NewMatrix(12, 12)
	o.ue = la.NewVector(12)
	o.fe = la.NewVector(12)
	o.fl = la.NewVector(12)

	o.transformation(dx, dy, dz)
	o.localStiffness(includeShear)

	// K = trans(T) * Kl * T
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			s := 0.0
			for k := 0; k < 12; k++ {
				for l := 0; l < 12; l++ {
					s += o.T.Get(k, i) * o.Kl.Get(k, l) * o.T.Get(l, j)
				}
			}
			o.K.Set(i, j, s)
		}
	}
	return
}

// transformation fills T with four repeated 3x3 rotation blocks whose rows
// are the local axes in global coordinates
func (o *Frame) transformation(dx, dy, dz float64) {

	// local x: along the member
	x := []float64{dx / o.L, dy / o.L, dz / o.L}

	// reference vector: global Z, or global X for near-vertical members
	ref := []float64{0, 0, 1}
	if math.Abs(x[2]) > 0.999 {
		ref = []float64{1, 0, 0}
	}

	// local y = ref cross x, local z = x cross y
	y := cross(ref, x)
	norm(y)
	z := cross(x, y)

	for k := 0; k < 4; k++ {
		for j := 0; j < 3; j++ {
			o.T.Set(3*k+0, 3*k+j, x[j])
			o.T.Set(3*k+1, 3*k+j, y[j])
			o.T.Set(3*k+2, 3*k+j, z[j])
		}
	}
}

// localStiffness fills Kl: axial, torsion and the two independent bending
// planes, each with its own shear-deformation factor phi
func (o *Frame) localStiffness(includeShear bool) {

	E, G := o.Mat.E, o.Mat.G
	l := o.L
	ll := l * l

	// axial
	ea := E * o.Sec.A / l
	o.Kl.Set(0, 0, ea)
	o.Kl.Set(6, 6, ea)
	o.Kl.Set(0, 6, -ea)
	o.Kl.Set(6, 0, -ea)

	// torsion
	gj := G * o.Sec.J / l
	o.Kl.Set(3, 3, gj)
	o.Kl.Set(9, 9, gj)
	o.Kl.Set(3, 9, -gj)
	o.Kl.Set(9, 3, -gj)

	// bending in the x-y plane: uy(1), rz(5), uy(7), rz(11) with Iz and Ay
	phi := 0.0
	if includeShear && G > 0 && o.Sec.Ay > 0 {
		phi = 12.0 * E * o.Sec.Iz / (G * o.Sec.Ay * ll)
	}
	o.bendingPlane(1, 5, 7, 11, E*o.Sec.Iz, phi, +1)

	// bending in the x-z plane: uz(2), ry(4), uz(8), ry(10) with Iy and Az
	phi = 0.0
	if includeShear && G > 0 && o.Sec.Az > 0 {
		phi = 12.0 * E * o.Sec.Iy / (G * o.Sec.Az * ll)
	}
	o.bendingPlane(2, 4, 8, 10, E*o.Sec.Iy, phi, -1)
}

// bendingPlane fills the symmetric 4x4 beam-bending block for one plane.
// Indices: translation/rotation at node 0 (ta, ra) and node 1 (tb, rb).
// sign flips the translation-rotation couplings between the two planes.
func (o *Frame) bendingPlane(ta, ra, tb, rb int, ei, phi float64, sign float64) {
	l := o.L
	c1 := 12.0 * ei / (l * l * l * (1.0 + phi))
	c2 := sign * 6.0 * ei / (l * l * (1.0 + phi))
	c3 := (4.0 + phi) * ei / (l * (1.0 + phi))
	c4 := (2.0 - phi) * ei / (l * (1.0 + phi))

	o.Kl.Set(ta, ta, c1)
	o.Kl.Set(ta, ra, c2)
	o.Kl.Set(ta, tb, -c1)
	o.Kl.Set(ta, rb, c2)

	o.Kl.Set(ra, ta, c2)
	o.Kl.Set(ra, ra, c3)
	o.Kl.Set(ra, tb, -c2)
	o.Kl.Set(ra, rb, c4)

	o.Kl.Set(tb, ta, -c1)
	o.Kl.Set(tb, ra, -c2)
	o.Kl.Set(tb, tb, c1)
	o.Kl.Set(tb, rb, -c2)

	o.Kl.Set(rb, ta, c2)
	o.Kl.Set(rb, ra, c4)
	o.Kl.Set(rb, tb, -c2)
	o.Kl.Set(rb, rb, c3)
}

// Recover back-computes the internal actions at the first node from the
// global displacement solution: fe = K*ue rotated into the local system
func (o *Frame) Recover(u la.Vector) (f Forces) {
	for i, I := range o.Umap {
		o.ue[i] = u[I]
	}
	la.MatVecMul(o.fe, 1, o.K, o.ue)
	la.MatVecMul(o.fl, 1, o.T, o.fe)
	f.N = o.fl[0]
	f.Vy = o.fl[1]
	f.Vz = o.fl[2]
	f.T = o.fl[3]
	f.My = o.fl[4]
	f.Mz = o.fl[5]
	return
}

// StressesOf converts recovered actions into the stress summary. Shear takes
// the larger of the two shear forces over the gross area; bending takes the
// governing of the two section moduli.
func StressesOf(f Forces, p sec.Props) (s Stresses) {
	s.Axial = math.Abs(f.N) / p.A
	s.Shear = math.Max(math.Abs(f.Vy), math.Abs(f.Vz)) / p.A
	s.Bending = math.Max(math.Abs(f.My)/p.Sy, math.Abs(f.Mz)/p.Sz)
	s.Combined = s.Axial + s.Bending
	return
}

// SelfWeight returns the total gravity force of the element (negative,
// along global z)
func (o *Frame) SelfWeight(gravity float64) float64 {
	return -o.Mat.Rho * o.Sec.A * o.L * gravity
}

// cross computes a x b
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// norm scales v to unit length
func norm(v []float64) {
	s := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	for i := range v {
		v[i] /= s
	}
}
