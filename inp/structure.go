// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the structural model read from a JSON input file
package inp

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/strukturalab/gofea/sec"
)

// DOF keys in per-node order. A node always carries 6 equations:
// global index = nodeIndex*6 + offset.
var (
	UKeys = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
	FKeys = []string{"fx", "fy", "fz", "mx", "my", "mz"}
)

// KeyOffset maps a displacement or force key onto its per-node DOF offset.
// Returns -1 for unknown keys.
func KeyOffset(key string) int {
	for i := 0; i < 6; i++ {
		if key == UKeys[i] || key == FKeys[i] {
			return i
		}
	}
	return -1
}

// Node is one structural joint with 3D coordinates and 6 support flags
// ordered ux,uy,uz,rx,ry,rz (true means constrained)
type Node struct {
	Id  int       `json:"id"`
	C   []float64 `json:"c"`   // coordinates [3]
	Fix [6]bool   `json:"fix"` // support flags
}

// Fixed tells whether any DOF of this node is constrained
func (o *Node) Fixed() bool {
	for _, f := range o.Fix {
		if f {
			return true
		}
	}
	return false
}

// Element is one frame member connecting two nodes. The tag (beam, column,
// brace) is informational and does not change the stiffness formulation.
type Element struct {
	Id    int    `json:"id"`
	Tag   string `json:"tag"`
	Verts [2]int `json:"verts"` // node ids
	Mat   string `json:"mat"`   // material name
	Sec   string `json:"sec"`   // section name
}

// Load is one nodal point load or moment. Key is one of fx,fy,fz,mx,my,mz.
// Loads on the same node and key accumulate. Case tags the load as
// dead/live/wind etc. for the code-compliance checks.
type Load struct {
	Id    int     `json:"id"`
	Node  int     `json:"node"`
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Case  string  `json:"case"`
}

// Material is one linear-elastic material. G is derived from E and Nu when
// not given. Class selects the design factors: "steel" or "concrete".
type Material struct {
	Name  string  `json:"name"`
	Class string  `json:"class"`
	E     float64 `json:"e"`   // Young's modulus
	Nu    float64 `json:"nu"`  // Poisson's ratio
	G     float64 `json:"g"`   // shear modulus (derived when zero)
	Rho   float64 `json:"rho"` // density
	Fy    float64 `json:"fy"`  // steel yield strength
	Fu    float64 `json:"fu"`  // steel ultimate strength
	Fc    float64 `json:"fc"`  // concrete compressive strength
}

// Derive fills the shear modulus from E and Nu when not given
func (o *Material) Derive() {
	if o.G == 0 && o.Nu > 0 {
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	}
}

// Strength returns the design strength for the material class
func (o *Material) Strength() float64 {
	if o.Class == "concrete" {
		return o.Fc
	}
	return o.Fy
}

// Section names a shape with its dimensions. Props carries optional
// caller-supplied overrides used by the generic fallback shape.
type Section struct {
	Name  string     `json:"name"`
	Shape string     `json:"shape"`
	Dims  sec.Dims   `json:"dims"`
	Props *sec.Props `json:"props"`
}

// Properties derives the section properties via the shape library
func (o *Section) Properties() (sec.Props, error) {
	return sec.FromTag(o.Shape, o.Dims, o.Props).Properties()
}

// Structure is the root of one analysis input: nodes, elements, loads and the
// material and section catalogs they reference. It must not be mutated while
// an analysis runs.
type Structure struct {
	Nodes []*Node     `json:"nodes"`
	Elems []*Element  `json:"elems"`
	Loads []*Load     `json:"loads"`
	Mats  []*Material `json:"materials"`
	Secs  []*Section  `json:"sections"`
}

// Nod returns the node with the given id, or nil
func (o *Structure) Nod(id int) *Node {
	for _, n := range o.Nodes {
		if n.Id == id {
			return n
		}
	}
	return nil
}

// NodeIndex returns the position of a node id within Nodes, or -1
func (o *Structure) NodeIndex(id int) int {
	for i, n := range o.Nodes {
		if n.Id == id {
			return i
		}
	}
	return -1
}

// MatByName finds a material by name, falling back to the built-in catalog
func (o *Structure) MatByName(name string) *Material {
	for _, m := range o.Mats {
		if m.Name == name {
			return m
		}
	}
	return CatalogMaterial(name)
}

// SecByName finds a section by name
func (o *Structure) SecByName(name string) *Section {
	for _, s := range o.Secs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Length computes the length of an element
func (o *Structure) Length(e *Element) float64 {
	na, nb := o.Nod(e.Verts[0]), o.Nod(e.Verts[1])
	if na == nil || nb == nil {
		return 0
	}
	dx := nb.C[0] - na.C[0]
	dy := nb.C[1] - na.C[1]
	dz := nb.C[2] - na.C[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Validate checks the model before any matrix work. All failures are
// *ValidationError values.
func (o *Structure) Validate() error {
	if len(o.Nodes) == 0 {
		return Invalidf("structure has no nodes")
	}
	if len(o.Elems) == 0 {
		return Invalidf("structure has no elements")
	}
	seen := make(map[int]bool, len(o.Nodes))
	for _, n := range o.Nodes {
		if seen[n.Id] {
			return Invalidf("duplicate node id %d", n.Id)
		}
		seen[n.Id] = true
		if len(n.C) != 3 {
			return Invalidf("node %d: need 3 coordinates, got %d", n.Id, len(n.C))
		}
	}
	for _, e := range o.Elems {
		for _, v := range e.Verts {
			if !seen[v] {
				return Invalidf("element %d references unknown node %d", e.Id, v)
			}
		}
		if o.Length(e) < 1e-10 {
			return Invalidf("element %d has zero length (coincident nodes %d and %d)", e.Id, e.Verts[0], e.Verts[1])
		}
		m := o.MatByName(e.Mat)
		if m == nil {
			return Invalidf("element %d references unknown material %q", e.Id, e.Mat)
		}
		if m.E <= 0 {
			return Invalidf("material %q: Young's modulus must be positive", m.Name)
		}
		s := o.SecByName(e.Sec)
		if s == nil {
			return Invalidf("element %d references unknown section %q", e.Id, e.Sec)
		}
		if _, err := s.Properties(); err != nil {
			return Invalidf("section %q: %v", s.Name, err)
		}
	}
	for _, l := range o.Loads {
		if !seen[l.Node] {
			return Invalidf("load %d targets unknown node %d", l.Id, l.Node)
		}
		if KeyOffset(l.Key) < 0 {
			return Invalidf("load %d has unknown direction key %q", l.Id, l.Key)
		}
	}
	return nil
}

// Stats holds derived structure-wide quantities used by the compliance rules
// and printed in summaries
type Stats struct {
	Nnodes           int     `json:"nnodes"`
	Nelems           int     `json:"nelems"`
	Ndof             int     `json:"ndof"`
	Xmin, Xmax       float64 `json:"-"`
	Ymin, Ymax       float64 `json:"-"`
	Zmin, Zmax       float64 `json:"-"`
	Height           float64 `json:"height"`  // zmax - zmin
	MaxSpan          float64 `json:"maxspan"` // longest element
	TotalMass        float64 `json:"totalmass"`
	PlanIrregularity float64 `json:"planirregularity"`
}

// Stats computes the structure statistics. Elements whose material or section
// cannot be resolved contribute no mass.
func (o *Structure) Stats() (st Stats) {
	st.Nnodes = len(o.Nodes)
	st.Nelems = len(o.Elems)
	st.Ndof = 6 * len(o.Nodes)
	if len(o.Nodes) == 0 {
		return
	}
	st.Xmin, st.Xmax = o.Nodes[0].C[0], o.Nodes[0].C[0]
	st.Ymin, st.Ymax = o.Nodes[0].C[1], o.Nodes[0].C[1]
	st.Zmin, st.Zmax = o.Nodes[0].C[2], o.Nodes[0].C[2]
	for _, n := range o.Nodes {
		st.Xmin = math.Min(st.Xmin, n.C[0])
		st.Xmax = math.Max(st.Xmax, n.C[0])
		st.Ymin = math.Min(st.Ymin, n.C[1])
		st.Ymax = math.Max(st.Ymax, n.C[1])
		st.Zmin = math.Min(st.Zmin, n.C[2])
		st.Zmax = math.Max(st.Zmax, n.C[2])
	}
	st.Height = st.Zmax - st.Zmin
	for _, e := range o.Elems {
		l := o.Length(e)
		st.MaxSpan = math.Max(st.MaxSpan, l)
		m := o.MatByName(e.Mat)
		s := o.SecByName(e.Sec)
		if m == nil || s == nil {
			continue
		}
		if p, err := s.Properties(); err == nil {
			st.TotalMass += m.Rho * p.A * l
		}
	}
	dx, dy := st.Xmax-st.Xmin, st.Ymax-st.Ymin
	if dmax := math.Max(dx, dy); dmax > 0 {
		st.PlanIrregularity = math.Abs(dx-dy) / dmax
	}
	return
}

// HasClass tells whether any element uses a material of the given class
func (o *Structure) HasClass(class string) bool {
	for _, e := range o.Elems {
		if m := o.MatByName(e.Mat); m != nil && m.Class == class {
			return true
		}
	}
	return false
}

// HasLoadCase tells whether any load carries the given case tag
func (o *Structure) HasLoadCase(c string) bool {
	for _, l := range o.Loads {
		if l.Case == c {
			return true
		}
	}
	return false
}

// ValidationError indicates a malformed structure. It is fatal and raised
// before any assembly work.
type ValidationError struct {
	Msg string
}

// Error returns the message
func (o *ValidationError) Error() string { return o.Msg }

// Invalidf creates a formatted ValidationError
func Invalidf(msg string, prm ...interface{}) *ValidationError {
	return &ValidationError{Msg: io.Sf(msg, prm...)}
}
