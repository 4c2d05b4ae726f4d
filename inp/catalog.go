// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Built-in catalog of common structural materials. Units are SI: Pa for
// moduli, kg/m3 for density. Strengths (fy, fu, fc) are in MPa, the unit the
// design-code thresholds are written in.
//
// Concrete elastic moduli follow Ec = 4700*sqrt(fc') [MPa].
var catalog = []*Material{

	// concrete grades
	{Name: "C20", Class: "concrete", E: 21.019e9, Nu: 0.2, Rho: 2400, Fc: 20},
	{Name: "C25", Class: "concrete", E: 23.500e9, Nu: 0.2, Rho: 2400, Fc: 25},
	{Name: "C30", Class: "concrete", E: 25.743e9, Nu: 0.2, Rho: 2400, Fc: 30},
	{Name: "C35", Class: "concrete", E: 27.806e9, Nu: 0.2, Rho: 2400, Fc: 35},
	{Name: "C40", Class: "concrete", E: 29.725e9, Nu: 0.2, Rho: 2400, Fc: 40},

	// structural steel grades
	{Name: "BJ37", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 240, Fu: 370},
	{Name: "BJ41", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 250, Fu: 410},
	{Name: "BJ50", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 290, Fu: 500},
	{Name: "BJ55", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 410, Fu: 550},
	{Name: "A992", Class: "steel", E: 200e9, Nu: 0.3, Rho: 7850, Fy: 345, Fu: 450},
}

// CatalogMaterial returns a copy of a built-in material by name, with the
// shear modulus derived, or nil when the name is unknown
func CatalogMaterial(name string) *Material {
	for _, m := range catalog {
		if m.Name == name {
			c := *m
			c.Derive()
			return &c
		}
	}
	return nil
}

// CatalogNames lists the built-in material names
func CatalogNames() (names []string) {
	for _, m := range catalog {
		names = append(names, m.Name)
	}
	return
}
