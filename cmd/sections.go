// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/strukturalab/gofea/sec"
)

func sectionsCmd() *cobra.Command {
	var d sec.Dims
	cmd := &cobra.Command{
		Use:   "sections <shape>",
		Short: "Print the derived properties of a cross section",
		Long: `Print the derived properties of a cross section. Shapes:
rectangular (-b -H), circular (-d), i-section (--bf --tf --hw --tw),
hollow-rectangular (-b -H [-t]), hollow-circular (-d [-t]).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sec.FromTag(args[0], d, nil).Properties()
			if err != nil {
				return err
			}
			io.Pf("%-22s = %s\n", "shape", args[0])
			io.Pf("%-22s = %g\n", "area", p.A)
			io.Pf("%-22s = %g\n", "Iy", p.Iy)
			io.Pf("%-22s = %g\n", "Iz", p.Iz)
			io.Pf("%-22s = %g\n", "J (torsion)", p.J)
			io.Pf("%-22s = %g\n", "Ay (shear)", p.Ay)
			io.Pf("%-22s = %g\n", "Az (shear)", p.Az)
			io.Pf("%-22s = %g\n", "Sy (modulus)", p.Sy)
			io.Pf("%-22s = %g\n", "Sz (modulus)", p.Sz)
			io.Pf("%-22s = %g\n", "ry (gyration)", p.Ry)
			io.Pf("%-22s = %g\n", "rz (gyration)", p.Rz)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&d.B, "width", "b", 0, "width / outer width")
	cmd.Flags().Float64VarP(&d.H, "height", "H", 0, "height / outer height")
	cmd.Flags().Float64VarP(&d.D, "diameter", "d", 0, "diameter")
	cmd.Flags().Float64VarP(&d.T, "thickness", "t", 0, "wall thickness (default 10% of the governing dimension)")
	cmd.Flags().Float64Var(&d.Bf, "bf", 0, "flange width")
	cmd.Flags().Float64Var(&d.Tf, "tf", 0, "flange thickness")
	cmd.Flags().Float64Var(&d.Hw, "hw", 0, "web height")
	cmd.Flags().Float64Var(&d.Tw, "tw", 0, "web thickness")
	return cmd
}
