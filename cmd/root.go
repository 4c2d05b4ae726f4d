// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gofea command line
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofea",
	Short: "3D frame analysis and design-code compliance",
	Long: `gofea runs linear static analysis of 3D frame structures with the
direct stiffness method and checks the results against seismic, load,
concrete and steel design provisions.`,
	SilenceUsage: true,
}

// Execute runs the command line
func Execute() {
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(sectionsCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
