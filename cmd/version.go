// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the release tag, overridable at link time
var Version = "1.0.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gofea version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			io.Pf("gofea %s\n", Version)
		},
	}
}
