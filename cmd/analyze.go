// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/strukturalab/gofea/ana"
	"github.com/strukturalab/gofea/inp"
)

// analysisFlags collects the option flags shared by analyze and watch
func analysisFlags(cmd *cobra.Command, opts *inp.Options) {
	cmd.Flags().Float64Var(&opts.Tol, "tol", opts.Tol, "solver residual tolerance")
	cmd.Flags().IntVar(&opts.MaxIt, "maxit", opts.MaxIt, "solver iteration bound")
	cmd.Flags().BoolVar(&opts.IncludeShear, "shear", false, "include Timoshenko shear deformation")
	cmd.Flags().BoolVar(&opts.SelfWeight, "selfweight", false, "generate gravity loads from element mass")
	cmd.Flags().StringSliceVar(&opts.RuleSets, "rules", nil, "compliance rule sets to run (default: all)")
}

func analyzeCmd() *cobra.Command {
	opts := inp.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "analyze <model.json>",
		Short: "Run one linear static analysis and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(args[0], opts)
		},
	}
	analysisFlags(cmd, opts)
	return cmd
}

// runAnalysis reads a model, runs the pipeline and prints the summary
func runAnalysis(path string, opts *inp.Options) error {
	s, err := inp.ReadStructure(path)
	if err != nil {
		return err
	}
	res, err := ana.Analyze(s, opts)
	if err != nil {
		return err
	}
	printResult(s, res)
	if res.State == ana.Failed {
		return chk.Err("analysis failed: %s", res.Message)
	}
	return nil
}

func printResult(s *inp.Structure, res *ana.Result) {

	if res.State == ana.Failed {
		io.PfRed("analysis failed: %s\n", res.Message)
		return
	}

	io.Pf("nodes=%d elements=%d dofs=%d height=%g maxspan=%g\n",
		res.Stats.Nnodes, res.Stats.Nelems, res.Stats.Ndof, res.Stats.Height, res.Stats.MaxSpan)
	io.Pf("solver: converged=%v iterations=%d residual=%.3e\n", res.Converged, res.Iterations, res.Residual)
	for _, wmsg := range res.Warnings {
		io.Pfyel("warning: %s\n", wmsg)
	}

	io.Pf("\n%6s%14s%14s%14s\n", "node", "ux", "uy", "uz")
	for _, nv := range res.Displacements {
		io.Pf("%6d%14.6e%14.6e%14.6e\n", nv.Id, nv.V[0], nv.V[1], nv.V[2])
	}

	io.Pf("\n%6s%14s%14s%14s%14s%10s%10s  %s\n", "elem", "N", "Vy", "Vz", "My", "util", "sf", "status")
	for i, ev := range res.Elements {
		r := res.Safety.Ratings[i]
		io.Pf("%6d%14.4e%14.4e%14.4e%14.4e%10.2f%10.2f  %s\n",
			ev.Id, ev.Forces.N, ev.Forces.Vy, ev.Forces.Vz, ev.Forces.My,
			r.Utilization, r.SafetyFactor, r.Status)
	}

	io.Pf("\n")
	if res.Valid {
		io.PfGreen("structure is VALID (all safety factors > 1)\n")
	} else {
		io.PfRed("structure is NOT valid\n")
	}
	for _, rule := range res.Compliance.Rules {
		if rule.Compliant {
			io.PfGreen("%-10s compliant\n", rule.Name)
		} else {
			io.PfRed("%-10s NOT compliant\n", rule.Name)
		}
		for _, v := range rule.Violations {
			io.PfRed("  violation: %s\n", v)
		}
		for _, wmsg := range rule.Warnings {
			io.Pfyel("  warning: %s\n", wmsg)
		}
		for _, req := range rule.Requirements {
			io.Pfyel("  requirement: %s\n", req)
		}
	}
	for _, sug := range res.Safety.Suggestions {
		io.Pforan("suggestion [%s/%s]: %s\n", sug.Kind, sug.Priority, sug.Note)
	}
}
