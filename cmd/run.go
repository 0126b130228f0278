// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Jeroen124/FERS-core/slv"
)

var (
	runSolver     string
	runSolverArgs []string
)

var runCmd = &cobra.Command{
	Use:   "run <model.json>",
	Short: "Run the external solver on a model file",
	Long: `Feed a model document to the external solver and print a summary
of the returned results per load case and combination.

Examples:
  fers run hall.json --solver fers-calculations
  fers run hall.json --solver fers-calculations --solver-arg --threads=4`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runSolver, "solver", "", "Solver executable [required]")
	runCmd.Flags().StringArrayVar(&runSolverArgs, "solver-arg", nil, "Extra argument passed to the solver (repeatable)")
	runCmd.MarkFlagRequired("solver")
}

func runRun(cmd *cobra.Command, args []string) {
	gw := &slv.Gateway{Cmd: runSolver, Args: runSolverArgs}
	bundle, err := gw.RunFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(bundle.LoadCases))
	for name := range bundle.LoadCases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cr := bundle.LoadCases[name]
		fmt.Printf("load case %q: %d displacements, %d reactions, %d member results\n",
			name, len(cr.DisplacementNodes), len(cr.ReactionNodes), len(cr.MemberResults))
	}

	names = names[:0]
	for name := range bundle.LoadCombinations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cr := bundle.LoadCombinations[name]
		fmt.Printf("combination %q: %d displacements, %d reactions, %d member results\n",
			name, len(cr.DisplacementNodes), len(cr.ReactionNodes), len(cr.MemberResults))
	}
}
