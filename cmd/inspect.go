// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Jeroen124/FERS-core/ids"
	"github.com/Jeroen124/FERS-core/mdl"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model.json>",
	Short: "Decode a model file and print its contents",
	Long: `Decode a model document and print entity counts, the bounding
box of the structure, and the load cases and combinations it defines.

Examples:
  fers inspect hall.json`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) {
	reg := ids.New()
	model, err := mdl.ReadModel(reg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "nodes\t%d\n", model.NumNodes())
	fmt.Fprintf(w, "members\t%d\n", model.NumMembers())
	fmt.Fprintf(w, "member sets\t%d\n", len(model.MemberSets))
	fmt.Fprintf(w, "materials\t%d\n", len(model.UniqueMaterials()))
	fmt.Fprintf(w, "sections\t%d\n", len(model.UniqueSections()))
	fmt.Fprintf(w, "supports\t%d\n", len(model.UniqueNodalSupports()))
	fmt.Fprintf(w, "hinges\t%d\n", len(model.UniqueMemberHinges()))
	fmt.Fprintf(w, "load cases\t%d\n", len(model.LoadCases))
	fmt.Fprintf(w, "combinations\t%d\n", len(model.LoadCombinations))
	fmt.Fprintf(w, "imperfection cases\t%d\n", len(model.ImperfectionCases))
	w.Flush()

	if min, max, ok := model.Bounds(); ok {
		fmt.Printf("bounds min (%g, %g, %g) max (%g, %g, %g)\n",
			min[0], min[1], min[2], max[0], max[1], max[2])
	}

	for _, lc := range model.LoadCases {
		fmt.Printf("load case %d %q: %d nodal, %d moments, %d distributed\n",
			lc.Id, lc.Name, len(lc.NodalLoads), len(lc.NodalMoments), len(lc.DistributedLoads))
	}
	for _, combo := range model.LoadCombinations {
		fmt.Printf("combination %d %q: %d cases\n", combo.Id, combo.Name, len(combo.Factors))
	}
}
