// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the fers command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fers",
	Short: "Structural frame model builder and solver gateway",
	Long: `fers - Finite Element Results of Structures

A tool for working with structural frame model documents:
  - inspect a model file (entity counts, bounds, load cases)
  - run the external solver on a model file and summarize the results

Model documents are JSON files holding nodes, members, sections,
materials, supports, hinges, loads, combinations and imperfections.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
