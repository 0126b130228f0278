// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fers",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fers v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
