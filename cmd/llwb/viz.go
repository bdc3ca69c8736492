// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/surface"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/workbench"
)

var vizCmd = &cobra.Command{
	Use:   "viz [flags] sequent",
	Short: "Render a proved sequent's proof tree as tree, latex or dot.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		format, err := parseVizFormat(GetString(cmd, "format"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		out, ok, err := workbench.Viz(args[0], format, workbenchConfig(cmd))
		if err != nil {
			exitOnError(err)
		}

		if !ok {
			fmt.Println("not provable; nothing to render")
			return
		}

		fmt.Print(out)
	},
}

func parseVizFormat(s string) (surface.VizFormat, error) {
	switch s {
	case "tree", "":
		return surface.VizTree, nil
	case "latex":
		return surface.VizLaTeX, nil
	case "dot":
		return surface.VizDOT, nil
	default:
		return 0, fmt.Errorf("unknown viz format %q (want tree, latex or dot)", s)
	}
}

func init() {
	vizCmd.Flags().String("format", "tree", "rendering format: tree, latex or dot")
	rootCmd.AddCommand(vizCmd)
}
