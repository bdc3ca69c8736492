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
	"os"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/workbench"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start a line-oriented read-eval-print loop (:prove, :parse, :quit).",
	Run: func(cmd *cobra.Command, args []string) {
		workbench.Repl(os.Stdin, os.Stdout, workbenchConfig(cmd))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
