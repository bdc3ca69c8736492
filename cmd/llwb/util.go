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
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/workbench"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// workbenchConfig builds an internal/workbench.Config from the persistent
// --depth/--verbose flags every subcommand inherits from rootCmd.
func workbenchConfig(cmd *cobra.Command) workbench.Config {
	var logger log.FieldLogger

	if GetFlag(cmd, "verbose") {
		l := log.New()
		l.SetLevel(log.DebugLevel)
		logger = l
	}

	return workbench.Config{MaxDepth: GetInt(cmd, "depth"), Logger: logger}
}

// exitOnError prints a user-facing message for the error taxonomy of
// spec.md §7 and picks the matching process exit code: parse errors exit
// non-zero, internal errors exit non-zero and are flagged distinctly, any
// other error (treated as unexpected) also exits non-zero. "Not provable"
// and "depth exceeded" are defined answers, not errors, and never reach
// this function.
func exitOnError(err error) {
	var internal *workbench.InternalError
	if errors.As(err, &internal) {
		fmt.Fprintf(os.Stderr, "internal error: %v\n", err)
		os.Exit(3)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
