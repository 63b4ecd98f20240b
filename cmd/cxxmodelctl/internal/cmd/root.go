// Copyright (C) 2026 The semcore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd contains the cxxmodelctl command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxxbind/semcore/internal/logx"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cxxmodelctl",
	Short: "Operational tooling around the semcore C++ semantic model core",
	Long: `cxxmodelctl validates ParserConfig files and inspects the ingestion
cache that sits in front of the semantic model core. It does not parse C++
itself; that is left to whatever front end a driver wires in.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit noisy and info diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all diagnostics")
}

// logger returns the logx.Logger implied by the current verbosity flags.
func logger() *logx.Logger {
	switch {
	case quiet:
		return logx.Discard()
	case verbose:
		return logx.New(os.Stderr, logx.Noisy)
	default:
		return logx.Default()
	}
}

// Execute runs the command tree, printing any error and setting a nonzero
// exit code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
