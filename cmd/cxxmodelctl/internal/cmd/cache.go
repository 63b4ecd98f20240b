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

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cxxbind/semcore/internal/cache"
)

var cacheDBPath string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the ingestion cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the cached run for a config fingerprint",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheStats,
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheDBPath, "db", "cxxmodelctl.db", "path to the ingestion cache database")
	cacheCmd.AddCommand(cacheStatsCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	c, err := cache.Open(cacheDBPath)
	if err != nil {
		return errors.Wrapf(err, "opening cache %q", cacheDBPath)
	}
	defer c.Close()

	run, ok := c.Get(args[0])
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no cached run for this fingerprint")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "root header:    %s\n", run.RootHeader)
	fmt.Fprintf(cmd.OutOrStdout(), "types:          %d\n", run.TypeCount)
	fmt.Fprintf(cmd.OutOrStdout(), "callables:      %d\n", run.CallableCount)
	fmt.Fprintf(cmd.OutOrStdout(), "instantiations: %d\n", run.InstantiationCount)
	fmt.Fprintf(cmd.OutOrStdout(), "updated at:     %s\n", run.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
