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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cxxbind/semcore/ingest"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a ParserConfig's include dirs and root header resolve on disk",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "", "path to a ParserConfig YAML file")
	validateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger()

	cfg, err := ingest.LoadParserConfig(validateConfigPath)
	if err != nil {
		return errors.Wrapf(err, "loading config %q", validateConfigPath)
	}

	ok := true
	for _, dir := range cfg.IncludeDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Warning("include dir %q does not exist or is not a directory", dir)
			ok = false
			continue
		}
		log.Info("include dir %q OK", dir)
	}

	found := false
	for _, dir := range cfg.IncludeDirs {
		if _, err := os.Stat(filepath.Join(dir, cfg.RootHeader)); err == nil {
			found = true
			break
		}
	}
	if !found {
		log.Warning("root header %q not found under any include dir", cfg.RootHeader)
		ok = false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", cfg.Fingerprint())
	if !ok {
		return errors.New("config validation failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "config OK")
	return nil
}
