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

package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParserConfig describes how the ingestor should filter and invoke the
// front-end parser. IncludeDirs are absolute paths, used both for the `-I`
// flags of the generated translation unit and for inclusion filtering.
type ParserConfig struct {
	IncludeDirs  []string `yaml:"include_dirs"`
	RootHeader   string   `yaml:"root_header"`
	TempFilePath string   `yaml:"temp_file_path"`
	Blacklist    []string `yaml:"blacklist"`
}

// LoadParserConfig reads a ParserConfig from a YAML file. Field names follow
// the snake_case keys above; unknown keys are ignored.
func LoadParserConfig(path string) (*ParserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg ParserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ClangArgs returns the argument list the front end must be invoked with:
// at least `-fPIC -Xclang -detailed-preprocessing-record`, plus an `-I`
// flag per configured include directory.
func (c *ParserConfig) ClangArgs() []string {
	args := []string{"-fPIC", "-Xclang", "-detailed-preprocessing-record"}
	for _, dir := range c.IncludeDirs {
		args = append(args, "-I", dir)
	}
	return args
}

// GeneratedTranslationUnit returns the textual contents of the temporary
// translation unit that should be written to TempFilePath: a single
// #include of the root header.
func (c *ParserConfig) GeneratedTranslationUnit() string {
	var sb strings.Builder
	sb.WriteString("#include <")
	sb.WriteString(c.RootHeader)
	sb.WriteString(">\n")
	return sb.String()
}

// Fingerprint returns a stable hash of the fields that determine ingestion
// output, so a cache can detect whether a prior run is still valid. It is
// not part of the core's parsing contract; it exists only to let a driver
// skip a redundant front-end invocation.
func (c *ParserConfig) Fingerprint() string {
	h := sha256.New()
	for _, dir := range c.IncludeDirs {
		h.Write([]byte(dir))
		h.Write([]byte{0})
	}
	h.Write([]byte(c.RootHeader))
	h.Write([]byte{0})
	for _, b := range c.Blacklist {
		h.Write([]byte(b))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// isBlacklisted reports whether qualifiedName appears in the configured
// blacklist.
func (c *ParserConfig) isBlacklisted(qualifiedName string) bool {
	for _, b := range c.Blacklist {
		if b == qualifiedName {
			return true
		}
	}
	return false
}
