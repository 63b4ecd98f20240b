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

// Package semcore wires the type model, entity store, resolver,
// ingestor and post-processor into a single entry point for driving a
// translation unit through the core.
package semcore

import (
	"github.com/cxxbind/semcore/entity"
	"github.com/cxxbind/semcore/frontend"
	"github.com/cxxbind/semcore/ingest"
	"github.com/cxxbind/semcore/internal/logx"
	"github.com/cxxbind/semcore/postprocess"
)

// Model bundles the entity store with the fully post-processed result
// derived from it. Post-processing mutates the store in place, so Store
// holds the post-processed state, not the state ingestion left it in.
type Model struct {
	Store  *entity.Store
	Result *postprocess.Result
}

// Processor drives a single translation unit through the core: two
// ingestion passes followed by the fixed post-processing pipeline.
type Processor struct {
	Config *ingest.ParserConfig
	Log    *logx.Logger
}

// NewProcessor constructs a Processor. log may be nil, in which case
// diagnostics are discarded.
func NewProcessor(cfg *ingest.ParserConfig, log *logx.Logger) *Processor {
	if log == nil {
		log = logx.Discard()
	}
	return &Processor{Config: cfg, Log: log}
}

// Process ingests tu and runs the post-processing pipeline over the
// resulting entity store, returning the frozen model.
func (p *Processor) Process(tu frontend.Cursor) *Model {
	in := ingest.New(p.Config, p.Log)
	in.Run(tu)
	result := postprocess.Run(in.Store, p.Log)
	return &Model{Store: in.Store, Result: result}
}
