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

// Command cxxmodelctl is a thin operational CLI around the semcore core: it
// validates ParserConfig files and inspects the ingestion cache. It does not
// invoke a C++ front end itself — that remains an external collaborator
// (see SPEC_FULL.md §1).
package main

import "github.com/cxxbind/semcore/cmd/cxxmodelctl/internal/cmd"

func main() {
	cmd.Execute()
}
