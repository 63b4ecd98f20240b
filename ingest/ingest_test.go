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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxbind/semcore/cpptype"
	"github.com/cxxbind/semcore/frontend"
	"github.com/cxxbind/semcore/frontend/frontendtest"
	"github.com/cxxbind/semcore/internal/logx"
)

func newIngestor() *Ingestor {
	return New(&ParserConfig{}, logx.Discard())
}

func intType() *frontendtest.Type {
	return &frontendtest.Type{TKind: frontend.TKInt, Display: "int"}
}

func voidType() *frontendtest.Type {
	return &frontendtest.Type{TKind: frontend.TKVoid, Display: "void"}
}

// TestIngestSimpleStruct covers scenario 1: struct A { int x; }; -> one
// class type with one field.
func TestIngestSimpleStruct(t *testing.T) {
	size := 4
	field := &frontendtest.Cursor{
		EKind:   frontend.FieldDecl,
		NameVal: "x",
		TypeVal: intType(),
	}
	classA := &frontendtest.Cursor{
		EKind:      frontend.ClassDecl,
		NameVal:    "A",
		FQName:     "A",
		Definition: true,
		Kids:       []frontend.Cursor{field},
		TypeVal:    &frontendtest.Type{Size: size, HasSize: true},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{classA}}

	in := newIngestor()
	in.IngestTypes(tu)

	decl, ok := in.Store.LookupType("A")
	require.True(t, ok)
	require.True(t, decl.IsClass())
	require.Len(t, decl.Class.Fields, 1)
	assert.Equal(t, "x", decl.Class.Fields[0].Name)
	assert.Equal(t, cpptype.BuiltInNumeric(cpptype.Int), decl.Class.Fields[0].Type)
	require.NotNil(t, decl.Class.Size)
	assert.Equal(t, 4, *decl.Class.Size)
}

// TestIngestClassWithBase covers the base-specifier parsing
// half of scenario 2: struct B : A { ... };
func TestIngestClassWithBase(t *testing.T) {
	classA := &frontendtest.Cursor{EKind: frontend.ClassDecl, NameVal: "A", FQName: "A", Definition: true}
	baseSpec := &frontendtest.Cursor{
		EKind: frontend.BaseSpecifier,
		TypeVal: &frontendtest.Type{
			TKind: frontend.TKRecord,
			Decl:  classA,
		},
	}
	classB := &frontendtest.Cursor{
		EKind:      frontend.ClassDecl,
		NameVal:    "B",
		FQName:     "B",
		Definition: true,
		Kids:       []frontend.Cursor{baseSpec},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{classA, classB}}

	in := newIngestor()
	in.IngestTypes(tu)

	declB, ok := in.Store.LookupType("B")
	require.True(t, ok)
	require.Len(t, declB.Class.Bases, 1)
	base, ok := declB.Class.Bases[0].Base.(cpptype.ClassBase)
	require.True(t, ok)
	assert.Equal(t, "A", base.QualifiedName)
}

// TestIngestPrivateNestedClassSkipped covers scenario 6: a private nested
// class is not added to the store.
func TestIngestPrivateNestedClassSkipped(t *testing.T) {
	inner := &frontendtest.Cursor{
		EKind:      frontend.ClassDecl,
		NameVal:    "Inner",
		FQName:     "Outer::Inner",
		Definition: true,
		Access:     frontend.AccessPrivate,
	}
	outer := &frontendtest.Cursor{
		EKind:      frontend.ClassDecl,
		NameVal:    "Outer",
		FQName:     "Outer",
		Definition: true,
		Kids:       []frontend.Cursor{inner},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{outer}}

	in := newIngestor()
	in.IngestTypes(tu)

	_, ok := in.Store.LookupType("Outer::Inner")
	assert.False(t, ok)
	_, ok = in.Store.LookupType("Outer")
	assert.True(t, ok)
}

// TestIngestClassTemplate covers scenario 3's type-pass half: template<class
// T> class V { ... };
func TestIngestClassTemplate(t *testing.T) {
	tparam := &frontendtest.Cursor{EKind: frontend.TemplateTypeParameter, NameVal: "T"}
	classV := &frontendtest.Cursor{
		EKind:      frontend.ClassTemplate,
		NameVal:    "V",
		FQName:     "V",
		Definition: true,
		Kids:       []frontend.Cursor{tparam},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{classV}}

	in := newIngestor()
	in.IngestTypes(tu)

	decl, ok := in.Store.LookupType("V")
	require.True(t, ok)
	assert.True(t, decl.Class.IsTemplate())
	assert.Equal(t, []string{"T"}, decl.Class.TemplateParameters)
}

// TestIngestFreeFunctionInNamespace covers scenario 4: namespace N { void
// g(int32_t); }
func TestIngestFreeFunctionInNamespace(t *testing.T) {
	ns := &frontendtest.Cursor{EKind: frontend.Namespace, NameVal: "N", FQName: "N"}
	arg := intType()
	arg.Display = "int32_t"
	fn := &frontendtest.Cursor{
		EKind:   frontend.FunctionDecl,
		NameVal: "g",
		FQName:  "N::g",
		Parent:  ns,
		TypeVal: &frontendtest.Type{
			TKind:     frontend.TKFunctionPrototype,
			Result:    voidType(),
			Arguments: []frontend.Type{arg},
		},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{fn}}

	in := newIngestor()
	in.IngestCallables(tu)

	require.Len(t, in.Store.Callables(), 1)
	callable := in.Store.Callables()[0]
	assert.Equal(t, "N::g", callable.Name)
	require.Len(t, callable.Arguments, 1)
	want := cpptype.CppType{Base: cpptype.SpecificNumericBase{Name: "int32_t", Bits: 32, Signed: true}}
	assert.Equal(t, want, callable.Arguments[0].Type)
}

// TestIngestBlacklistedEntitySkipped exercises the blacklist filter of §4.4.
func TestIngestBlacklistedEntitySkipped(t *testing.T) {
	classA := &frontendtest.Cursor{EKind: frontend.ClassDecl, NameVal: "A", FQName: "A", Definition: true}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{classA}}

	in := New(&ParserConfig{Blacklist: []string{"A"}}, logx.Discard())
	in.IngestTypes(tu)

	_, ok := in.Store.LookupType("A")
	assert.False(t, ok)
}

// TestIngestMethodOperatorArityMismatchRejected exercises the hard-rejection
// rule: operator/ accepts only arity 2, so a non-static member operator/
// with zero arguments (arity 1) is rejected.
func TestIngestMethodOperatorArityMismatchRejected(t *testing.T) {
	classA := &frontendtest.Cursor{EKind: frontend.ClassDecl, NameVal: "A", FQName: "A", Definition: true}
	method := &frontendtest.Cursor{
		EKind:   frontend.Method,
		NameVal: "operator/",
		FQName:  "A::operator/",
		Parent:  classA,
		TypeVal: &frontendtest.Type{
			TKind:  frontend.TKFunctionPrototype,
			Result: voidType(),
		},
	}
	tu := &frontendtest.Cursor{EKind: frontend.TranslationUnit, Kids: []frontend.Cursor{classA, method}}

	in := newIngestor()
	in.IngestTypes(tu)
	in.IngestCallables(tu)

	assert.Empty(t, in.Store.Callables())
}
