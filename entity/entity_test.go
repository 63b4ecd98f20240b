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

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxbind/semcore/cpptype"
)

func TestInsertTypeDuplicatePanics(t *testing.T) {
	s := NewStore()
	s.InsertType(&TypeDeclaration{QualifiedName: "A", Class: &ClassKind{}})
	assert.PanicsWithValue(t, `entity: duplicate type declaration "A"`, func() {
		s.InsertType(&TypeDeclaration{QualifiedName: "A", Class: &ClassKind{}})
	})
}

func TestLookupType(t *testing.T) {
	s := NewStore()
	d := &TypeDeclaration{QualifiedName: "N::C", Class: &ClassKind{}}
	s.InsertType(d)

	got, ok := s.LookupType("N::C")
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = s.LookupType("N::Other")
	assert.False(t, ok)
}

func TestDefaultClassTypeNonTemplate(t *testing.T) {
	d := &TypeDeclaration{QualifiedName: "A", Class: &ClassKind{}}
	ct := DefaultClassType(d)
	base, ok := ct.Base.(cpptype.ClassBase)
	require.True(t, ok)
	assert.Equal(t, "A", base.QualifiedName)
	assert.Nil(t, base.TemplateArguments)
}

func TestDefaultClassTypeTemplate(t *testing.T) {
	d := &TypeDeclaration{
		QualifiedName: "V",
		Class:         &ClassKind{TemplateParameters: []string{"T", "U"}},
	}
	ct := DefaultClassType(d)
	base, ok := ct.Base.(cpptype.ClassBase)
	require.True(t, ok)
	require.Len(t, base.TemplateArguments, 2)
	for i, arg := range base.TemplateArguments {
		tp, ok := arg.Base.(cpptype.TemplateParameterBase)
		require.True(t, ok)
		assert.Equal(t, 0, tp.NestedLevel)
		assert.Equal(t, i, tp.Index)
	}
}

func TestCallableCloneIsIndependent(t *testing.T) {
	origin := Location{File: "a.h", Line: 3}
	c := &Callable{
		Name: "f",
		ClassMembership: &ClassMembership{
			OwningClassType: cpptype.CppType{Base: cpptype.ClassBase{QualifiedName: "A"}},
		},
		Origin:             &origin,
		Arguments:          []Argument{{Name: "x", Type: cpptype.BuiltInNumeric(cpptype.Int)}},
		TemplateParameters: []string{"T"},
	}

	clone := c.Clone()
	clone.Name = "g"
	clone.ClassMembership.Virtual = true
	clone.Origin.Line = 99
	clone.Arguments[0].Name = "y"
	clone.TemplateParameters[0] = "U"

	assert.Equal(t, "f", c.Name)
	assert.False(t, c.ClassMembership.Virtual)
	assert.Equal(t, 3, c.Origin.Line)
	assert.Equal(t, "x", c.Arguments[0].Name)
	assert.Equal(t, "T", c.TemplateParameters[0])
}

func TestClassKindIsTemplate(t *testing.T) {
	assert.False(t, ClassKind{}.IsTemplate())
	assert.True(t, ClassKind{TemplateParameters: []string{}}.IsTemplate())
	assert.True(t, ClassKind{TemplateParameters: []string{"T"}}.IsTemplate())
}

func TestOperatorIsSet(t *testing.T) {
	assert.False(t, Operator{}.IsSet())
	assert.True(t, Operator{Name: "+"}.IsSet())
	assert.True(t, Operator{Conversion: &OperatorConversion{Type: cpptype.Void}}.IsSet())
}

func TestStoreCallablesInsertionOrderAndReplace(t *testing.T) {
	s := NewStore()
	s.InsertCallable(&Callable{Name: "a"})
	s.InsertCallable(&Callable{Name: "b"})
	require.Len(t, s.Callables(), 2)
	assert.Equal(t, "a", s.Callables()[0].Name)

	s.SetCallables([]*Callable{{Name: "only"}})
	require.Len(t, s.Callables(), 1)
	assert.Equal(t, "only", s.Callables()[0].Name)
}
