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

package cpptype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualReflexiveSymmetricTransitive(t *testing.T) {
	a := CppType{IsConst: true, Indirection: PtrPtr, Base: ClassBase{QualifiedName: "A"}}
	b := CppType{IsConst: true, Indirection: PtrPtr, Base: ClassBase{QualifiedName: "A"}}
	c := CppType{IsConst: true, Indirection: PtrPtr, Base: ClassBase{QualifiedName: "A"}}

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
	assert.True(t, Equal(b, c))
	assert.True(t, Equal(a, c))
}

func TestEqualDistinguishesConstAndIndirection(t *testing.T) {
	base := ClassBase{QualifiedName: "A"}
	assert.False(t, Equal(
		CppType{IsConst: true, Base: base},
		CppType{IsConst: false, Base: base},
	))
	assert.False(t, Equal(
		CppType{Indirection: Ptr, Base: base},
		CppType{Indirection: PtrPtr, Base: base},
	))
}

func TestNumericKindBySpellingRoundTrip(t *testing.T) {
	for k := Bool; k <= LongDouble; k++ {
		spelling := k.String()
		got, ok := NumericKindBySpelling(spelling)
		require.True(t, ok, "spelling %q should resolve", spelling)
		assert.Equal(t, k, got)
	}
	_, ok := NumericKindBySpelling("not a real type")
	assert.False(t, ok)
}

func TestContainsTemplateParameter(t *testing.T) {
	tp := CppType{Base: TemplateParameterBase{NestedLevel: 0, Index: 0}}
	bound := CppType{Base: ClassBase{QualifiedName: "V", TemplateArguments: []CppType{BuiltInNumeric(Int)}}}
	unbound := CppType{Base: ClassBase{QualifiedName: "V", TemplateArguments: []CppType{tp}}}

	assert.True(t, ContainsTemplateParameter(tp))
	assert.False(t, ContainsTemplateParameter(bound))
	assert.True(t, ContainsTemplateParameter(unbound))

	fn := CppType{Base: FunctionPointerBase{Return: tp, Arguments: []CppType{BuiltInNumeric(Int)}}}
	assert.True(t, ContainsTemplateParameter(fn))
}

func TestClassOrEnumName(t *testing.T) {
	name, ok := ClassOrEnumName(CppType{Base: ClassBase{QualifiedName: "N::C"}})
	assert.True(t, ok)
	assert.Equal(t, "N::C", name)

	name, ok = ClassOrEnumName(CppType{Base: EnumBase{QualifiedName: "N::E"}})
	assert.True(t, ok)
	assert.Equal(t, "N::E", name)

	_, ok = ClassOrEnumName(Void)
	assert.False(t, ok)
}

func TestMarshalJSONDiscriminatesVariants(t *testing.T) {
	cases := []struct {
		name string
		t    CppType
		want string
	}{
		{"void", Void, `"variant":"void"`},
		{"builtin", BuiltInNumeric(Int), `"variant":"builtin_numeric"`},
		{"specific", CppType{Base: SpecificNumericBase{Name: "int32_t", Bits: 32, Signed: true}}, `"variant":"specific_numeric"`},
		{"ptrsized", CppType{Base: PointerSizedIntegerBase{Name: "qintptr", Signed: true}}, `"variant":"pointer_sized_integer"`},
		{"enum", CppType{Base: EnumBase{QualifiedName: "E"}}, `"variant":"enum"`},
		{"class", CppType{Base: ClassBase{QualifiedName: "C"}}, `"variant":"class"`},
		{"fnptr", CppType{Base: FunctionPointerBase{Return: Void}}, `"variant":"function_pointer"`},
		{"tparam", CppType{Base: TemplateParameterBase{Index: 1}}, `"variant":"template_parameter"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.t)
			require.NoError(t, err)
			assert.Contains(t, string(data), tc.want)
		})
	}
}
