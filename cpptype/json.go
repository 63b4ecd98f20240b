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

import "encoding/json"

// jsonBase is the discriminated-union wire shape for Base. No .proto schema
// accompanies this model and there is no protoc invocation available to this
// build, so the closed sum is hand-rolled over encoding/json rather than
// pulled from a generated serializer; see DESIGN.md.
type jsonBase struct {
	Variant           string    `json:"variant"`
	Kind              string    `json:"kind,omitempty"`
	Name              string    `json:"name,omitempty"`
	Bits              int       `json:"bits,omitempty"`
	Signed            bool      `json:"signed,omitempty"`
	QualifiedName     string    `json:"qualified_name,omitempty"`
	TemplateArguments []CppType `json:"template_arguments,omitempty"`
	Return            *CppType  `json:"return,omitempty"`
	Arguments         []CppType `json:"arguments,omitempty"`
	Variadic          bool      `json:"variadic,omitempty"`
	NestedLevel       int       `json:"nested_level,omitempty"`
	Index             int       `json:"index,omitempty"`
}

type jsonCppType struct {
	IsConst     bool     `json:"is_const"`
	Indirection string   `json:"indirection,omitempty"`
	Base        jsonBase `json:"base"`
}

// MarshalJSON encodes t as a discriminated union keyed by Base's variant.
func (t CppType) MarshalJSON() ([]byte, error) {
	jt := jsonCppType{IsConst: t.IsConst, Indirection: t.Indirection.String()}
	switch b := t.Base.(type) {
	case VoidBase:
		jt.Base = jsonBase{Variant: "void"}
	case BuiltInNumericBase:
		jt.Base = jsonBase{Variant: "builtin_numeric", Kind: b.Kind.String()}
	case SpecificNumericBase:
		jt.Base = jsonBase{Variant: "specific_numeric", Name: b.Name, Bits: b.Bits, Signed: b.Signed}
	case PointerSizedIntegerBase:
		jt.Base = jsonBase{Variant: "pointer_sized_integer", Name: b.Name, Signed: b.Signed}
	case EnumBase:
		jt.Base = jsonBase{Variant: "enum", QualifiedName: b.QualifiedName}
	case ClassBase:
		jt.Base = jsonBase{Variant: "class", QualifiedName: b.QualifiedName, TemplateArguments: b.TemplateArguments}
	case FunctionPointerBase:
		ret := b.Return
		jt.Base = jsonBase{Variant: "function_pointer", Return: &ret, Arguments: b.Arguments, Variadic: b.Variadic}
	case TemplateParameterBase:
		jt.Base = jsonBase{Variant: "template_parameter", NestedLevel: b.NestedLevel, Index: b.Index}
	}
	return json.Marshal(jt)
}
