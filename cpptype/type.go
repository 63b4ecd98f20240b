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

// Package cpptype implements the closed algebra of C++ types used throughout
// the model: a single canonical representation that the type resolver
// produces regardless of which front-end path (canonical clang type tree or
// unexposed textual form) discovered the type.
package cpptype

import (
	"fmt"
	"strings"
)

// Indirection describes the pointer/reference nesting applied to a Base.
// Levels beyond PtrPtr/PtrRef are not representable; callers must reject
// them before constructing a CppType.
type Indirection int

const (
	// None is a value type with no pointer or reference wrapping.
	None Indirection = iota
	// Ptr is a single level of pointer indirection.
	Ptr
	// Ref is a single level of reference indirection. R-value references
	// collapse to this level; the model does not distinguish them.
	Ref
	// PtrPtr is a pointer to a pointer.
	PtrPtr
	// PtrRef is a reference to a pointer.
	PtrRef
)

func (i Indirection) String() string {
	switch i {
	case None:
		return ""
	case Ptr:
		return "*"
	case Ref:
		return "&"
	case PtrPtr:
		return "**"
	case PtrRef:
		return "*&"
	default:
		return fmt.Sprintf("indirection(%d)", int(i))
	}
}

// NumericKind enumerates the built-in C++ numeric types.
type NumericKind int

const (
	Bool NumericKind = iota
	Char
	SChar
	UChar
	WChar
	Char16
	Char32
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Int128
	UInt128
	Float
	Double
	LongDouble
)

var numericNames = map[NumericKind]string{
	Bool:       "bool",
	Char:       "char",
	SChar:      "signed char",
	UChar:      "unsigned char",
	WChar:      "wchar_t",
	Char16:     "char16_t",
	Char32:     "char32_t",
	Short:      "short",
	UShort:     "unsigned short",
	Int:        "int",
	UInt:       "unsigned int",
	Long:       "long",
	ULong:      "unsigned long",
	LongLong:   "long long",
	ULongLong:  "unsigned long long",
	Int128:     "__int128",
	UInt128:    "unsigned __int128",
	Float:      "float",
	Double:     "double",
	LongDouble: "long double",
}

// String returns the canonical C++ spelling of the numeric kind.
func (k NumericKind) String() string {
	if s, ok := numericNames[k]; ok {
		return s
	}
	return fmt.Sprintf("numeric(%d)", int(k))
}

// NumericKindBySpelling looks up a NumericKind by its canonical spelling,
// e.g. the display name of a front-end scalar type. Used by unexposed
// parsing, which sees only display text.
func NumericKindBySpelling(spelling string) (NumericKind, bool) {
	for k, s := range numericNames {
		if s == spelling {
			return k, true
		}
	}
	return 0, false
}

// Base is the closed sum of type variants a CppType can wrap. Its only
// methods are unexported: the isBase marker and key, which writes the
// canonical encoding used by Key and Equal. Other traversal code switches
// on the concrete type.
type Base interface {
	isBase()
	key(sb *strings.Builder)
}

// VoidBase is the `void` type.
type VoidBase struct{}

func (VoidBase) isBase() {}
func (VoidBase) key(sb *strings.Builder) { sb.WriteString("void") }

// BuiltInNumericBase is one of the fixed built-in numeric kinds.
type BuiltInNumericBase struct {
	Kind NumericKind
}

func (BuiltInNumericBase) isBase() {}
func (b BuiltInNumericBase) key(sb *strings.Builder) {
	sb.WriteString("num:")
	sb.WriteString(b.Kind.String())
}

// SpecificNumericBase is a typedef whose width is contractually fixed, e.g.
// int32_t or qint64.
type SpecificNumericBase struct {
	Name   string
	Bits   int
	Signed bool
}

func (SpecificNumericBase) isBase() {}
func (b SpecificNumericBase) key(sb *strings.Builder) {
	fmt.Fprintf(sb, "fixed:%s:%d:%v", b.Name, b.Bits, b.Signed)
}

// PointerSizedIntegerBase is a pointer-width integer typedef (qintptr,
// qptrdiff, and similar).
type PointerSizedIntegerBase struct {
	Name   string
	Signed bool
}

func (PointerSizedIntegerBase) isBase() {}
func (b PointerSizedIntegerBase) key(sb *strings.Builder) {
	fmt.Fprintf(sb, "ptrsize:%s:%v", b.Name, b.Signed)
}

// EnumBase refers to an enum declaration by its qualified name.
type EnumBase struct {
	QualifiedName string
}

func (EnumBase) isBase() {}
func (b EnumBase) key(sb *strings.Builder) {
	sb.WriteString("enum:")
	sb.WriteString(b.QualifiedName)
}

// ClassBase refers to a class/struct declaration by its qualified name, with
// an optional ordered list of template arguments. A nil TemplateArguments
// means the class is not a template (or the reference does not bind
// arguments); a non-nil (possibly later found empty, though C++ templates
// always bind at least one argument in this model) slice means the reference
// carries bound arguments.
type ClassBase struct {
	QualifiedName     string
	TemplateArguments []CppType
}

func (ClassBase) isBase() {}
func (b ClassBase) key(sb *strings.Builder) {
	sb.WriteString("class:")
	sb.WriteString(b.QualifiedName)
	if b.TemplateArguments != nil {
		sb.WriteByte('<')
		for i, a := range b.TemplateArguments {
			if i > 0 {
				sb.WriteByte(',')
			}
			a.key(sb)
		}
		sb.WriteByte('>')
	}
}

// FunctionPointerBase is a `ReturnType (*)(ArgTypes...)` type.
type FunctionPointerBase struct {
	Return    CppType
	Arguments []CppType
	Variadic  bool
}

func (FunctionPointerBase) isBase() {}
func (b FunctionPointerBase) key(sb *strings.Builder) {
	sb.WriteString("fnptr:(")
	b.Return.key(sb)
	sb.WriteString(")(")
	for i, a := range b.Arguments {
		if i > 0 {
			sb.WriteByte(',')
		}
		a.key(sb)
	}
	if b.Variadic {
		sb.WriteString(",...")
	}
	sb.WriteByte(')')
}

// TemplateParameterBase is an unbound reference to a template parameter.
// NestedLevel 0 is the innermost (function template) list; 1 is the
// enclosing class template's list. Index is 0-based within that list.
type TemplateParameterBase struct {
	NestedLevel int
	Index       int
}

func (TemplateParameterBase) isBase() {}
func (b TemplateParameterBase) key(sb *strings.Builder) {
	fmt.Fprintf(sb, "tparam:%d:%d", b.NestedLevel, b.Index)
}

// CppType is the (is_const, indirection, base) triple that is the sole unit
// of type identity in the model. Two CppType values are equal iff every
// field compares equal, recursively through Base.
type CppType struct {
	IsConst     bool
	Indirection Indirection
	Base        Base
}

// Void is the canonical `void` CppType value.
var Void = CppType{Base: VoidBase{}}

// BuiltInNumeric constructs a non-const, non-indirected built-in numeric
// CppType of the given kind.
func BuiltInNumeric(kind NumericKind) CppType {
	return CppType{Base: BuiltInNumericBase{Kind: kind}}
}

// IsTemplateParameter reports whether base is a TemplateParameterBase.
func IsTemplateParameter(base Base) bool {
	_, ok := base.(TemplateParameterBase)
	return ok
}

// Key returns a canonical string encoding of t suitable for use as a map key
// or set element; two CppType values produce the same Key iff Equal(a, b).
func (t CppType) Key() string {
	var sb strings.Builder
	t.key(&sb)
	return sb.String()
}

func (t CppType) key(sb *strings.Builder) {
	if t.IsConst {
		sb.WriteString("const ")
	}
	t.Base.key(sb)
	sb.WriteString(t.Indirection.String())
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b CppType) bool {
	return a.Key() == b.Key()
}

// ContainsTemplateParameter reports whether t or any type nested within it
// (template arguments, function-pointer signature) refers to an unbound
// template parameter. Used by the template-instantiation pass to find
// fully-bound argument tuples.
func ContainsTemplateParameter(t CppType) bool {
	switch b := t.Base.(type) {
	case TemplateParameterBase:
		return true
	case ClassBase:
		for _, a := range b.TemplateArguments {
			if ContainsTemplateParameter(a) {
				return true
			}
		}
		return false
	case FunctionPointerBase:
		if ContainsTemplateParameter(b.Return) {
			return true
		}
		for _, a := range b.Arguments {
			if ContainsTemplateParameter(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ClassOrEnumName returns the qualified name and ok=true if t's base is a
// Class or Enum reference.
func ClassOrEnumName(t CppType) (name string, ok bool) {
	switch b := t.Base.(type) {
	case ClassBase:
		return b.QualifiedName, true
	case EnumBase:
		return b.QualifiedName, true
	default:
		return "", false
	}
}
