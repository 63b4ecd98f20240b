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

// Package frontend declares the capability surface the core requires from a
// C++ source parser (a libclang equivalent). It names no concrete parser:
// the ingestor and resolver are driven entirely through these interfaces, so
// a test harness can provide a mock implementation without a real C++
// compiler, and a production binary can back it with cgo bindings to
// libclang.
package frontend

// EntityKind enumerates the front-end entity kinds the core inspects.
type EntityKind int

const (
	TranslationUnit EntityKind = iota
	Namespace
	ClassDecl
	ClassTemplate
	StructDecl
	ClassTemplatePartialSpecialization
	EnumDecl
	EnumConstantDecl
	FieldDecl
	BaseSpecifier
	TemplateTypeParameter
	NonTypeTemplateParameter
	ParmDecl
	FunctionDecl
	Method
	Constructor
	Destructor
	ConversionFunction
	FunctionTemplate
	Other
)

func (k EntityKind) String() string {
	names := [...]string{
		"TranslationUnit", "Namespace", "ClassDecl", "ClassTemplate", "StructDecl",
		"ClassTemplatePartialSpecialization", "EnumDecl", "EnumConstantDecl",
		"FieldDecl", "BaseSpecifier", "TemplateTypeParameter",
		"NonTypeTemplateParameter", "ParmDecl", "FunctionDecl", "Method",
		"Constructor", "Destructor", "ConversionFunction", "FunctionTemplate", "Other",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// TypeKind enumerates the front-end type kinds parse_canonical dispatches on.
type TypeKind int

const (
	TKVoid TypeKind = iota
	TKBool
	TKCharS
	TKCharU
	TKSChar
	TKUChar
	TKWChar
	TKChar16
	TKChar32
	TKShort
	TKUShort
	TKInt
	TKUInt
	TKLong
	TKULong
	TKLongLong
	TKULongLong
	TKInt128
	TKUInt128
	TKFloat
	TKDouble
	TKLongDouble
	TKEnum
	TKRecord
	TKFunctionPrototype
	TKPointer
	TKLValueReference
	TKRValueReference
	TKUnexposed
	TKOther
)

// Accessibility mirrors the three C++ access specifiers.
type Accessibility int

const (
	AccessPublic Accessibility = iota
	AccessProtected
	AccessPrivate
)

// Severity mirrors the severity of a front-end diagnostic.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Location is an origin point in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// Diagnostic is one message produced while parsing.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Type is the capability surface of a front-end type.
type Type interface {
	// Kind returns the front-end classification of this type.
	Kind() TypeKind
	// CanonicalType returns the typedef-erased, fully resolved form.
	CanonicalType() Type
	// DisplayName returns the spelled (non-canonical) textual form,
	// including any leading `const` qualifier.
	DisplayName() string
	// IsConstQualified reports whether the type is const-qualified at the
	// outermost level.
	IsConstQualified() bool
	// PointeeType returns the pointee/referent type. Valid only when
	// Kind() is one of Pointer, LValueReference, RValueReference.
	PointeeType() Type
	// ResultType returns the return type. Valid only when Kind() is
	// FunctionPrototype.
	ResultType() Type
	// ArgumentTypes returns the parameter types. Valid only when Kind()
	// is FunctionPrototype.
	ArgumentTypes() []Type
	// TemplateArgumentTypes returns the bound template argument types of
	// a Record type, or nil if none are bound.
	TemplateArgumentTypes() []Type
	// IsVariadic reports whether a FunctionPrototype type is variadic.
	IsVariadic() bool
	// Sizeof returns the byte size of the type and true, or false if the
	// front end could not determine it.
	Sizeof() (int, bool)
	// Declaration returns the entity this type refers to, for Enum and
	// Record kinds and for an Unexposed type that names a class or class
	// template; nil otherwise.
	Declaration() Cursor
}

// Cursor is the capability surface of a front-end entity (a "cursor" in
// libclang terminology).
type Cursor interface {
	Kind() EntityKind
	// Name returns the entity's simple (unqualified) spelling.
	Name() string
	// FullyQualifiedName returns the entity's namespace- and class-qualified
	// name.
	FullyQualifiedName() string
	SemanticParent() Cursor
	Children() []Cursor
	// CanonicalEntity returns the canonical cursor for this entity; an
	// entity that is its own canonical entity is the primary declaration.
	CanonicalEntity() Cursor
	PresumedLocation() Location
	Type() Type
	Accessibility() Accessibility
	IsVirtual() bool
	IsPureVirtual() bool
	IsConst() bool
	IsStatic() bool
	IsDefinition() bool
	// IsTemplateSpecialization reports whether this declaration is a
	// specialization of some other template (get_template() is non-nil
	// in the front end's own terms).
	IsTemplateSpecialization() bool
	// EnumConstantValue returns the signed 64-bit value of an
	// EnumConstantDecl cursor.
	EnumConstantValue() int64
	// HasDefaultValueToken reports whether this ParmDecl's source range
	// tokens contain a `=`, i.e. it carries a default argument.
	HasDefaultValueToken() bool
}

// Diagnostics is implemented by a parsed translation unit to surface
// front-end diagnostics collected during the parse.
type Diagnostics interface {
	Diagnostics() []Diagnostic
}
