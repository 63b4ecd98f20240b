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

// Package entity owns the mutable repository of parsed type declarations
// and callable entities. It is populated exclusively by the ingestor during
// parsing, then mutated only by the post-processor; downstream consumers see
// it only after it has been frozen.
package entity

import (
	"fmt"

	"github.com/cxxbind/semcore/cpptype"
)

// Visibility mirrors the three C++ access specifiers relevant to members.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Location is an origin point in a source file, as reported by the front end.
type Location struct {
	File   string
	Line   int
	Column int
}

// EnumValue is one (name, value) pair of an enum declaration.
type EnumValue struct {
	Name  string
	Value int64
}

// Field is one data member of a class declaration.
type Field struct {
	Name       string
	Type       cpptype.CppType
	Visibility Visibility
}

// EnumKind holds the payload specific to an Enum TypeDeclaration.
type EnumKind struct {
	Values []EnumValue
}

// ClassKind holds the payload specific to a Class TypeDeclaration.
type ClassKind struct {
	// Size is the byte size reported by the front end, or nil if unavailable.
	Size *int
	// Bases is the ordered list of direct base classes. Each entry is
	// expected to carry a ClassBase.
	Bases []cpptype.CppType
	Fields []Field
	// TemplateParameters holds the declared parameter names, and is
	// non-nil iff this declaration is a class template.
	TemplateParameters []string
}

// IsTemplate reports whether the class declaration is a class template.
func (c ClassKind) IsTemplate() bool { return c.TemplateParameters != nil }

// TypeDeclaration bundles a parsed enum or class declaration.
type TypeDeclaration struct {
	QualifiedName string
	IncludeFile   string
	Origin        Location

	Enum  *EnumKind
	Class *ClassKind
}

// IsEnum reports whether the declaration is an enum.
func (d *TypeDeclaration) IsEnum() bool { return d.Enum != nil }

// IsClass reports whether the declaration is a class.
func (d *TypeDeclaration) IsClass() bool { return d.Class != nil }

// DefaultClassType synthesizes the Class CppType identity for a declaration:
// if the declaration is a class template, its template arguments are the
// identity TemplateParameter sequence { nested_level: 0, index: i } for each
// declared parameter, in declaration order; otherwise no arguments are bound.
func DefaultClassType(d *TypeDeclaration) cpptype.CppType {
	base := cpptype.ClassBase{QualifiedName: d.QualifiedName}
	if d.Class != nil && d.Class.IsTemplate() {
		args := make([]cpptype.CppType, len(d.Class.TemplateParameters))
		for i := range d.Class.TemplateParameters {
			args[i] = cpptype.CppType{Base: cpptype.TemplateParameterBase{NestedLevel: 0, Index: i}}
		}
		base.TemplateArguments = args
	}
	return cpptype.CppType{Base: base}
}

// MethodKind distinguishes the three callable roles a member function may
// take within its owning class.
type MethodKind int

const (
	Regular MethodKind = iota
	Constructor
	Destructor
)

// ClassMembership is present on a Callable iff it is a method of a class.
type ClassMembership struct {
	OwningClassType cpptype.CppType // always a ClassBase
	Kind            MethodKind
	Virtual         bool
	PureVirtual     bool
	Const           bool
	Static          bool
	Visibility      Visibility
	// IsSignal is always false today; population is deferred to a later
	// pass that can observe Qt-style signal annotations.
	IsSignal bool
}

// OperatorConversion marks a recognized C++ conversion operator and the type
// it converts to.
type OperatorConversion struct {
	Type cpptype.CppType
}

// Operator is the optional recognized-operator payload of a Callable. Zero
// value means "not an operator".
type Operator struct {
	// Name is the canonical operator name ("+", "==", ...), empty for a
	// non-operator callable.
	Name string
	// Conversion is set instead of Name for `operator Type()` conversion
	// functions.
	Conversion *OperatorConversion
}

// IsSet reports whether this Callable was recognized as an operator.
func (o Operator) IsSet() bool { return o.Name != "" || o.Conversion != nil }

// Argument is one formal parameter of a Callable.
type Argument struct {
	Name            string
	Type            cpptype.CppType
	HasDefaultValue bool
}

// Callable is a function or method entity.
type Callable struct {
	Name            string
	ClassMembership *ClassMembership
	Operator        Operator
	ReturnType      cpptype.CppType
	Arguments       []Argument
	Variadic        bool
	IncludeFile     string
	// Origin is nil for synthesized callables (e.g. implicit destructors,
	// inherited methods, omitted-argument clones).
	Origin *Location
	// TemplateParameters holds declared parameter names for a function
	// template, nil otherwise.
	TemplateParameters []string
}

// Clone returns a deep, independent copy of c. All derived entities produced
// by the post-processor (inherited methods, destructors, omitted-argument
// variants) are clones, never shared references.
func (c *Callable) Clone() *Callable {
	clone := *c
	if c.ClassMembership != nil {
		membership := *c.ClassMembership
		clone.ClassMembership = &membership
	}
	if c.Origin != nil {
		origin := *c.Origin
		clone.Origin = &origin
	}
	clone.Arguments = append([]Argument(nil), c.Arguments...)
	clone.TemplateParameters = append([]string(nil), c.TemplateParameters...)
	return &clone
}

// Store is the mutable repository of TypeDeclaration and Callable values.
// It is the single source of truth that the resolver looks up names
// against, and that the post-processor mutates in place.
type Store struct {
	types     []*TypeDeclaration
	byName    map[string]*TypeDeclaration
	callables []*Callable
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byName: map[string]*TypeDeclaration{}}
}

// InsertType adds a type declaration. A second declaration under an
// already-present qualified name is a programmer/invariant error: it
// signals a bug in the front end or ingestor, not bad input, so it panics.
func (s *Store) InsertType(d *TypeDeclaration) {
	if _, exists := s.byName[d.QualifiedName]; exists {
		panic(fmt.Sprintf("entity: duplicate type declaration %q", d.QualifiedName))
	}
	s.types = append(s.types, d)
	s.byName[d.QualifiedName] = d
}

// LookupType finds a type declaration by qualified name. Linear/map lookup
// is acceptable: the expected population is in the low thousands.
func (s *Store) LookupType(qualifiedName string) (*TypeDeclaration, bool) {
	d, ok := s.byName[qualifiedName]
	return d, ok
}

// Types returns all type declarations in insertion order. The returned
// slice must not be mutated by callers outside the post-processor.
func (s *Store) Types() []*TypeDeclaration { return s.types }

// InsertCallable appends a callable.
func (s *Store) InsertCallable(c *Callable) {
	s.callables = append(s.callables, c)
}

// Callables returns all callables in insertion order.
func (s *Store) Callables() []*Callable { return s.callables }

// SetCallables replaces the callable list wholesale; used by post-processor
// passes that filter or extend the set (e.g. the integrity check removing
// entries, or the omitted-argument pass appending clones).
func (s *Store) SetCallables(cs []*Callable) { s.callables = cs }
