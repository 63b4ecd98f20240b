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

// Package frontendtest provides a mock implementation of the frontend
// capability set (§6.1), so the resolver and ingestor can be driven by
// tests without a real C++ compiler.
package frontendtest

import "github.com/cxxbind/semcore/frontend"

// Type is a mutable mock of frontend.Type. Zero value is a usable but
// minimal type; set fields directly, then pass by value or pointer as
// frontend.Type requires.
type Type struct {
	TKind        frontend.TypeKind
	Canonical    *Type
	Display      string
	Const        bool
	Pointee      *Type
	Result       *Type
	Arguments    []frontend.Type
	TemplateArgs []frontend.Type
	Variadic     bool
	Size         int
	HasSize      bool
	Decl         *Cursor
}

func (t *Type) Kind() frontend.TypeKind { return t.TKind }

func (t *Type) CanonicalType() frontend.Type {
	if t.Canonical != nil {
		return t.Canonical
	}
	return t
}

func (t *Type) DisplayName() string      { return t.Display }
func (t *Type) IsConstQualified() bool    { return t.Const }
func (t *Type) PointeeType() frontend.Type {
	if t.Pointee == nil {
		return nil
	}
	return t.Pointee
}
func (t *Type) ResultType() frontend.Type {
	if t.Result == nil {
		return nil
	}
	return t.Result
}
func (t *Type) ArgumentTypes() []frontend.Type         { return t.Arguments }
func (t *Type) TemplateArgumentTypes() []frontend.Type { return t.TemplateArgs }
func (t *Type) IsVariadic() bool                       { return t.Variadic }
func (t *Type) Sizeof() (int, bool)                    { return t.Size, t.HasSize }
func (t *Type) Declaration() frontend.Cursor {
	if t.Decl == nil {
		return nil
	}
	return t.Decl
}

// Cursor is a mutable mock of frontend.Cursor.
type Cursor struct {
	EKind        frontend.EntityKind
	NameVal      string
	FQName       string
	Parent       *Cursor
	Kids         []frontend.Cursor
	Canonical    *Cursor
	Location     frontend.Location
	TypeVal      *Type
	Access       frontend.Accessibility
	Virtual      bool
	PureVirtual  bool
	ConstMethod  bool
	StaticMethod bool
	Definition   bool
	Specialized  bool
	EnumValue    int64
	DefaultToken bool
}

func (c *Cursor) Kind() frontend.EntityKind   { return c.EKind }
func (c *Cursor) Name() string                { return c.NameVal }
func (c *Cursor) FullyQualifiedName() string  { return c.FQName }
func (c *Cursor) SemanticParent() frontend.Cursor {
	if c.Parent == nil {
		return nil
	}
	return c.Parent
}
func (c *Cursor) Children() []frontend.Cursor { return c.Kids }
func (c *Cursor) CanonicalEntity() frontend.Cursor {
	if c.Canonical != nil {
		return c.Canonical
	}
	return c
}
func (c *Cursor) PresumedLocation() frontend.Location { return c.Location }
func (c *Cursor) Type() frontend.Type {
	if c.TypeVal == nil {
		return nil
	}
	return c.TypeVal
}
func (c *Cursor) Accessibility() frontend.Accessibility { return c.Access }
func (c *Cursor) IsVirtual() bool                       { return c.Virtual }
func (c *Cursor) IsPureVirtual() bool                   { return c.PureVirtual }
func (c *Cursor) IsConst() bool                         { return c.ConstMethod }
func (c *Cursor) IsStatic() bool                         { return c.StaticMethod }
func (c *Cursor) IsDefinition() bool                     { return c.Definition }
func (c *Cursor) IsTemplateSpecialization() bool         { return c.Specialized }
func (c *Cursor) EnumConstantValue() int64               { return c.EnumValue }
func (c *Cursor) HasDefaultValueToken() bool             { return c.DefaultToken }

// Numeric returns a mock Type of the given scalar kind with its canonical
// display spelling.
func Numeric(kind frontend.TypeKind, display string) *Type {
	return &Type{TKind: kind, Display: display}
}
