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

// Package resolver converts front-end type representations (canonical
// clang-style types and unexposed textual forms) into cpptype.CppType
// values, resolving names and template parameters against an entity.Store
// and the current parse context.
package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cxxbind/semcore/cpptype"
	"github.com/cxxbind/semcore/entity"
	"github.com/cxxbind/semcore/frontend"
)

// Context carries the template parameter names in scope while parsing a
// type that appears inside a particular class and/or method. Passed
// explicitly through recursion; the resolver holds no ambient state.
type Context struct {
	// ClassTemplateParams is non-nil iff the type is being parsed inside a
	// class template.
	ClassTemplateParams []string
	// MethodTemplateParams is non-nil iff the type is being parsed inside
	// a function template.
	MethodTemplateParams []string
}

func (c Context) methodHasTemplate() bool { return c.MethodTemplateParams != nil }

// Resolver resolves front-end types against an entity store.
type Resolver struct {
	store *entity.Store
}

// New returns a Resolver that looks up names against store.
func New(store *entity.Store) *Resolver {
	return &Resolver{store: store}
}

var fixedWidthTypedefs = map[string]cpptype.SpecificNumericBase{
	"int8_t":   {Name: "int8_t", Bits: 8, Signed: true},
	"uint8_t":  {Name: "uint8_t", Bits: 8, Signed: false},
	"int16_t":  {Name: "int16_t", Bits: 16, Signed: true},
	"uint16_t": {Name: "uint16_t", Bits: 16, Signed: false},
	"int32_t":  {Name: "int32_t", Bits: 32, Signed: true},
	"uint32_t": {Name: "uint32_t", Bits: 32, Signed: false},
	"int64_t":  {Name: "int64_t", Bits: 64, Signed: true},
	"uint64_t": {Name: "uint64_t", Bits: 64, Signed: false},

	"qint8":      {Name: "qint8", Bits: 8, Signed: true},
	"quint8":     {Name: "quint8", Bits: 8, Signed: false},
	"qint16":     {Name: "qint16", Bits: 16, Signed: true},
	"quint16":    {Name: "quint16", Bits: 16, Signed: false},
	"qint32":     {Name: "qint32", Bits: 32, Signed: true},
	"quint32":    {Name: "quint32", Bits: 32, Signed: false},
	"qint64":     {Name: "qint64", Bits: 64, Signed: true},
	"quint64":    {Name: "quint64", Bits: 64, Signed: false},
	"qlonglong":  {Name: "qlonglong", Bits: 64, Signed: true},
	"qulonglong": {Name: "qulonglong", Bits: 64, Signed: false},
}

var pointerSizedTypedefs = map[string]cpptype.PointerSizedIntegerBase{
	"qintptr":                {Name: "qintptr", Signed: true},
	"quintptr":               {Name: "quintptr", Signed: false},
	"qptrdiff":               {Name: "qptrdiff", Signed: true},
	"QList_difference_type":  {Name: "QList_difference_type", Signed: true},
}

// stripConstPrefix removes a leading "const " prefix, matching the 6-char
// literal check the source performs. Returns the remaining text and whether
// a prefix was stripped.
func stripConstPrefix(text string) (string, bool) {
	const prefix = "const "
	if strings.HasPrefix(text, prefix) {
		return text[len(prefix):], true
	}
	return text, false
}

// displayNameSansConst returns a type's display name with any leading
// `const ` prefix stripped, for named-typedef refinement matching.
func displayNameSansConst(t frontend.Type) string {
	name, _ := stripConstPrefix(t.DisplayName())
	return strings.TrimSpace(name)
}

// Parse is the public entry point with no class/method template context. See
// ParseWithContext.
func (r *Resolver) Parse(t frontend.Type) (cpptype.CppType, error) {
	return r.ParseWithContext(t, Context{})
}

// ParseWithContext is the public entry point: it parses the canonical form
// of type, then applies the named-typedef refinement using type's own
// (non-canonical) display name. Canonical parsing erases typedefs, so
// width-bearing aliases must be recovered from the spelled name. ctx carries
// the template parameter names in scope when type appears inside a class
// and/or method template.
func (r *Resolver) ParseWithContext(t frontend.Type, ctx Context) (cpptype.CppType, error) {
	canon, err := r.parseCanonicalCtx(t.CanonicalType(), ctx)
	if err != nil {
		return cpptype.CppType{}, err
	}
	return r.refineNamedTypedef(canon, displayNameSansConst(t)), nil
}

// refineNamedTypedef replaces a bare, non-indirected BuiltInNumeric base with
// a SpecificNumeric or PointerSizedInteger base when name matches a known
// fixed-width typedef spelling.
func (r *Resolver) refineNamedTypedef(t cpptype.CppType, name string) cpptype.CppType {
	if t.Indirection != cpptype.None {
		return t
	}
	if _, ok := t.Base.(cpptype.BuiltInNumericBase); !ok {
		return t
	}
	if fixed, ok := fixedWidthTypedefs[name]; ok {
		t.Base = fixed
		return t
	}
	if ptrSized, ok := pointerSizedTypedefs[name]; ok {
		t.Base = ptrSized
		return t
	}
	return t
}

// liftIndirection applies the outer pointer/reference kind on top of a
// parsed pointee, per the table in §4.3.1. isFunctionPointerPointee
// suppresses the lift for pointer-to-function, since function pointers are
// self-indirecting.
func liftIndirection(pointee cpptype.Indirection, outer frontend.TypeKind, isFunctionPointerPointee bool) (cpptype.Indirection, error) {
	switch outer {
	case frontend.TKPointer:
		switch pointee {
		case cpptype.None:
			if isFunctionPointerPointee {
				return cpptype.None, nil
			}
			return cpptype.Ptr, nil
		case cpptype.Ptr:
			return cpptype.PtrPtr, nil
		default:
			return 0, fmt.Errorf("Unsupported level of indirection")
		}
	case frontend.TKLValueReference:
		switch pointee {
		case cpptype.None:
			return cpptype.Ref, nil
		case cpptype.Ptr:
			return cpptype.PtrRef, nil
		default:
			return 0, fmt.Errorf("Unsupported level of indirection")
		}
	case frontend.TKRValueReference:
		// R-value references collapse to Ref.
		switch pointee {
		case cpptype.None:
			return cpptype.Ref, nil
		default:
			return 0, fmt.Errorf("Unsupported level of indirection")
		}
	default:
		return 0, fmt.Errorf("Unsupported level of indirection")
	}
}

// scalarKinds maps the front-end scalar TypeKinds to NumericKind, with
// CharS and CharU both mapping to Char.
var scalarKinds = map[frontend.TypeKind]cpptype.NumericKind{
	frontend.TKBool:       cpptype.Bool,
	frontend.TKCharS:      cpptype.Char,
	frontend.TKCharU:      cpptype.Char,
	frontend.TKSChar:      cpptype.SChar,
	frontend.TKUChar:      cpptype.UChar,
	frontend.TKWChar:      cpptype.WChar,
	frontend.TKChar16:     cpptype.Char16,
	frontend.TKChar32:     cpptype.Char32,
	frontend.TKShort:      cpptype.Short,
	frontend.TKUShort:     cpptype.UShort,
	frontend.TKInt:        cpptype.Int,
	frontend.TKUInt:       cpptype.UInt,
	frontend.TKLong:       cpptype.Long,
	frontend.TKULong:      cpptype.ULong,
	frontend.TKLongLong:   cpptype.LongLong,
	frontend.TKULongLong:  cpptype.ULongLong,
	frontend.TKInt128:     cpptype.Int128,
	frontend.TKUInt128:    cpptype.UInt128,
	frontend.TKFloat:      cpptype.Float,
	frontend.TKDouble:     cpptype.Double,
	frontend.TKLongDouble: cpptype.LongDouble,
}

// parseCanonicalCtx implements §4.3.1: front-end canonical type -> CppType.
func (r *Resolver) parseCanonicalCtx(t frontend.Type, ctx Context) (cpptype.CppType, error) {
	switch t.Kind() {
	case frontend.TKVoid:
		return cpptype.Void, nil

	case frontend.TKEnum:
		decl := t.Declaration()
		return cpptype.CppType{Base: cpptype.EnumBase{QualifiedName: decl.FullyQualifiedName()}}, nil

	case frontend.TKRecord:
		decl := t.Declaration()
		if decl.Accessibility() == frontend.AccessPrivate {
			return cpptype.CppType{}, fmt.Errorf("Type uses private class")
		}
		base := cpptype.ClassBase{QualifiedName: decl.FullyQualifiedName()}
		if targs := t.TemplateArgumentTypes(); targs != nil {
			args := make([]cpptype.CppType, len(targs))
			for i, a := range targs {
				parsed, err := r.parseCanonicalCtx(a, ctx)
				if err != nil {
					return cpptype.CppType{}, err
				}
				args[i] = parsed
			}
			base.TemplateArguments = args
		}
		return cpptype.CppType{Base: base}, nil

	case frontend.TKFunctionPrototype:
		ret, err := r.parseCanonicalCtx(t.ResultType(), ctx)
		if err != nil {
			return cpptype.CppType{}, err
		}
		argTypes := t.ArgumentTypes()
		args := make([]cpptype.CppType, len(argTypes))
		for i, a := range argTypes {
			parsed, err := r.parseCanonicalCtx(a, ctx)
			if err != nil {
				return cpptype.CppType{}, err
			}
			args[i] = parsed
		}
		return cpptype.CppType{Base: cpptype.FunctionPointerBase{
			Return:    ret,
			Arguments: args,
			Variadic:  t.IsVariadic(),
		}}, nil

	case frontend.TKPointer, frontend.TKLValueReference, frontend.TKRValueReference:
		pointee, err := r.parseCanonicalCtx(t.PointeeType(), ctx)
		if err != nil {
			return cpptype.CppType{}, err
		}
		_, isFnPtr := pointee.Base.(cpptype.FunctionPointerBase)
		indirection, err := liftIndirection(pointee.Indirection, t.Kind(), isFnPtr)
		if err != nil {
			return cpptype.CppType{}, err
		}
		result := pointee
		result.Indirection = indirection
		result.IsConst = t.PointeeType().IsConstQualified()
		return result, nil

	case frontend.TKUnexposed:
		return r.parseUnexposedType(t, "", ctx)

	default:
		if kind, ok := scalarKinds[t.Kind()]; ok {
			return cpptype.BuiltInNumeric(kind), nil
		}
		return cpptype.CppType{}, fmt.Errorf("Unsupported kind of type")
	}
}

var (
	reTemplateArgs     = regexp.MustCompile(`^([\w:]+)<(.+)>$`)
	reTemplateParamRef = regexp.MustCompile(`^type-parameter-(\d+)-(\d+)$`)
)

// splitTopLevelCommas performs the source's naive split: it does not track
// bracket nesting, so nested generics are only accepted when the text
// happens to permit it. This limitation is carried forward deliberately;
// see the design notes for the alternative considered.
func splitTopLevelCommas(s string) []string {
	return strings.Split(s, ",")
}

// ParseUnexposed handles a front-end type libclang could not expose
// structurally, consulting its display text. ctx carries the class/method
// template parameter names in scope, if any.
func (r *Resolver) ParseUnexposed(t frontend.Type, text string, ctx Context) (cpptype.CppType, error) {
	return r.parseUnexposedType(t, text, ctx)
}

func (r *Resolver) parseUnexposedType(t frontend.Type, text string, ctx Context) (cpptype.CppType, error) {
	if text == "" && t != nil {
		text = t.DisplayName()
	}

	isConst := false
	if stripped, ok := stripConstPrefix(text); ok {
		isConst = true
		text = stripped
		if t != nil && t.IsConstQualified() != isConst {
			return cpptype.CppType{}, fmt.Errorf("unexposed const qualification disagrees with front-end type")
		}
	}
	text = strings.TrimSpace(text)

	// Step 2: class/struct/class-template with bound template arguments.
	if t != nil {
		if decl := t.Declaration(); decl != nil {
			switch decl.Kind() {
			case frontend.ClassDecl, frontend.StructDecl, frontend.ClassTemplate:
				if m := reTemplateArgs.FindStringSubmatch(text); m != nil {
					parsed, err := r.parseTemplateArgList(m[1], m[2], ctx)
					if err != nil {
						return cpptype.CppType{}, err
					}
					parsed.IsConst = isConst
					return parsed, nil
				}
			}
		}
	}

	// Step 3: type-parameter-N-M spelling.
	if m := reTemplateParamRef.FindStringSubmatch(text); m != nil {
		level, _ := strconv.Atoi(m[1])
		index, _ := strconv.Atoi(m[2])
		return cpptype.CppType{IsConst: isConst, Base: cpptype.TemplateParameterBase{NestedLevel: level, Index: index}}, nil
	}

	// Step 4: method template parameter name.
	if ctx.MethodTemplateParams != nil {
		for i, name := range ctx.MethodTemplateParams {
			if name == text {
				return cpptype.CppType{IsConst: isConst, Base: cpptype.TemplateParameterBase{NestedLevel: 0, Index: i}}, nil
			}
		}
	}

	// Step 5: class template parameter name.
	if ctx.ClassTemplateParams != nil {
		for i, name := range ctx.ClassTemplateParams {
			if name == text {
				level := 0
				if ctx.methodHasTemplate() {
					level = 1
				}
				return cpptype.CppType{IsConst: isConst, Base: cpptype.TemplateParameterBase{NestedLevel: level, Index: i}}, nil
			}
		}
	}

	// Step 6: trailing pointer/reference markers, `*` checked before `&`.
	if strings.HasSuffix(text, " *") {
		rest := strings.TrimSpace(strings.TrimSuffix(text, " *"))
		pointee, err := r.parseUnexposedType(nil, rest, ctx)
		if err != nil {
			return cpptype.CppType{}, err
		}
		indirection, err := liftIndirectionFromUnexposed(pointee.Indirection, cpptype.Ptr)
		if err != nil {
			return cpptype.CppType{}, err
		}
		pointee.Indirection = indirection
		pointee.IsConst = isConst
		return pointee, nil
	}
	if strings.HasSuffix(text, " &") {
		rest := strings.TrimSpace(strings.TrimSuffix(text, " &"))
		pointee, err := r.parseUnexposedType(nil, rest, ctx)
		if err != nil {
			return cpptype.CppType{}, err
		}
		indirection, err := liftIndirectionFromUnexposed(pointee.Indirection, cpptype.Ref)
		if err != nil {
			return cpptype.CppType{}, err
		}
		pointee.Indirection = indirection
		pointee.IsConst = isConst
		return pointee, nil
	}

	// Step 7: void.
	if text == "void" {
		return cpptype.CppType{IsConst: isConst, Base: cpptype.VoidBase{}}, nil
	}

	// Step 8: built-in numeric by spelling.
	if kind, ok := cpptype.NumericKindBySpelling(text); ok {
		return cpptype.CppType{IsConst: isConst, Base: cpptype.BuiltInNumericBase{Kind: kind}}, nil
	}

	// Step 10: known declaration in the entity store.
	if decl, ok := r.store.LookupType(text); ok {
		if decl.IsEnum() {
			return cpptype.CppType{IsConst: isConst, Base: cpptype.EnumBase{QualifiedName: text}}, nil
		}
		return cpptype.CppType{IsConst: isConst, Base: cpptype.ClassBase{QualifiedName: text}}, nil
	}

	// Step 11: template-instantiation spelling of a known class template.
	if m := reTemplateArgs.FindStringSubmatch(text); m != nil {
		if _, ok := r.store.LookupType(m[1]); ok {
			parsed, err := r.parseTemplateArgList(m[1], m[2], ctx)
			if err != nil {
				return cpptype.CppType{}, err
			}
			parsed.IsConst = isConst
			return parsed, nil
		}
	}

	return cpptype.CppType{}, fmt.Errorf("Unrecognized unexposed type")
}

func (r *Resolver) parseTemplateArgList(className, argsText string, ctx Context) (cpptype.CppType, error) {
	parts := splitTopLevelCommas(argsText)
	args := make([]cpptype.CppType, len(parts))
	for i, p := range parts {
		parsed, err := r.parseUnexposedType(nil, strings.TrimSpace(p), ctx)
		if err != nil {
			return cpptype.CppType{}, err
		}
		args[i] = parsed
	}
	return cpptype.CppType{Base: cpptype.ClassBase{QualifiedName: className, TemplateArguments: args}}, nil
}

// liftIndirectionFromUnexposed applies the same indirection lift table as
// liftIndirection, for the unexposed `*`/`&` suffix path, which never deals
// with function-pointer pointees directly (those are handled structurally).
func liftIndirectionFromUnexposed(pointee cpptype.Indirection, outer cpptype.Indirection) (cpptype.Indirection, error) {
	switch outer {
	case cpptype.Ptr:
		switch pointee {
		case cpptype.None:
			return cpptype.Ptr, nil
		case cpptype.Ptr:
			return cpptype.PtrPtr, nil
		default:
			return 0, fmt.Errorf("Unsupported level of indirection")
		}
	case cpptype.Ref:
		switch pointee {
		case cpptype.None:
			return cpptype.Ref, nil
		case cpptype.Ptr:
			return cpptype.PtrRef, nil
		default:
			return 0, fmt.Errorf("Unsupported level of indirection")
		}
	default:
		return 0, fmt.Errorf("Unsupported level of indirection")
	}
}
