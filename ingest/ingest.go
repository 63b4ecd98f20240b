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

// Package ingest walks a front-end translation-unit tree, filters entities
// by inclusion path and blacklist, and populates an entity.Store with types
// and callables, delegating type parsing to the resolver.
package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cxxbind/semcore/cpptype"
	"github.com/cxxbind/semcore/entity"
	"github.com/cxxbind/semcore/frontend"
	"github.com/cxxbind/semcore/internal/logx"
	"github.com/cxxbind/semcore/resolver"
)

// Ingestor drives the two-pass traversal described in §2: pass 1 collects
// type declarations so the resolver can answer forward references, pass 2
// collects callables using the resolver.
type Ingestor struct {
	Store    *entity.Store
	Resolver *resolver.Resolver
	Config   *ParserConfig
	Log      *logx.Logger
}

// New returns an Ingestor wired to a fresh store and resolver.
func New(cfg *ParserConfig, log *logx.Logger) *Ingestor {
	store := entity.NewStore()
	return &Ingestor{
		Store:    store,
		Resolver: resolver.New(store),
		Config:   cfg,
		Log:      log,
	}
}

// Run performs both passes over the translation unit rooted at tu.
func (in *Ingestor) Run(tu frontend.Cursor) {
	in.IngestTypes(tu)
	in.IngestCallables(tu)
}

// includeBasename returns the file-name component of a presumed-include
// path, used as the partition key by split_by_headers.
func includeBasename(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// allowed reports whether presumedPath passes the inclusion filter: an
// empty path is always allowed (the entity's origin is unknown, so it can't
// be excluded); otherwise the path must be a prefix-descendant of one of the
// configured include directories.
func (in *Ingestor) allowed(presumedPath string) bool {
	if presumedPath == "" {
		return true
	}
	for _, dir := range in.Config.IncludeDirs {
		rel, err := filepath.Rel(dir, presumedPath)
		if err != nil {
			continue
		}
		if rel == "." || (!strings.HasPrefix(rel, "..") && rel != "") {
			return true
		}
	}
	return false
}

// skip reports whether c should be skipped entirely: its presumed include
// path fails the inclusion filter, or its fully qualified name is
// blacklisted.
func (in *Ingestor) skip(c frontend.Cursor) bool {
	if !in.allowed(c.PresumedLocation().File) {
		return true
	}
	if in.Config.isBlacklisted(c.FullyQualifiedName()) {
		return true
	}
	return false
}

func locationOf(c frontend.Cursor) entity.Location {
	l := c.PresumedLocation()
	return entity.Location{File: l.File, Line: l.Line, Column: l.Column}
}

// IngestTypes is pass 1: it recursively descends the tree and populates the
// store with enum and class declarations.
func (in *Ingestor) IngestTypes(c frontend.Cursor) {
	in.walkTypes(c)
}

func (in *Ingestor) walkTypes(c frontend.Cursor) {
	if in.skip(c) {
		return
	}
	isPrivate := c.Accessibility() == frontend.AccessPrivate
	switch c.Kind() {
	case frontend.EnumDecl:
		if !isPrivate && c.Name() != "" && c.IsDefinition() {
			in.ingestEnum(c)
		}
	case frontend.ClassDecl, frontend.ClassTemplate, frontend.StructDecl:
		if !isPrivate && c.IsDefinition() && c.Name() != "" && !c.IsTemplateSpecialization() {
			in.ingestClass(c)
		}
	}
	for _, child := range c.Children() {
		in.walkTypes(child)
	}
}

func (in *Ingestor) ingestEnum(c frontend.Cursor) {
	var values []entity.EnumValue
	for _, child := range c.Children() {
		if child.Kind() == frontend.EnumConstantDecl {
			values = append(values, entity.EnumValue{
				Name:  child.Name(),
				Value: child.EnumConstantValue(),
			})
		}
	}
	in.Store.InsertType(&entity.TypeDeclaration{
		QualifiedName: c.FullyQualifiedName(),
		IncludeFile:   includeBasename(c.PresumedLocation().File),
		Origin:        locationOf(c),
		Enum:          &entity.EnumKind{Values: values},
	})
}

func (in *Ingestor) ingestClass(c frontend.Cursor) {
	var templateParams []string
	if c.Kind() == frontend.ClassTemplate {
		templateParams = []string{}
		unnamed := 0
		for _, child := range c.Children() {
			if child.Kind() == frontend.TemplateTypeParameter {
				name := child.Name()
				if name == "" {
					unnamed++
					name = fmt.Sprintf("Type%d", unnamed)
				}
				templateParams = append(templateParams, name)
			}
		}
	}

	for _, child := range c.Children() {
		if child.Kind() == frontend.NonTypeTemplateParameter {
			in.Log.Warning("ingest: class %s rejected: non-type template parameters are unsupported", c.FullyQualifiedName())
			return
		}
	}

	ctx := resolver.Context{ClassTemplateParams: templateParams}

	var fields []entity.Field
	for _, child := range c.Children() {
		if child.Kind() != frontend.FieldDecl {
			continue
		}
		ft, err := in.Resolver.ParseWithContext(child.Type(), ctx)
		if err != nil {
			in.Log.Warning("ingest: dropping field %s::%s: %v", c.FullyQualifiedName(), child.Name(), err)
			continue
		}
		vis := toVisibility(child.Accessibility())
		fields = append(fields, entity.Field{Name: child.Name(), Type: ft, Visibility: vis})
	}

	var bases []cpptype.CppType
	for _, child := range c.Children() {
		if child.Kind() != frontend.BaseSpecifier {
			continue
		}
		bt, err := in.Resolver.ParseWithContext(child.Type(), ctx)
		if err != nil {
			in.Log.Warning("ingest: class %s rejected: unparseable base: %v", c.FullyQualifiedName(), err)
			return
		}
		bases = append(bases, bt)
	}

	var size *int
	if ct := c.Type(); ct != nil {
		if sz, ok := ct.Sizeof(); ok {
			size = &sz
		}
	}

	in.Store.InsertType(&entity.TypeDeclaration{
		QualifiedName: c.FullyQualifiedName(),
		IncludeFile:   includeBasename(c.PresumedLocation().File),
		Origin:        locationOf(c),
		Class: &entity.ClassKind{
			Size:               size,
			Bases:              bases,
			Fields:             fields,
			TemplateParameters: templateParams,
		},
	})
}

func toVisibility(a frontend.Accessibility) entity.Visibility {
	switch a {
	case frontend.AccessProtected:
		return entity.Protected
	case frontend.AccessPrivate:
		return entity.Private
	default:
		return entity.Public
	}
}

// IngestCallables is pass 2: it recursively descends the tree and populates
// the store with function and method declarations.
func (in *Ingestor) IngestCallables(c frontend.Cursor) {
	in.walkCallables(c)
}

func (in *Ingestor) walkCallables(c frontend.Cursor) {
	if in.skip(c) {
		return
	}
	switch c.Kind() {
	case frontend.FunctionDecl, frontend.Method, frontend.Constructor,
		frontend.Destructor, frontend.ConversionFunction, frontend.FunctionTemplate:
		if c.CanonicalEntity() == c {
			callable, err := in.parseFunction(c)
			if err != nil {
				in.Log.Warning("ingest: dropping %s: %v", c.FullyQualifiedName(), err)
			} else if callable != nil {
				in.Store.InsertCallable(callable)
			}
		}
	}
	for _, child := range c.Children() {
		in.walkCallables(child)
	}
}

var reTemplateSuffix = regexp.MustCompile(`^([\w~]+)<[^<>]+>$`)

// parseFunction implements the parse_function contract of §4.4.
func (in *Ingestor) parseFunction(c frontend.Cursor) (*entity.Callable, error) {
	parent := c.SemanticParent()
	var owner frontend.Cursor
	if parent != nil {
		switch parent.Kind() {
		case frontend.ClassDecl, frontend.StructDecl, frontend.ClassTemplate, frontend.ClassTemplatePartialSpecialization:
			owner = parent
		}
	}

	var classTemplateParams []string
	var ownerDecl *entity.TypeDeclaration
	if owner != nil {
		decl, ok := in.Store.LookupType(owner.FullyQualifiedName())
		if !ok {
			return nil, fmt.Errorf("unknown owning class %q", owner.FullyQualifiedName())
		}
		ownerDecl = decl
		if decl.Class != nil {
			classTemplateParams = decl.Class.TemplateParameters
		}
	}

	var methodTemplateParams []string
	if c.Kind() == frontend.FunctionTemplate {
		methodTemplateParams = []string{}
		for _, child := range c.Children() {
			if child.Kind() == frontend.NonTypeTemplateParameter {
				return nil, fmt.Errorf("non-type template parameters are unsupported")
			}
			if child.Kind() == frontend.TemplateTypeParameter {
				methodTemplateParams = append(methodTemplateParams, child.Name())
			}
		}
	}

	ctx := resolver.Context{ClassTemplateParams: classTemplateParams, MethodTemplateParams: methodTemplateParams}

	retType, err := in.Resolver.ParseWithContext(c.Type().ResultType(), ctx)
	if err != nil {
		return nil, fmt.Errorf("return type: %w", err)
	}

	var args []entity.Argument
	var variadic bool
	if c.Kind() == frontend.FunctionTemplate {
		variadic = c.Type().IsVariadic()
		i := 0
		for _, child := range c.Children() {
			if child.Kind() != frontend.ParmDecl {
				continue
			}
			i++
			at, err := in.Resolver.ParseWithContext(child.Type(), ctx)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			name := child.Name()
			if name == "" {
				name = fmt.Sprintf("arg%d", i)
			}
			args = append(args, entity.Argument{Name: name, Type: at, HasDefaultValue: child.HasDefaultValueToken()})
		}
	} else {
		var parmCursors []frontend.Cursor
		for _, child := range c.Children() {
			if child.Kind() == frontend.ParmDecl {
				parmCursors = append(parmCursors, child)
			}
		}
		argTypes := c.Type().ArgumentTypes()
		variadic = c.Type().IsVariadic()
		for i, t := range argTypes {
			at, err := in.Resolver.ParseWithContext(t, ctx)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			name := fmt.Sprintf("arg%d", i+1)
			hasDefault := false
			if i < len(parmCursors) {
				if n := parmCursors[i].Name(); n != "" {
					name = n
				}
				hasDefault = parmCursors[i].HasDefaultValueToken()
			}
			args = append(args, entity.Argument{Name: name, Type: at, HasDefaultValue: hasDefault})
		}
	}

	simpleName := c.Name()
	if strings.Contains(simpleName, "<") {
		if m := reTemplateSuffix.FindStringSubmatch(simpleName); m != nil {
			simpleName = m[1]
		}
	}

	// Name post-processing: namespace-qualify before recognizing operators,
	// so a free operator declared inside a namespace (whose qualified name
	// no longer begins with "operator") is left as a plain function rather
	// than misrecognized.
	name := simpleName
	if parent != nil && parent.Kind() == frontend.Namespace {
		name = parent.FullyQualifiedName() + "::" + simpleName
	}

	var op entity.Operator
	operatorRejected := false
	if strings.HasPrefix(name, "operator") {
		rest := name[len("operator"):]
		trimmed := strings.TrimSpace(rest)
		if strings.HasPrefix(rest, " ") && trimmed != "" {
			if _, known := knownOperators[trimmed]; !known {
				convType, err := in.Resolver.ParseUnexposed(nil, trimmed, ctx)
				if err != nil {
					return nil, fmt.Errorf("conversion operator: %w", err)
				}
				op = entity.Operator{Conversion: &entity.OperatorConversion{Type: convType}}
			}
		}
		if !op.IsSet() && trimmed != "" {
			argc := len(args)
			if owner != nil && !c.IsStatic() {
				argc++
			}
			suffixMatched, arityMatched := matchKnownOperator(trimmed, argc, variadic)
			if suffixMatched {
				if arityMatched {
					op = entity.Operator{Name: trimmed}
				} else {
					operatorRejected = true
				}
			}
		}
	}

	var membership *entity.ClassMembership
	if owner != nil {
		if ownerDecl == nil {
			return nil, fmt.Errorf("unknown owning class for %q", name)
		}
		kind := entity.Regular
		switch c.Kind() {
		case frontend.Constructor:
			kind = entity.Constructor
		case frontend.Destructor:
			kind = entity.Destructor
		}
		membership = &entity.ClassMembership{
			OwningClassType: entity.DefaultClassType(ownerDecl),
			Kind:            kind,
			Virtual:         c.IsVirtual(),
			PureVirtual:     c.IsPureVirtual(),
			Const:           c.IsConst(),
			Static:          c.IsStatic(),
			Visibility:      toVisibility(c.Accessibility()),
		}
	}

	if operatorRejected {
		return nil, fmt.Errorf("operator %q does not match any known arity", name)
	}

	var origin *entity.Location
	if loc := locationOf(c); loc.File != "" || loc.Line != 0 {
		origin = &loc
	}

	return &entity.Callable{
		Name:               name,
		ClassMembership:    membership,
		Operator:           op,
		ReturnType:         retType,
		Arguments:          args,
		Variadic:           variadic,
		IncludeFile:        includeBasename(c.PresumedLocation().File),
		Origin:             origin,
		TemplateParameters: methodTemplateParams,
	}, nil
}
