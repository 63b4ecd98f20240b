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

// Package postprocess derives implicit entities (destructors, inherited
// methods, default-argument omissions), checks referential integrity, and
// collects template instantiation sites, running a fixed sequence of passes
// over an entity.Store to produce the final frozen model.
package postprocess

import (
	"fmt"
	"strings"

	"github.com/cxxbind/semcore/cpptype"
	"github.com/cxxbind/semcore/entity"
	"github.com/cxxbind/semcore/internal/logx"
)

// Result is the final, frozen model: the single CppData value bundling
// types, callables, and instantiation sites (§6.3).
type Result struct {
	Types                  []*entity.TypeDeclaration
	Callables              []*entity.Callable
	TemplateInstantiations map[string][][]cpptype.CppType
}

// Run executes the fixed pass sequence of §4.5 over store and returns the
// resulting model. store is mutated in place; after Run returns it is
// frozen from the perspective of downstream consumers.
func Run(store *entity.Store, log *logx.Logger) *Result {
	ensureDestructors(store)
	generateOmittedArgumentOverloads(store)
	addInheritedMethods(store)
	instantiations := collectTemplateInstantiations(store)
	checkIntegrity(store, log)

	return &Result{
		Types:                  store.Types(),
		Callables:              store.Callables(),
		TemplateInstantiations: instantiations,
	}
}

func simpleName(qualifiedName string) string {
	if i := strings.LastIndex(qualifiedName, "::"); i >= 0 {
		return qualifiedName[i+2:]
	}
	return qualifiedName
}

// hasDestructor reports whether store already holds a callable bound to
// className as its destructor.
func hasDestructor(store *entity.Store, className string) (*entity.Callable, bool) {
	for _, c := range store.Callables() {
		if c.ClassMembership == nil || c.ClassMembership.Kind != entity.Destructor {
			continue
		}
		if n, ok := cpptype.ClassOrEnumName(c.ClassMembership.OwningClassType); ok && n == className {
			return c, true
		}
	}
	return nil, false
}

// classHasVirtualDestructor recursively searches className and its bases
// for a virtual destructor. visiting guards against cyclic base lists,
// which are not valid C++ but must not hang the pass.
func classHasVirtualDestructor(store *entity.Store, className string, visiting map[string]bool) bool {
	if visiting[className] {
		return false
	}
	visiting[className] = true
	defer delete(visiting, className)

	if dtor, ok := hasDestructor(store, className); ok {
		return dtor.ClassMembership.Virtual
	}
	decl, ok := store.LookupType(className)
	if !ok || decl.Class == nil {
		return false
	}
	for _, base := range decl.Class.Bases {
		cb, ok := base.Base.(cpptype.ClassBase)
		if !ok {
			continue
		}
		if classHasVirtualDestructor(store, cb.QualifiedName, visiting) {
			return true
		}
	}
	return false
}

// ensureDestructors is pass 1 (§4.5.1): every class lacking an explicit
// destructor receives a synthesized public, non-const, non-static one,
// virtual iff a virtual destructor exists transitively through its bases.
func ensureDestructors(store *entity.Store) {
	classes := store.Types()
	for _, decl := range classes {
		if decl.Class == nil {
			continue
		}
		if _, ok := hasDestructor(store, decl.QualifiedName); ok {
			continue
		}
		virtual := classHasVirtualDestructor(store, decl.QualifiedName, map[string]bool{})
		store.InsertCallable(&entity.Callable{
			Name: "~" + simpleName(decl.QualifiedName),
			ClassMembership: &entity.ClassMembership{
				OwningClassType: entity.DefaultClassType(decl),
				Kind:            entity.Destructor,
				Virtual:         virtual,
				Const:           false,
				Static:          false,
				Visibility:      entity.Public,
			},
			ReturnType:  cpptype.Void,
			IncludeFile: decl.IncludeFile,
		})
	}
}

// generateOmittedArgumentOverloads is pass 2 (§4.5.2): every callable whose
// last argument has a default value gets one clone per popped trailing
// defaulted argument, down to (and including) popping all of them.
func generateOmittedArgumentOverloads(store *entity.Store) {
	originals := store.Callables()
	var generated []*entity.Callable
	for _, c := range originals {
		n := len(c.Arguments)
		if n == 0 || !c.Arguments[n-1].HasDefaultValue {
			continue
		}
		trailing := 0
		for i := n - 1; i >= 0 && c.Arguments[i].HasDefaultValue; i-- {
			trailing++
		}
		for pop := 1; pop <= trailing; pop++ {
			clone := c.Clone()
			clone.Arguments = clone.Arguments[:n-pop]
			generated = append(generated, clone)
		}
	}
	for _, c := range generated {
		store.InsertCallable(c)
	}
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"^=": true, "&=": true, "|=": true, "<<=": true, ">>=": true,
}

// isAssignmentOperator reports whether c is an assignment operator, which
// is excluded from inheritance along with constructors and destructors.
func isAssignmentOperator(c *entity.Callable) bool {
	return assignmentOperators[c.Operator.Name]
}

// addInheritedMethods is pass 3 (§4.5.3): for every class D that directly
// derives from a class C (by name), every non-constructor, non-destructor,
// non-assignment method of C that D does not already declare by name is
// cloned onto D. The recursion then treats D as the new base so
// transitively inherited methods propagate to D's own derived classes.
func addInheritedMethods(store *entity.Store) {
	initial := make([]string, 0, len(store.Types()))
	for _, t := range store.Types() {
		if t.IsClass() {
			initial = append(initial, t.QualifiedName)
		}
	}
	for _, name := range initial {
		propagateInheritance(store, name, map[string]bool{})
	}
}

func propagateInheritance(store *entity.Store, baseName string, visiting map[string]bool) {
	if visiting[baseName] {
		return
	}
	visiting[baseName] = true
	defer delete(visiting, baseName)

	for _, d := range store.Types() {
		if d.Class == nil {
			continue
		}
		derivesDirectly := false
		for _, b := range d.Class.Bases {
			if cb, ok := b.Base.(cpptype.ClassBase); ok && cb.QualifiedName == baseName {
				derivesDirectly = true
				break
			}
		}
		if !derivesDirectly {
			continue
		}

		existingNames := map[string]bool{}
		for _, c := range store.Callables() {
			if c.ClassMembership == nil {
				continue
			}
			if n, ok := cpptype.ClassOrEnumName(c.ClassMembership.OwningClassType); ok && n == d.QualifiedName {
				existingNames[c.Name] = true
			}
		}

		var toAdd []*entity.Callable
		for _, c := range store.Callables() {
			if c.ClassMembership == nil {
				continue
			}
			n, ok := cpptype.ClassOrEnumName(c.ClassMembership.OwningClassType)
			if !ok || n != baseName {
				continue
			}
			if c.ClassMembership.Kind != entity.Regular {
				continue
			}
			if isAssignmentOperator(c) {
				continue
			}
			if existingNames[c.Name] {
				continue
			}
			clone := c.Clone()
			clone.ClassMembership.OwningClassType = entity.DefaultClassType(d)
			clone.IncludeFile = d.IncludeFile
			clone.Origin = nil
			toAdd = append(toAdd, clone)
			existingNames[c.Name] = true
		}
		for _, c := range toAdd {
			store.InsertCallable(c)
		}

		propagateInheritance(store, d.QualifiedName, visiting)
	}
}

func instantiationKey(name string, args []cpptype.CppType) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.Key())
	}
	sb.WriteByte(')')
	return sb.String()
}

// collectTemplateInstantiations is pass 4 (§4.5.4): every fully-bound
// Class{name, Some(args)} type reachable from a return type, argument type,
// or base type is recorded once, in first-seen order.
func collectTemplateInstantiations(store *entity.Store) map[string][][]cpptype.CppType {
	instantiations := map[string][][]cpptype.CppType{}
	seen := map[string]bool{}

	var walk func(t cpptype.CppType)
	walk = func(t cpptype.CppType) {
		walkInstantiations(t, store, instantiations, seen, walk)
	}

	for _, c := range store.Callables() {
		walk(c.ReturnType)
		for _, a := range c.Arguments {
			walk(a.Type)
		}
	}
	for _, d := range store.Types() {
		if d.Class == nil {
			continue
		}
		for _, b := range d.Class.Bases {
			walk(b)
		}
	}
	return instantiations
}

func walkInstantiations(t cpptype.CppType, store *entity.Store, instantiations map[string][][]cpptype.CppType, seen map[string]bool, recurse func(cpptype.CppType)) {
	switch b := t.Base.(type) {
	case cpptype.ClassBase:
		if b.TemplateArguments != nil && !cpptype.ContainsTemplateParameter(t) {
			key := instantiationKey(b.QualifiedName, b.TemplateArguments)
			if !seen[key] {
				seen[key] = true
				if decl, ok := store.LookupType(b.QualifiedName); ok && decl.Class != nil && decl.Class.IsTemplate() {
					if len(b.TemplateArguments) != len(decl.Class.TemplateParameters) {
						panic(fmt.Sprintf("postprocess: instantiation of %q has %d argument(s), template declares %d",
							b.QualifiedName, len(b.TemplateArguments), len(decl.Class.TemplateParameters)))
					}
				}
				instantiations[b.QualifiedName] = append(instantiations[b.QualifiedName], b.TemplateArguments)
			}
		}
		for _, a := range b.TemplateArguments {
			recurse(a)
		}
	case cpptype.FunctionPointerBase:
		recurse(b.Return)
		for _, a := range b.Arguments {
			recurse(a)
		}
	}
}

func checkTypeIntegrity(store *entity.Store, t cpptype.CppType) bool {
	switch b := t.Base.(type) {
	case cpptype.ClassBase:
		if _, ok := store.LookupType(b.QualifiedName); !ok {
			return false
		}
		for _, a := range b.TemplateArguments {
			if !checkTypeIntegrity(store, a) {
				return false
			}
		}
		return true
	case cpptype.EnumBase:
		_, ok := store.LookupType(b.QualifiedName)
		return ok
	case cpptype.FunctionPointerBase:
		if !checkTypeIntegrity(store, b.Return) {
			return false
		}
		for _, a := range b.Arguments {
			if !checkTypeIntegrity(store, a) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// checkIntegrity is pass 5 (§4.5.5): callables with any unresolved Class or
// Enum reference (in their return type, argument types, or owning class) are
// removed outright, not retained with placeholders. Base-class integrity
// failures on a type declaration are logged but the class itself is kept.
func checkIntegrity(store *entity.Store, log *logx.Logger) {
	var kept []*entity.Callable
	for _, c := range store.Callables() {
		ok := checkTypeIntegrity(store, c.ReturnType)
		for _, a := range c.Arguments {
			if !ok {
				break
			}
			ok = checkTypeIntegrity(store, a.Type)
		}
		if ok && c.ClassMembership != nil {
			ok = checkTypeIntegrity(store, c.ClassMembership.OwningClassType)
		}
		if !ok {
			log.Warning("postprocess: dropping %s: unresolved type reference", c.Name)
			continue
		}
		kept = append(kept, c)
	}
	store.SetCallables(kept)

	for _, d := range store.Types() {
		if d.Class == nil {
			continue
		}
		for _, b := range d.Class.Bases {
			if !checkTypeIntegrity(store, b) {
				log.Warning("postprocess: class %s has unresolved base %s", d.QualifiedName, b.Key())
			}
		}
	}
}

// HeaderPartition is one header's slice of the model, produced by
// SplitByHeaders.
type HeaderPartition struct {
	Types                  []*entity.TypeDeclaration
	Callables              []*entity.Callable
	TemplateInstantiations map[string][][]cpptype.CppType
}

// SplitByHeaders partitions r by include-file basename; no entity is shared
// across partitions. A structural union of the returned map's partitions is
// equal to r.
func SplitByHeaders(r *Result) map[string]*HeaderPartition {
	out := map[string]*HeaderPartition{}
	get := func(header string) *HeaderPartition {
		p, ok := out[header]
		if !ok {
			p = &HeaderPartition{TemplateInstantiations: map[string][][]cpptype.CppType{}}
			out[header] = p
		}
		return p
	}
	for _, t := range r.Types {
		p := get(t.IncludeFile)
		p.Types = append(p.Types, t)
	}
	for _, c := range r.Callables {
		p := get(c.IncludeFile)
		p.Callables = append(p.Callables, c)
	}
	headerForClass := map[string]string{}
	for _, t := range r.Types {
		headerForClass[t.QualifiedName] = t.IncludeFile
	}
	for className, tuples := range r.TemplateInstantiations {
		header := headerForClass[className]
		p := get(header)
		p.TemplateInstantiations[className] = tuples
	}
	return out
}
