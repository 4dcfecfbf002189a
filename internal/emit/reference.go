// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit is the type-emission engine: it resolves namespace-aware type
// references, plans per-property emission semantics, and synthesizes the dual
// plain/wrapper shape plan for each object type. Its output is
// language-agnostic; concrete syntax belongs to the target emitters.
package emit

import (
	"sort"
	"sync"
)

// RefKind discriminates the variants of a resolved TypeReference.
type RefKind int

const (
	// KindPrimitive is a builtin scalar type.
	KindPrimitive RefKind = iota
	// KindLocal is an object type in the referencing namespace, including
	// the referencing type itself.
	KindLocal
	// KindAliased is an object type in a sibling namespace of the same
	// package, qualified by a namespace alias.
	KindAliased
	// KindExternal is an object type in a different package entirely.
	KindExternal
	// KindArray is an ordered collection of Elem.
	KindArray
	// KindMap is a string-keyed collection of Elem.
	KindMap
)

// TypeReference is a resolved, namespace-aware pointer from a property to a
// type. It carries enough identity to qualify the reference at emission time
// without any target-language tokens.
type TypeReference struct {
	Kind      RefKind
	Primitive string         // KindPrimitive
	Target    string         // object type name, object kinds only
	Namespace string         // target namespace path, object kinds only
	Alias     string         // KindAliased
	Package   string         // KindExternal
	Elem      *TypeReference // KindArray, KindMap
}

// Token renders the canonical reference token. Two properties referencing
// the same target from the same namespace always render identically.
func (r TypeReference) Token() string {
	switch r.Kind {
	case KindPrimitive:
		return r.Primitive
	case KindLocal:
		return r.Target
	case KindAliased:
		return r.Alias + "." + r.Target
	case KindExternal:
		return r.Package + "::" + r.Namespace + "/" + r.Target
	case KindArray:
		return "list(" + r.Elem.Token() + ")"
	case KindMap:
		return "map(" + r.Elem.Token() + ")"
	}
	return ""
}

// NamespaceImport is one alias requirement of a referencing namespace.
type NamespaceImport struct {
	Namespace string
	Alias     string
}

// ImportSet accumulates the import requirements of one referencing namespace.
// Registration is idempotent and safe for concurrent use; properties of
// independent object types are planned in parallel.
type ImportSet struct {
	mu       sync.Mutex
	aliases  map[string]string // namespace path -> alias
	byAlias  map[string]string // alias -> namespace path
	packages map[string]struct{}
}

func newImportSet() *ImportSet {
	return &ImportSet{
		aliases:  make(map[string]string),
		byAlias:  make(map[string]string),
		packages: make(map[string]struct{}),
	}
}

func (s *ImportSet) addNamespace(path, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.aliases[path]; ok && existing == alias {
		return nil
	}
	if holder, ok := s.byAlias[alias]; ok && holder != path {
		return &ImportAliasCollisionError{Alias: alias, Existing: holder, Conflicting: path}
	}
	s.aliases[path] = alias
	s.byAlias[alias] = path
	return nil
}

func (s *ImportSet) addPackage(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[name] = struct{}{}
}

// Namespaces returns the registered namespace imports sorted by path.
func (s *ImportSet) Namespaces() []NamespaceImport {
	s.mu.Lock()
	defer s.mu.Unlock()

	imports := make([]NamespaceImport, 0, len(s.aliases))
	for path, alias := range s.aliases {
		imports = append(imports, NamespaceImport{Namespace: path, Alias: alias})
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Namespace < imports[j].Namespace })
	return imports
}

// Packages returns the registered foreign package names, sorted.
func (s *ImportSet) Packages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages := make([]string, 0, len(s.packages))
	for name := range s.packages {
		packages = append(packages, name)
	}
	sort.Strings(packages)
	return packages
}
