// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Mattlk13/pulumi/internal/schema"
)

// Resolver computes namespace-aware type references for one package and
// accumulates per-namespace import requirements along the way. It is safe
// for concurrent use.
type Resolver struct {
	types map[string]map[string]*schema.ObjectType // namespace path -> type name -> type

	mu      sync.Mutex
	imports map[string]*ImportSet // referencing namespace path -> imports
}

// NewResolver indexes the package's namespace tree.
func NewResolver(pkg *schema.Package) *Resolver {
	types := make(map[string]map[string]*schema.ObjectType, len(pkg.Namespaces))
	for _, ns := range pkg.Namespaces {
		byName := make(map[string]*schema.ObjectType, len(ns.Types))
		for _, ot := range ns.Types {
			byName[ot.Name] = ot
		}
		types[ns.Path] = byName
	}
	return &Resolver{
		types:   types,
		imports: make(map[string]*ImportSet),
	}
}

// Resolve turns a declared type spec into a TypeReference relative to the
// referencing namespace. Resolution is deterministic: the same spec resolved
// from the same namespace always yields the same reference, and repeated
// cross-namespace resolution reuses the registered alias.
func (r *Resolver) Resolve(referencing string, spec schema.TypeSpec) (TypeReference, error) {
	switch {
	case spec.Name != "":
		return TypeReference{Kind: KindPrimitive, Primitive: spec.Name}, nil

	case spec.Items != nil:
		elem, err := r.Resolve(referencing, *spec.Items)
		if err != nil {
			return TypeReference{}, err
		}
		return TypeReference{Kind: KindArray, Elem: &elem}, nil

	case spec.AdditionalProperties != nil:
		elem, err := r.Resolve(referencing, *spec.AdditionalProperties)
		if err != nil {
			return TypeReference{}, err
		}
		return TypeReference{Kind: KindMap, Elem: &elem}, nil

	case spec.Ref != "":
		return r.resolveRef(referencing, spec.Ref)
	}

	return TypeReference{}, fmt.Errorf("empty type spec")
}

// resolveRef handles object references "[package::]namespace/Type".
func (r *Resolver) resolveRef(referencing, ref string) (TypeReference, error) {
	var pkg string
	if idx := strings.Index(ref, "::"); idx >= 0 {
		pkg, ref = ref[:idx], ref[idx+2:]
	}

	nsPath, name := "", ref
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		nsPath, name = ref[:idx], ref[idx+1:]
	}

	if pkg != "" {
		// Foreign generation unit: the import crosses a package boundary,
		// and the target tree is not ours to check.
		r.importsFor(referencing).addPackage(pkg)
		return TypeReference{Kind: KindExternal, Target: name, Namespace: nsPath, Package: pkg}, nil
	}

	byName, ok := r.types[nsPath]
	if !ok {
		return TypeReference{}, &UnresolvedNamespaceError{Namespace: nsPath, Type: name}
	}
	if _, ok := byName[name]; !ok {
		return TypeReference{}, fmt.Errorf("namespace %q has no object type %q", nsPath, name)
	}

	if nsPath == referencing {
		// Self- and same-namespace references need no import.
		return TypeReference{Kind: KindLocal, Target: name, Namespace: nsPath}, nil
	}

	alias := aliasFor(nsPath)
	if err := r.importsFor(referencing).addNamespace(nsPath, alias); err != nil {
		return TypeReference{}, err
	}
	return TypeReference{Kind: KindAliased, Target: name, Namespace: nsPath, Alias: alias}, nil
}

// Imports returns the accumulated import set of the referencing namespace.
// It never returns nil.
func (r *Resolver) Imports(referencing string) *ImportSet {
	return r.importsFor(referencing)
}

func (r *Resolver) importsFor(referencing string) *ImportSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.imports[referencing]
	if !ok {
		set = newImportSet()
		r.imports[referencing] = set
	}
	return set
}

// aliasFor derives the deterministic alias of a namespace from its leaf
// segment. Two namespaces sharing a leaf therefore collide, which addNamespace
// surfaces rather than papering over with a generated suffix.
func aliasFor(nsPath string) string {
	segment := nsPath
	if idx := strings.LastIndex(nsPath, "/"); idx >= 0 {
		segment = nsPath[idx+1:]
	}
	if segment == "" {
		segment = "root"
	}
	return "_" + segment
}
