// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema provides the resource-schema package model consumed by the
// emission engine: namespaces, object types, properties, and type references.
package schema

// Package is one generation unit: a named tree of namespaces holding object types.
type Package struct {
	Name        string
	Version     string
	Description string
	Namespaces  []*Namespace // declaration order; the root namespace has Path ""
}

// Namespace returns the namespace with the given path, or nil.
func (p *Package) Namespace(path string) *Namespace {
	for _, ns := range p.Namespaces {
		if ns.Path == path {
			return ns
		}
	}
	return nil
}

// ObjectTypes returns every object type in the package in declaration order
// (namespaces first, then types within each namespace).
func (p *Package) ObjectTypes() []*ObjectType {
	var types []*ObjectType
	for _, ns := range p.Namespaces {
		types = append(types, ns.Types...)
	}
	return types
}

// Namespace is a grouping of object types sharing a declared identity scope.
// Path is slash-separated relative to the package root; "" is the root namespace.
type Namespace struct {
	Path  string
	Types []*ObjectType // declaration order
}

// Leaf returns the last path segment of the namespace, or "" for the root.
func (n *Namespace) Leaf() string {
	return leaf(n.Path)
}

// ObjectType is one input-argument schema type. Its name is unique within
// its owning namespace.
type ObjectType struct {
	Name        string
	Namespace   string // owning namespace path
	Description string
	Properties  []*Property // declaration order
}

// Property is one field of an ObjectType. Names are unique within the type.
// A property carrying a default must not be required.
type Property struct {
	Name               string
	Type               TypeSpec
	Required           bool
	Default            *DefaultValue
	Description        string
	DeprecationMessage string
}

// TypeSpec is the declared (unresolved) type of a property. Exactly one of
// Name, Ref, Items, or AdditionalProperties is set:
//
//   - Name: a primitive ("string", "integer", "number", "boolean")
//   - Ref: an object type reference, "[package::]namespace/Type"; the
//     namespace path is package-rooted, so a root-namespace type is just "Type"
//   - Items: an array of the element type
//   - AdditionalProperties: a string-keyed map of the value type
type TypeSpec struct {
	Name                 string
	Ref                  string
	Items                *TypeSpec
	AdditionalProperties *TypeSpec
}

// DefaultValue is a construction-time default for an optional property.
// The wrapper shape injects it only when the caller omits the property.
type DefaultValue struct {
	Value any
}

func leaf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
