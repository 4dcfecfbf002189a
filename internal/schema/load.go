// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"io"
	"iter"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a schema package from a file path.
func Load(path string) (*Package, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Parse(f)
}

// Parse decodes a schema package from YAML. Declaration order of namespaces,
// types, and properties follows the document; decoding goes through yaml.Node
// because plain map decoding would lose it.
func Parse(r io.Reader) (*Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty schema document")
	}

	pkg := &Package{}
	for key, val := range mappingPairs(doc.Content[0]) {
		switch key.Value {
		case "name":
			pkg.Name = val.Value
		case "version":
			pkg.Version = val.Value
		case "description":
			pkg.Description = val.Value
		case "types":
			ns, err := decodeNamespace("", val)
			if err != nil {
				return nil, err
			}
			pkg.Namespaces = append(pkg.Namespaces, ns)
		case "namespaces":
			for nsKey, nsVal := range mappingPairs(val) {
				ns, err := decodeNamespaceBlock(nsKey.Value, nsVal)
				if err != nil {
					return nil, err
				}
				pkg.Namespaces = append(pkg.Namespaces, ns)
			}
		}
	}

	if err := Validate(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// decodeNamespaceBlock decodes a namespace entry of the form {types: {...}}.
func decodeNamespaceBlock(path string, node *yaml.Node) (*Namespace, error) {
	for key, val := range mappingPairs(node) {
		if key.Value == "types" {
			return decodeNamespace(path, val)
		}
	}
	return &Namespace{Path: path}, nil
}

// decodeNamespace decodes a mapping of type name to type definition.
func decodeNamespace(path string, node *yaml.Node) (*Namespace, error) {
	ns := &Namespace{Path: path}
	for key, val := range mappingPairs(node) {
		ot, err := decodeObjectType(path, key.Value, val)
		if err != nil {
			return nil, err
		}
		ns.Types = append(ns.Types, ot)
	}
	return ns, nil
}

func decodeObjectType(nsPath, name string, node *yaml.Node) (*ObjectType, error) {
	ot := &ObjectType{Name: name, Namespace: nsPath}

	var required []string
	var propsNode *yaml.Node
	for key, val := range mappingPairs(node) {
		switch key.Value {
		case "description":
			ot.Description = val.Value
		case "required":
			if err := val.Decode(&required); err != nil {
				return nil, fmt.Errorf("type %q: invalid required list: %w", name, err)
			}
		case "properties":
			propsNode = val
		}
	}

	if propsNode != nil {
		for key, val := range mappingPairs(propsNode) {
			prop, err := decodeProperty(key.Value, val)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", name, err)
			}
			ot.Properties = append(ot.Properties, prop)
		}
	}

	for _, req := range required {
		found := false
		for _, prop := range ot.Properties {
			if prop.Name == req {
				prop.Required = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("type %q: required property %q not declared", name, req)
		}
	}

	return ot, nil
}

type rawTypeSpec struct {
	Type                 string       `yaml:"type"`
	Ref                  string       `yaml:"ref"`
	Items                *rawTypeSpec `yaml:"items"`
	AdditionalProperties *rawTypeSpec `yaml:"additionalProperties"`
}

type rawProperty struct {
	rawTypeSpec        `yaml:",inline"`
	Default            yaml.Node `yaml:"default"`
	Description        string    `yaml:"description"`
	DeprecationMessage string    `yaml:"deprecationMessage"`
}

func decodeProperty(name string, node *yaml.Node) (*Property, error) {
	var raw rawProperty
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}

	prop := &Property{
		Name:               name,
		Type:               raw.rawTypeSpec.typeSpec(),
		Description:        raw.Description,
		DeprecationMessage: raw.DeprecationMessage,
	}

	if !raw.Default.IsZero() {
		var value any
		if err := raw.Default.Decode(&value); err != nil {
			return nil, fmt.Errorf("property %q: invalid default: %w", name, err)
		}
		prop.Default = &DefaultValue{Value: value}
	}

	return prop, nil
}

func (r *rawTypeSpec) typeSpec() TypeSpec {
	spec := TypeSpec{Name: r.Type, Ref: r.Ref}
	if r.Items != nil {
		items := r.Items.typeSpec()
		spec.Items = &items
		spec.Name = "" // "type: array" is implied by items
	}
	if r.AdditionalProperties != nil {
		elem := r.AdditionalProperties.typeSpec()
		spec.AdditionalProperties = &elem
		spec.Name = ""
	}
	return spec
}

// mappingPairs iterates the key/value node pairs of a YAML mapping in
// document order.
func mappingPairs(n *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		if n == nil || n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i], n.Content[i+1]) {
				return
			}
		}
	}
}
