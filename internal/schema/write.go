// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes the package to a file path in canonical YAML form.
func (p *Package) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	return p.Write(f)
}

// Write encodes the package as YAML. Encoding goes through yaml.Node so that
// declaration order survives a save/load round trip.
func (p *Package) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close() //nolint:errcheck

	return enc.Encode(p.yamlNode())
}

func (p *Package) yamlNode() *yaml.Node {
	root := mappingNode()
	appendPair(root, "name", scalarNode(p.Name))
	if p.Version != "" {
		appendPair(root, "version", scalarNode(p.Version))
	}
	if p.Description != "" {
		appendPair(root, "description", scalarNode(p.Description))
	}

	namespaces := mappingNode()
	for _, ns := range p.Namespaces {
		types := mappingNode()
		for _, ot := range ns.Types {
			appendPair(types, ot.Name, ot.yamlNode())
		}
		if ns.Path == "" {
			appendPair(root, "types", types)
			continue
		}
		block := mappingNode()
		appendPair(block, "types", types)
		appendPair(namespaces, ns.Path, block)
	}
	if len(namespaces.Content) > 0 {
		appendPair(root, "namespaces", namespaces)
	}

	return root
}

func (ot *ObjectType) yamlNode() *yaml.Node {
	node := mappingNode()
	if ot.Description != "" {
		appendPair(node, "description", scalarNode(ot.Description))
	}

	props := mappingNode()
	var required []string
	for _, prop := range ot.Properties {
		appendPair(props, prop.Name, prop.yamlNode())
		if prop.Required {
			required = append(required, prop.Name)
		}
	}
	if len(props.Content) > 0 {
		appendPair(node, "properties", props)
	}
	if len(required) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, name := range required {
			seq.Content = append(seq.Content, scalarNode(name))
		}
		appendPair(node, "required", seq)
	}

	return node
}

func (p *Property) yamlNode() *yaml.Node {
	node := mappingNode()
	appendSpec(node, p.Type)
	if p.Default != nil {
		var dn yaml.Node
		if err := dn.Encode(p.Default.Value); err == nil {
			appendPair(node, "default", &dn)
		}
	}
	if p.Description != "" {
		appendPair(node, "description", scalarNode(p.Description))
	}
	if p.DeprecationMessage != "" {
		appendPair(node, "deprecationMessage", scalarNode(p.DeprecationMessage))
	}
	return node
}

func appendSpec(node *yaml.Node, spec TypeSpec) {
	switch {
	case spec.Ref != "":
		appendPair(node, "ref", scalarNode(spec.Ref))
	case spec.Items != nil:
		items := mappingNode()
		appendSpec(items, *spec.Items)
		appendPair(node, "items", items)
	case spec.AdditionalProperties != nil:
		elem := mappingNode()
		appendSpec(elem, *spec.AdditionalProperties)
		appendPair(node, "additionalProperties", elem)
	default:
		appendPair(node, "type", scalarNode(spec.Name))
	}
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	if m.Kind != yaml.MappingNode {
		panic(fmt.Sprintf("appendPair on %v node", m.Kind))
	}
	m.Content = append(m.Content, scalarNode(key), value)
}
