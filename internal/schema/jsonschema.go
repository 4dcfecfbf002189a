// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// FromJSONSchema converts a JSON Schema document into a schema package named
// name. $defs become object types in the root namespace, inline object
// properties are extracted as named types, and "default" keywords become
// construction-time defaults. A required property that also carries a default
// is demoted to optional, since a default only makes sense for an omittable
// property.
func FromJSONSchema(name string, data []byte) (*Package, error) {
	var js jsonschema.Schema
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("failed to parse JSON Schema: %w", err)
	}

	conv := &jsonSchemaConverter{keyOrder: extractKeyOrder(data)}

	ns := &Namespace{Path: ""}
	for _, defName := range conv.orderedKeys("$defs", defKeys(&js)) {
		ot, err := conv.objectType(toPascalCase(defName), js.Defs[defName], "$defs."+defName)
		if err != nil {
			return nil, fmt.Errorf("$defs.%s: %w", defName, err)
		}
		ns.Types = append(ns.Types, ot)
	}

	if len(js.Properties) > 0 {
		root, err := conv.objectType(toPascalCase(name), &js, "")
		if err != nil {
			return nil, err
		}
		ns.Types = append(ns.Types, root)
	}

	ns.Types = append(ns.Types, conv.extracted...)

	pkg := &Package{
		Name:        name,
		Description: js.Description,
		Namespaces:  []*Namespace{ns},
	}
	if err := Validate(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

type jsonSchemaConverter struct {
	keyOrder  map[string][]string
	extracted []*ObjectType
}

func (c *jsonSchemaConverter) objectType(name string, js *jsonschema.Schema, path string) (*ObjectType, error) {
	ot := &ObjectType{Name: name, Description: js.Description}

	propPath := "properties"
	if path != "" {
		propPath = path + ".properties"
	}

	for _, propName := range c.orderedKeys(propPath, propKeys(js)) {
		propSchema := js.Properties[propName]

		spec, err := c.typeSpec(propSchema, propName, propPath+"."+propName)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", propName, err)
		}

		prop := &Property{
			Name:        propName,
			Type:        spec,
			Description: propSchema.Description,
		}

		if len(propSchema.Default) > 0 {
			var value any
			if err := json.Unmarshal(propSchema.Default, &value); err != nil {
				return nil, fmt.Errorf("property %q: invalid default: %w", propName, err)
			}
			prop.Default = &DefaultValue{Value: value}
		}

		if prop.Default == nil {
			for _, req := range js.Required {
				if req == propName {
					prop.Required = true
					break
				}
			}
		}

		ot.Properties = append(ot.Properties, prop)
	}

	return ot, nil
}

func (c *jsonSchemaConverter) typeSpec(js *jsonschema.Schema, fieldName, path string) (TypeSpec, error) {
	if js.Ref != "" {
		defName, ok := strings.CutPrefix(js.Ref, "#/$defs/")
		if !ok {
			return TypeSpec{}, fmt.Errorf("unsupported $ref %q", js.Ref)
		}
		return TypeSpec{Ref: toPascalCase(defName)}, nil
	}

	switch js.Type {
	case "array":
		elem := TypeSpec{Name: "string"}
		if js.Items != nil {
			var err error
			elem, err = c.typeSpec(js.Items, fieldName, path)
			if err != nil {
				return TypeSpec{}, err
			}
		}
		return TypeSpec{Items: &elem}, nil
	case "object", "":
		if len(js.Properties) > 0 {
			// Inline object: extract as a named root-namespace type.
			name := toPascalCase(fieldName)
			ot, err := c.objectType(name, js, path)
			if err != nil {
				return TypeSpec{}, err
			}
			c.extracted = append(c.extracted, ot)
			return TypeSpec{Ref: name}, nil
		}
		if js.Type == "object" {
			elem := TypeSpec{Name: "string"}
			if js.AdditionalProperties != nil {
				var err error
				elem, err = c.typeSpec(js.AdditionalProperties, fieldName, path)
				if err != nil {
					return TypeSpec{}, err
				}
			}
			return TypeSpec{AdditionalProperties: &elem}, nil
		}
		return TypeSpec{Name: "string"}, nil
	case "string", "boolean":
		return TypeSpec{Name: js.Type}, nil
	case "integer", "number":
		return TypeSpec{Name: js.Type}, nil
	default:
		return TypeSpec{Name: "string"}, nil
	}
}

func (c *jsonSchemaConverter) orderedKeys(path string, present map[string]struct{}) []string {
	var result []string
	for _, key := range c.keyOrder[path] {
		if _, ok := present[key]; ok {
			result = append(result, key)
		}
	}
	// Pick up any keys the order walk missed.
	for key := range present {
		seen := false
		for _, r := range result {
			if r == key {
				seen = true
				break
			}
		}
		if !seen {
			result = append(result, key)
		}
	}
	return result
}

func defKeys(js *jsonschema.Schema) map[string]struct{} {
	keys := make(map[string]struct{}, len(js.Defs))
	for name := range js.Defs {
		keys[name] = struct{}{}
	}
	return keys
}

func propKeys(js *jsonschema.Schema) map[string]struct{} {
	keys := make(map[string]struct{}, len(js.Properties))
	for name := range js.Properties {
		keys[name] = struct{}{}
	}
	return keys
}

// extractKeyOrder walks raw JSON with a token decoder and records the key
// order of every object, keyed by its dotted path. Go maps lose this order,
// and emitted fields must follow the document.
func extractKeyOrder(data []byte) map[string][]string {
	result := make(map[string][]string)
	dec := json.NewDecoder(strings.NewReader(string(data)))

	var extract func(path string)
	extract = func(path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(newPath)
			}
			_, _ = dec.Token()
			result[path] = keys
		case '[':
			for dec.More() {
				extract(path)
			}
			_, _ = dec.Token()
		}
	}
	extract("")

	return result
}
