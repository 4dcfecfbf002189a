// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
)

var primitives = map[string]struct{}{
	"string":  {},
	"integer": {},
	"number":  {},
	"boolean": {},
}

// Validate checks package-level invariants: namespace paths and type names are
// unique, every type spec declares exactly one variant, primitives are known,
// and a property carrying a default is not required.
func Validate(pkg *Package) error {
	if pkg.Name == "" {
		return errors.New("package name is required")
	}

	seenNS := make(map[string]struct{})
	for _, ns := range pkg.Namespaces {
		if _, ok := seenNS[ns.Path]; ok {
			return fmt.Errorf("duplicate namespace %q", ns.Path)
		}
		seenNS[ns.Path] = struct{}{}

		seenTypes := make(map[string]struct{})
		for _, ot := range ns.Types {
			if _, ok := seenTypes[ot.Name]; ok {
				return fmt.Errorf("namespace %q: duplicate type %q", ns.Path, ot.Name)
			}
			seenTypes[ot.Name] = struct{}{}

			if err := validateType(ot); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateType(ot *ObjectType) error {
	for _, prop := range ot.Properties {
		if err := validateTypeSpec(prop.Type); err != nil {
			return fmt.Errorf("type %q, property %q: %w", ot.Name, prop.Name, err)
		}
		if prop.Default != nil && prop.Required {
			return fmt.Errorf("type %q, property %q: a property with a default must not be required", ot.Name, prop.Name)
		}
	}
	return nil
}

func validateTypeSpec(spec TypeSpec) error {
	set := 0
	if spec.Name != "" {
		set++
	}
	if spec.Ref != "" {
		set++
	}
	if spec.Items != nil {
		set++
	}
	if spec.AdditionalProperties != nil {
		set++
	}
	if set != 1 {
		return errors.New("exactly one of type, ref, items, or additionalProperties must be set")
	}

	if spec.Name != "" {
		if _, ok := primitives[spec.Name]; !ok {
			return fmt.Errorf("unknown primitive type %q", spec.Name)
		}
	}
	if spec.Items != nil {
		return validateTypeSpec(*spec.Items)
	}
	if spec.AdditionalProperties != nil {
		return validateTypeSpec(*spec.AdditionalProperties)
	}
	return nil
}
