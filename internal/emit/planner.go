// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"github.com/Mattlk13/pulumi/internal/schema"
)

// DefaultPolicy describes construction-time defaulting for one property. The
// zero value means no default. When Inject is set, the wrapper shape assigns
// Value at construction only if the caller omitted the property; an explicit
// caller-supplied value, including an empty one, is never overridden.
type DefaultPolicy struct {
	Inject bool
	Value  any
}

// PlannedProperty is the planner's decision for one property: its resolved
// type reference, declared optionality, and defaulting policy. Defaults are
// carried as data, never materialized at plan time.
type PlannedProperty struct {
	Name               string
	Type               TypeReference
	Nullable           bool
	Default            DefaultPolicy
	Description        string
	DeprecationMessage string
}

// Plan resolves every property of the object type in declaration order.
// Every declared property yields exactly one PlannedProperty; nothing is
// reordered, deduplicated, or dropped. Planning is pure: the only failures
// are propagated resolution errors and duplicate property names.
func Plan(r *Resolver, ot *schema.ObjectType) ([]PlannedProperty, error) {
	seen := make(map[string]struct{}, len(ot.Properties))
	planned := make([]PlannedProperty, 0, len(ot.Properties))

	for _, prop := range ot.Properties {
		if _, ok := seen[prop.Name]; ok {
			return nil, &DuplicatePropertyNameError{Type: ot.Name, Property: prop.Name}
		}
		seen[prop.Name] = struct{}{}

		ref, err := r.Resolve(ot.Namespace, prop.Type)
		if err != nil {
			return nil, err
		}

		pp := PlannedProperty{
			Name: prop.Name,
			Type: ref,
			// A default affects the construction-time value, not the
			// declared optionality of the field.
			Nullable:           !prop.Required,
			Description:        prop.Description,
			DeprecationMessage: prop.DeprecationMessage,
		}
		if prop.Default != nil {
			pp.Default = DefaultPolicy{Inject: true, Value: prop.Default.Value}
		}

		planned = append(planned, pp)
	}

	return planned, nil
}
