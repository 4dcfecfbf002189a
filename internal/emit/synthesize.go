// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"fmt"

	"github.com/Mattlk13/pulumi/internal/schema"
)

// ShapeField is one structural field of the plain shape: directly present or
// absent, no accessor logic, no defaulting behavior.
type ShapeField struct {
	Name        string
	Type        TypeReference
	Optional    bool
	Description string
}

// WrapperField is one field of the wrapper shape: an accessor pair over the
// wrapper's internal property bag, plus the construction-time default policy.
type WrapperField struct {
	ShapeField
	Default            DefaultPolicy
	DeprecationMessage string
}

// Imports is the resolved import snapshot of the emitting namespace.
type Imports struct {
	Namespaces []NamespaceImport
	Packages   []string
}

// EmissionPlan is the synthesizer's output for one object type: two parallel
// field lists with identical identities and ordering, differing only in
// representation. It is immutable once produced and consumed exactly once by
// a target emitter.
type EmissionPlan struct {
	Type        string
	Namespace   string
	Description string
	Plain       []ShapeField
	Wrapper     []WrapperField
	Imports     Imports
}

// Synthesize combines planned properties into the dual-shape plan. Parity
// between the shapes holds by construction; CheckParity makes it checkable.
func Synthesize(ot *schema.ObjectType, planned []PlannedProperty) *EmissionPlan {
	plan := &EmissionPlan{
		Type:        ot.Name,
		Namespace:   ot.Namespace,
		Description: ot.Description,
		Plain:       make([]ShapeField, 0, len(planned)),
		Wrapper:     make([]WrapperField, 0, len(planned)),
	}

	for _, pp := range planned {
		field := ShapeField{
			Name:        pp.Name,
			Type:        pp.Type,
			Optional:    pp.Nullable,
			Description: pp.Description,
		}
		plan.Plain = append(plan.Plain, field)
		plan.Wrapper = append(plan.Wrapper, WrapperField{
			ShapeField:         field,
			Default:            pp.Default,
			DeprecationMessage: pp.DeprecationMessage,
		})
	}

	return plan
}

// CheckParity verifies that the plain and wrapper shapes expose the same
// field names in the same order.
func (p *EmissionPlan) CheckParity() error {
	if len(p.Plain) != len(p.Wrapper) {
		return fmt.Errorf("type %q: plain shape has %d fields, wrapper shape has %d",
			p.Type, len(p.Plain), len(p.Wrapper))
	}
	for i := range p.Plain {
		if p.Plain[i].Name != p.Wrapper[i].Name {
			return fmt.Errorf("type %q: field %d is %q in the plain shape but %q in the wrapper shape",
				p.Type, i, p.Plain[i].Name, p.Wrapper[i].Name)
		}
	}
	return nil
}
