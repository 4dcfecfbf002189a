// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mattlk13/pulumi/internal/schema"
)

func TestSynthesizeDualShapes(t *testing.T) {
	r := NewResolver(testPackage())
	ot := &schema.ObjectType{
		Name:        "Gadget",
		Namespace:   "mod2",
		Description: "A gadget.",
		Properties: []*schema.Property{
			{Name: "name", Type: schema.TypeSpec{Name: "string"}, Required: true, Description: "Display name."},
			{Name: "val", Type: schema.TypeSpec{Name: "string"}, Default: &schema.DefaultValue{Value: "mod2"}},
			{Name: "widget", Type: schema.TypeSpec{Ref: "mod1/Widget"}, DeprecationMessage: "use widgets instead"},
		},
	}

	planned, err := Plan(r, ot)
	require.NoError(t, err)

	plan := Synthesize(ot, planned)
	require.NoError(t, plan.CheckParity())

	assert.Equal(t, "Gadget", plan.Type)
	assert.Equal(t, "mod2", plan.Namespace)
	assert.Equal(t, "A gadget.", plan.Description)
	require.Len(t, plan.Plain, 3)
	require.Len(t, plan.Wrapper, 3)

	// The shapes agree on identity, type, and optionality per field.
	for i := range plan.Plain {
		assert.Equal(t, plan.Plain[i].Name, plan.Wrapper[i].Name)
		assert.Equal(t, plan.Plain[i].Type, plan.Wrapper[i].Type)
		assert.Equal(t, plan.Plain[i].Optional, plan.Wrapper[i].Optional)
	}

	assert.False(t, plan.Plain[0].Optional)
	assert.True(t, plan.Plain[1].Optional)

	// Defaulting and deprecation live on the wrapper shape only.
	assert.True(t, plan.Wrapper[1].Default.Inject)
	assert.Equal(t, "mod2", plan.Wrapper[1].Default.Value)
	assert.Equal(t, "use widgets instead", plan.Wrapper[2].DeprecationMessage)
}

func TestSynthesizeEmptyType(t *testing.T) {
	ot := &schema.ObjectType{Name: "Empty", Namespace: "mod1"}

	plan := Synthesize(ot, nil)
	require.NoError(t, plan.CheckParity())
	assert.Empty(t, plan.Plain)
	assert.Empty(t, plan.Wrapper)
}

func TestCheckParityDetectsDrift(t *testing.T) {
	plan := &EmissionPlan{
		Type:    "Drifted",
		Plain:   []ShapeField{{Name: "a"}},
		Wrapper: []WrapperField{{ShapeField: ShapeField{Name: "b"}}},
	}
	assert.Error(t, plan.CheckParity())

	plan = &EmissionPlan{
		Type:  "Short",
		Plain: []ShapeField{{Name: "a"}},
	}
	assert.Error(t, plan.CheckParity())
}
