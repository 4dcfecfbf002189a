// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDuplicates(t *testing.T) {
	pkg := &Package{
		Name: "p",
		Namespaces: []*Namespace{
			{Path: "mod"},
			{Path: "mod"},
		},
	}
	err := Validate(pkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate namespace "mod"`)

	pkg = &Package{
		Name: "p",
		Namespaces: []*Namespace{
			{Path: "", Types: []*ObjectType{{Name: "T"}, {Name: "T"}}},
		},
	}
	err = Validate(pkg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate type "T"`)
}

func TestValidateTypeSpecVariants(t *testing.T) {
	str := TypeSpec{Name: "string"}
	tests := []struct {
		name  string
		spec  TypeSpec
		valid bool
	}{
		{"primitive", str, true},
		{"ref", TypeSpec{Ref: "mod/T"}, true},
		{"array", TypeSpec{Items: &str}, true},
		{"map", TypeSpec{AdditionalProperties: &str}, true},
		{"empty", TypeSpec{}, false},
		{"two variants", TypeSpec{Name: "string", Ref: "mod/T"}, false},
		{"bad nested element", TypeSpec{Items: &TypeSpec{Name: "float"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &Package{
				Name: "p",
				Namespaces: []*Namespace{
					{Path: "", Types: []*ObjectType{{
						Name:       "T",
						Properties: []*Property{{Name: "x", Type: tt.spec}},
					}}},
				},
			}
			err := Validate(pkg)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
