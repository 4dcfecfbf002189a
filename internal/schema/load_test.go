// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `
name: core
version: 1.2.0
description: Test package.
types:
  Config:
    properties:
      endpoint:
        type: string
      retries:
        type: integer
        default: 3
    required: [endpoint]
namespaces:
  mod1:
    types:
      Widget:
        description: A widget.
        properties:
          name:
            type: string
        required: [name]
  mod2:
    types:
      Gadget:
        properties:
          zeta:
            type: string
          alpha:
            type: integer
          widget:
            ref: mod1/Widget
          tags:
            items:
              type: string
          labels:
            additionalProperties:
              type: string
          val:
            type: string
            default: mod2
            deprecationMessage: use values instead
`

func TestParse(t *testing.T) {
	pkg, err := Parse(strings.NewReader(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "core", pkg.Name)
	assert.Equal(t, "1.2.0", pkg.Version)
	assert.Equal(t, "Test package.", pkg.Description)
	require.Len(t, pkg.Namespaces, 3)

	root := pkg.Namespaces[0]
	assert.Equal(t, "", root.Path)
	require.Len(t, root.Types, 1)
	config := root.Types[0]
	assert.Equal(t, "Config", config.Name)
	assert.Equal(t, "", config.Namespace)
	require.Len(t, config.Properties, 2)
	assert.True(t, config.Properties[0].Required)
	assert.False(t, config.Properties[1].Required)
	require.NotNil(t, config.Properties[1].Default)
	assert.Equal(t, 3, config.Properties[1].Default.Value)

	mod2 := pkg.Namespaces[2]
	assert.Equal(t, "mod2", mod2.Path)
	gadget := mod2.Types[0]
	assert.Equal(t, "mod2", gadget.Namespace)

	// Property order follows the document, not any sorted order.
	names := make([]string, 0, len(gadget.Properties))
	for _, prop := range gadget.Properties {
		names = append(names, prop.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "widget", "tags", "labels", "val"}, names)

	byName := make(map[string]*Property)
	for _, prop := range gadget.Properties {
		byName[prop.Name] = prop
	}
	assert.Equal(t, "mod1/Widget", byName["widget"].Type.Ref)
	require.NotNil(t, byName["tags"].Type.Items)
	assert.Equal(t, "string", byName["tags"].Type.Items.Name)
	require.NotNil(t, byName["labels"].Type.AdditionalProperties)
	assert.Equal(t, "use values instead", byName["val"].DeprecationMessage)
	require.NotNil(t, byName["val"].Default)
	assert.Equal(t, "mod2", byName["val"].Default.Value)
}

func TestParseOrderSurvivesManyProperties(t *testing.T) {
	// A type wide enough that map iteration would scramble it reliably.
	var sb strings.Builder
	sb.WriteString("name: wide\ntypes:\n  Big:\n    properties:\n")
	want := []string{"p9", "p3", "p7", "p0", "p5", "p1", "p8", "p2", "p6", "p4"}
	for _, name := range want {
		sb.WriteString("      " + name + ":\n        type: string\n")
	}

	pkg, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	got := make([]string, 0, len(want))
	for _, prop := range pkg.Namespaces[0].Types[0].Properties {
		got = append(got, prop.Name)
	}
	assert.Equal(t, want, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: "empty schema document",
		},
		{
			name:    "missing package name",
			doc:     "version: 1.0.0\n",
			wantErr: "package name is required",
		},
		{
			name: "required names unknown property",
			doc: `
name: p
types:
  T:
    properties:
      a:
        type: string
    required: [ghost]
`,
			wantErr: `required property "ghost" not declared`,
		},
		{
			name: "default on required property",
			doc: `
name: p
types:
  T:
    properties:
      a:
        type: string
        default: x
    required: [a]
`,
			wantErr: "must not be required",
		},
		{
			name: "unknown primitive",
			doc: `
name: p
types:
  T:
    properties:
      a:
        type: float
`,
			wantErr: `unknown primitive type "float"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
