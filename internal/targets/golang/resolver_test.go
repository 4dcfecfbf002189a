// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"testing"

	"github.com/Mattlk13/pulumi/internal/emit"
)

func TestTypeString(t *testing.T) {
	num := emit.TypeReference{Kind: emit.KindPrimitive, Primitive: "number"}
	tests := []struct {
		name  string
		ref   emit.TypeReference
		plain bool
		want  string
	}{
		{"number", num, false, "float64"},
		{"local plain", emit.TypeReference{Kind: emit.KindLocal, Target: "Widget"}, true, "Widget"},
		{"local wrapper", emit.TypeReference{Kind: emit.KindLocal, Target: "Widget"}, false, "WidgetArgs"},
		{
			"aliased",
			emit.TypeReference{Kind: emit.KindAliased, Target: "Widget", Namespace: "mod1", Alias: "_mod1"},
			false,
			"mod1.WidgetArgs",
		},
		{"array", emit.TypeReference{Kind: emit.KindArray, Elem: &num}, true, "[]float64"},
		{"map", emit.TypeReference{Kind: emit.KindMap, Elem: &num}, true, "map[string]float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeString(tt.ref, tt.plain); got != tt.want {
				t.Errorf("typeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultExpr(t *testing.T) {
	str := emit.TypeReference{Kind: emit.KindPrimitive, Primitive: "string"}
	num := emit.TypeReference{Kind: emit.KindPrimitive, Primitive: "number"}
	integer := emit.TypeReference{Kind: emit.KindPrimitive, Primitive: "integer"}

	tests := []struct {
		name   string
		ref    emit.TypeReference
		value  any
		want   string
		wantOK bool
	}{
		{"string", str, "mod2", `"mod2"`, true},
		{"integer from yaml", integer, 3, "3", true},
		{"integer from json", integer, float64(3), "3", true},
		{"number", num, 2.5, "float64(2.5)", true},
		{"boolean", emit.TypeReference{Kind: emit.KindPrimitive, Primitive: "boolean"}, true, "true", true},
		{"string type mismatch", str, 3, "", false},
		{
			"array",
			emit.TypeReference{Kind: emit.KindArray, Elem: &str},
			[]any{"a", "b"},
			`[]string{"a", "b"}`,
			true,
		},
		{
			"map sorted",
			emit.TypeReference{Kind: emit.KindMap, Elem: &integer},
			map[string]any{"b": 2, "a": 1},
			`map[string]int{"a": 1, "b": 2}`,
			true,
		},
		{
			"object unsupported",
			emit.TypeReference{Kind: emit.KindLocal, Target: "Inner"},
			map[string]any{},
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := defaultExpr(tt.ref, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("defaultExpr() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("defaultExpr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"api_name", "APIName"},
		{"max_attempts", "MaxAttempts"},
		{"url", "URL"},
		{"server-host", "ServerHost"},
		{"already", "Already"},
	}
	for _, tt := range tests {
		if got := toPascalCase(tt.in); got != tt.want {
			t.Errorf("toPascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
