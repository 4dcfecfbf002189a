// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package golang emits Go source for emission plans: a plain struct and an
// Args wrapper struct with accessors and a Defaults method per object type.
package golang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Mattlk13/pulumi/internal/emit"
)

// typeString renders a type reference as a Go type. The plain flag selects
// the plain struct name of object references; the wrapper form appends Args.
func typeString(ref emit.TypeReference, plain bool) string {
	suffix := "Args"
	if plain {
		suffix = ""
	}

	switch ref.Kind {
	case emit.KindPrimitive:
		return primitive(ref.Primitive)
	case emit.KindLocal:
		return ref.Target + suffix
	case emit.KindAliased:
		return importName(ref.Alias) + "." + ref.Target + suffix
	case emit.KindExternal:
		return externalName(ref) + "." + ref.Target + suffix
	case emit.KindArray:
		return "[]" + typeString(*ref.Elem, plain)
	case emit.KindMap:
		return "map[string]" + typeString(*ref.Elem, plain)
	}
	return "any"
}

func primitive(name string) string {
	switch name {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	default:
		return "any"
	}
}

// importName converts a canonical namespace alias to a Go package identifier.
func importName(alias string) string {
	return identifier(strings.TrimPrefix(alias, "_"))
}

func externalName(ref emit.TypeReference) string {
	if ref.Namespace == "" {
		return identifier(ref.Package)
	}
	return identifier(leaf(ref.Namespace))
}

// identifier converts a name to a valid Go package identifier.
func identifier(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", ".", "").Replace(s))
}

func leaf(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// defaultExpr renders a default value as a Go expression typed to match the
// field. Defaults on object-typed fields have no Go literal form and are
// reported as unsupported.
func defaultExpr(ref emit.TypeReference, v any) (string, bool) {
	switch ref.Kind {
	case emit.KindPrimitive:
		return primitiveExpr(ref.Primitive, v)
	case emit.KindArray:
		items, ok := v.([]any)
		if !ok {
			return "", false
		}
		parts := make([]string, len(items))
		for i, item := range items {
			expr, ok := defaultExpr(*ref.Elem, item)
			if !ok {
				return "", false
			}
			parts[i] = expr
		}
		return typeString(ref, false) + "{" + strings.Join(parts, ", ") + "}", true
	case emit.KindMap:
		entries, ok := v.(map[string]any)
		if !ok {
			return "", false
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			expr, ok := defaultExpr(*ref.Elem, entries[k])
			if !ok {
				return "", false
			}
			parts[i] = strconv.Quote(k) + ": " + expr
		}
		return typeString(ref, false) + "{" + strings.Join(parts, ", ") + "}", true
	}
	return "", false
}

func primitiveExpr(name string, v any) (string, bool) {
	switch name {
	case "string":
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		return strconv.Quote(s), true
	case "boolean":
		b, ok := v.(bool)
		if !ok {
			return "", false
		}
		return strconv.FormatBool(b), true
	case "integer":
		switch n := v.(type) {
		case int:
			return strconv.Itoa(n), true
		case int64:
			return strconv.FormatInt(n, 10), true
		case float64:
			return strconv.FormatInt(int64(n), 10), true
		}
		return "", false
	case "number":
		switch n := v.(type) {
		case int:
			return fmt.Sprintf("float64(%d)", n), true
		case int64:
			return fmt.Sprintf("float64(%d)", n), true
		case float64:
			return "float64(" + strconv.FormatFloat(n, 'g', -1, 64) + ")", true
		}
		return "", false
	}
	return "", false
}

// toPascalCase converts a snake_case or camelCase string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	// Common Go acronyms that should be fully uppercased.
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"tcp":  "TCP",
		"udp":  "UDP",
		"tls":  "TLS",
		"ssl":  "SSL",
		"ssh":  "SSH",
		"cpu":  "CPU",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
