// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python emits Python source for emission plans: a TypedDict plain
// shape and a property-bag wrapper class per object type.
package python

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/targets"
)

// typeString renders a type reference as a Python annotation. The plain flag
// selects the TypedDict form of object references; the wrapper form is used
// in constructor signatures and accessors.
func typeString(ref emit.TypeReference, plain bool) string {
	suffix := "Args"
	if plain {
		suffix = "ArgsDict"
	}

	switch ref.Kind {
	case emit.KindPrimitive:
		return "_builtins." + primitive(ref.Primitive)
	case emit.KindLocal:
		// Quoted so forward references within the module never need
		// source-order tricks.
		return "'" + ref.Target + suffix + "'"
	case emit.KindAliased:
		return "'" + ref.Alias + "." + ref.Target + suffix + "'"
	case emit.KindExternal:
		return "'" + externalModule(ref) + "." + ref.Target + suffix + "'"
	case emit.KindArray:
		return "Sequence[" + typeString(*ref.Elem, plain) + "]"
	case emit.KindMap:
		return "Mapping[str, " + typeString(*ref.Elem, plain) + "]"
	}
	return "Any"
}

func primitive(name string) string {
	switch name {
	case "string":
		return "str"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	default:
		return "str"
	}
}

// externalModule renders the fully qualified module of a foreign package
// reference, e.g. "other_pkg.mod1".
func externalModule(ref emit.TypeReference) string {
	module := pythonPackage(ref.Package)
	if ref.Namespace != "" {
		module += "." + strings.ReplaceAll(ref.Namespace, "/", ".")
	}
	return module
}

// pythonPackage converts a package name to a Python package identifier.
func pythonPackage(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "-", "_"), "/", ".")
}

// literal renders a default value as a Python literal.
func literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "\\'") + "'"
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = literal(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = literal(k) + ": " + literal(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// relativeImport renders the "from" clause of a sibling-namespace import
// relative to the referencing namespace, e.g. ".." for a root-level sibling
// seen from a first-level module.
func relativeImport(referencing, target string) string {
	depth := 0
	if referencing != "" {
		depth = strings.Count(referencing, "/") + 1
	}
	from := strings.Repeat(".", depth+1)

	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		from += strings.ReplaceAll(target[:idx], "/", ".")
	}
	return from
}

// moduleLeaf returns the imported module name of a namespace path. The root
// namespace has no directory of its own; its types live in the module file at
// the package root, so that file's name is the importable module.
func moduleLeaf(target string) string {
	if target == "" {
		return targets.ModuleFile
	}
	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		return target[idx+1:]
	}
	return target
}
