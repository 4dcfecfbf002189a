// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// toPascalCase converts a snake_case or kebab-case string to PascalCase for
// type name generation.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
