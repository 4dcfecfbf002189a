// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import "fmt"

// UnresolvedNamespaceError reports a type reference pointing at a namespace
// absent from the package tree. This is a schema integrity bug, never
// silently defaulted.
type UnresolvedNamespaceError struct {
	Namespace string
	Type      string
}

func (e *UnresolvedNamespaceError) Error() string {
	return fmt.Sprintf("cannot resolve type %q: namespace %q not found", e.Type, e.Namespace)
}

// DuplicatePropertyNameError reports two properties of one object type
// sharing a name. It aborts that type's emission only.
type DuplicatePropertyNameError struct {
	Type     string
	Property string
}

func (e *DuplicatePropertyNameError) Error() string {
	return fmt.Sprintf("type %q declares property %q more than once", e.Type, e.Property)
}

// ImportAliasCollisionError reports two distinct namespaces resolving to the
// same alias within one referencing namespace. Both identities are carried
// for diagnostics.
type ImportAliasCollisionError struct {
	Alias       string
	Existing    string
	Conflicting string
}

func (e *ImportAliasCollisionError) Error() string {
	return fmt.Sprintf("import alias %q for namespace %q collides with namespace %q",
		e.Alias, e.Conflicting, e.Existing)
}
