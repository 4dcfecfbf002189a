// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package targets provides the per-language emitter registry. Emitters turn
// language-agnostic emission plans into concrete source text.
package targets

import (
	"fmt"
	"sort"

	"github.com/Mattlk13/pulumi/internal/emit"
)

// ModuleFile is the base name of the file emitted for each namespace. Emitters
// that reference sibling namespaces by module name rely on it.
const ModuleFile = "types"

// Emitter defines the interface all language emitters must implement.
type Emitter interface {
	// Name returns the emitter's identifier (e.g., "python", "go")
	Name() string

	// Emit renders one namespace's emission plans as source text.
	// pkg is the schema package name, used for headers and import paths.
	Emit(pkg string, module *emit.ModulePlan) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".py", ".go")
	FileExtension() string
}

// Packager is implemented by emitters whose output forms a package and needs
// companion files written next to each emitted module.
type Packager interface {
	PackageFiles(pkg string, module *emit.ModulePlan) (map[string][]byte, error)
}

var emitters = make(map[string]Emitter)

// Register adds an emitter to the registry.
func Register(e Emitter) {
	emitters[e.Name()] = e
}

// Get retrieves an emitter by name.
func Get(name string) (Emitter, error) {
	e, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", name)
	}
	return e, nil
}

// Available returns all registered emitter names, sorted.
func Available() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
