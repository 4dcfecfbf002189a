// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/targets"
)

//go:embed python.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "python.go.tmpl"))

func init() {
	targets.Register(&Emitter{})
}

// Emitter emits Python modules with a TypedDict plain shape and a wrapper
// class per object type.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "python"
}

// FileExtension returns the file extension for Python files.
func (e *Emitter) FileExtension() string {
	return ".py"
}

type moduleData struct {
	Imports  []importData
	Packages []string
	All      []string
	Types    []typeData
}

type importData struct {
	From   string
	Module string
	Alias  string
}

type typeData struct {
	Name        string
	Description string
	Fields      []fieldData
}

type fieldData struct {
	Name        string
	PlainType   string
	ParamType   string
	Optional    bool
	HasDefault  bool
	Default     string
	Deprecation string
}

// Emit renders one namespace as a Python module.
func (e *Emitter) Emit(pkg string, module *emit.ModulePlan) ([]byte, error) {
	data := moduleData{}

	for _, imp := range module.Imports.Namespaces {
		data.Imports = append(data.Imports, importData{
			From:   relativeImport(module.Namespace, imp.Namespace),
			Module: moduleLeaf(imp.Namespace),
			Alias:  imp.Alias,
		})
	}
	for _, foreign := range module.Imports.Packages {
		data.Packages = append(data.Packages, pythonPackage(foreign))
	}

	for _, plan := range module.Plans {
		data.All = append(data.All, plan.Type+"Args", plan.Type+"ArgsDict")
		data.Types = append(data.Types, planData(plan))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "python.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// PackageFiles returns the __init__.py that turns each emitted namespace
// directory into an importable Python package re-exporting its types module.
func (e *Emitter) PackageFiles(pkg string, module *emit.ModulePlan) (map[string][]byte, error) {
	init := "# coding=utf-8\n" +
		"# *** WARNING: this file was generated by sdkgen. ***\n" +
		"# *** Do not edit by hand unless you're certain you know what you are doing! ***\n\n" +
		"from ." + targets.ModuleFile + " import *\n"
	return map[string][]byte{"__init__.py": []byte(init)}, nil
}

func planData(plan *emit.EmissionPlan) typeData {
	td := typeData{
		Name:        plan.Type,
		Description: plan.Description,
	}

	// Field parity between the shapes lets one fieldData serve both; the
	// plain annotation and the wrapper annotation are rendered side by side.
	for _, field := range plan.Wrapper {
		fd := fieldData{
			Name:        field.Name,
			Optional:    field.Optional,
			ParamType:   typeString(field.Type, false),
			Deprecation: field.DeprecationMessage,
		}

		plainType := typeString(field.Type, true)
		if field.Optional {
			fd.PlainType = "NotRequired[" + plainType + "]"
			fd.ParamType = "Optional[" + fd.ParamType + "]"
		} else {
			fd.PlainType = plainType
		}

		if field.Default.Inject {
			fd.HasDefault = true
			fd.Default = literal(field.Default.Value)
		}

		td.Fields = append(td.Fields, fd)
	}

	return td
}
