// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/targets"
)

//go:embed golang.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "golang.go.tmpl"))

func init() {
	targets.Register(&Emitter{})
}

// Emitter emits Go packages with a plain struct and an Args wrapper struct
// per object type.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "go"
}

// FileExtension returns the file extension for Go source files.
func (e *Emitter) FileExtension() string {
	return ".go"
}

type moduleData struct {
	Package string
	Imports []importData
	Types   []typeData
}

type importData struct {
	Name string
	Path string
}

type typeData struct {
	Name        string
	Description string
	Fields      []fieldData
	HasDefaults bool
}

type fieldData struct {
	GoName      string
	Name        string
	PlainType   string
	ArgsType    string
	Tag         string
	Optional    bool
	Pointer     bool
	HasDefault  bool
	DefaultExpr string
	Deprecation string
}

// Emit renders one namespace as a Go package file.
func (e *Emitter) Emit(pkg string, module *emit.ModulePlan) ([]byte, error) {
	data := moduleData{Package: packageName(pkg, module.Namespace)}

	for _, imp := range module.Imports.Namespaces {
		data.Imports = append(data.Imports, importData{
			Name: importName(imp.Alias),
			Path: path.Join(identifier(pkg), imp.Namespace),
		})
	}
	for _, foreign := range module.Imports.Packages {
		data.Imports = append(data.Imports, importData{
			Name: identifier(foreign),
			Path: identifier(foreign),
		})
	}

	for _, plan := range module.Plans {
		td, err := planData(plan)
		if err != nil {
			return nil, err
		}
		data.Types = append(data.Types, td)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "golang.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

func packageName(pkg, namespace string) string {
	if namespace == "" {
		return identifier(pkg)
	}
	return identifier(leaf(namespace))
}

func planData(plan *emit.EmissionPlan) (typeData, error) {
	td := typeData{
		Name:        plan.Type,
		Description: plan.Description,
	}

	for _, field := range plan.Wrapper {
		fd := fieldData{
			GoName:      toPascalCase(field.Name),
			Name:        field.Name,
			PlainType:   typeString(field.Type, true),
			ArgsType:    typeString(field.Type, false),
			Optional:    field.Optional,
			Deprecation: field.DeprecationMessage,
		}

		tag := field.Name
		if field.Optional {
			tag += ",omitempty"
			// Slices and maps are already absent-capable; scalars and
			// structs need a pointer to distinguish unset from zero.
			if field.Type.Kind != emit.KindArray && field.Type.Kind != emit.KindMap {
				fd.Pointer = true
				fd.PlainType = "*" + fd.PlainType
				fd.ArgsType = "*" + fd.ArgsType
			}
		}
		fd.Tag = "`json:\"" + tag + "\"`"

		if field.Default.Inject {
			expr, ok := defaultExpr(field.Type, field.Default.Value)
			if !ok {
				return typeData{}, fmt.Errorf("type %s, property %s: default value %v has no Go literal form",
					plan.Type, field.Name, field.Default.Value)
			}
			fd.HasDefault = true
			fd.DefaultExpr = expr
			td.HasDefaults = true
		}

		td.Fields = append(td.Fields, fd)
	}

	return td, nil
}
