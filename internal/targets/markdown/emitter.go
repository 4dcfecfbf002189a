// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown emits human-readable documentation for emission plans.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/targets"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"token":      token,
	"defaultVal": defaultVal,
	"yesNo":      yesNo,
}

var tmpl = template.Must(template.New("markdown.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.go.tmpl"))

func init() {
	targets.Register(&Emitter{})
}

// Emitter emits markdown documentation tables, one file per namespace.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (e *Emitter) FileExtension() string {
	return ".md"
}

type moduleData struct {
	Package   string
	Namespace string
	Plans     []*emit.EmissionPlan
}

// Emit renders one namespace as a markdown document.
func (e *Emitter) Emit(pkg string, module *emit.ModulePlan) ([]byte, error) {
	data := moduleData{
		Package:   pkg,
		Namespace: module.Namespace,
		Plans:     module.Plans,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

func token(ref emit.TypeReference) string {
	return "`" + ref.Token() + "`"
}

func defaultVal(policy emit.DefaultPolicy) string {
	if !policy.Inject {
		return ""
	}
	return fmt.Sprintf("`%v`", policy.Value)
}

func yesNo(optional bool) string {
	if optional {
		return "no"
	}
	return "yes"
}
