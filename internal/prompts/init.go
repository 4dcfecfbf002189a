// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(name, schemaPath, version *string, createSchema *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Package name").
				Validate(identifierValidator).
				Value(name),
			huh.NewInput().
				Title("Version").
				Placeholder("0.1.0").
				Value(version),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Schema source").
				Options(
					huh.NewOption("Create a starter schema", true),
					huh.NewOption("Use an existing schema file", false),
				).
				Height(3).
				Value(createSchema),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string {
					if *createSchema {
						return "Path for new schema"
					}
					return "Path to existing schema"
				}, createSchema).
				PlaceholderFunc(func() string {
					if *createSchema {
						return "schema.yaml"
					}
					return ""
				}, createSchema).
				Validate(requiredValidator("schema path")).
				Value(schemaPath),
		),
	).WithTheme(Theme()).Run()
}
