// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mattlk13/pulumi/internal/prompts"
	"github.com/Mattlk13/pulumi/internal/schema"
)

type importOptions struct {
	name   string
	output string
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <json-schema-file>",
		Short: "Convert a JSON Schema document into a schema package",
		Long: `Convert a JSON Schema document into a schema package.

Objects under $defs become types in the root namespace. Inline object
definitions are extracted into their own types.`,
		Example: `  sdkgen import api.schema.json --name api --output schema.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Package name (defaults to the schema title)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "schema.yaml", "Output schema file")

	return cmd
}

func runImport(path string, opts *importOptions) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	pkg, err := schema.FromJSONSchema(opts.name, data)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	if err := schema.Validate(pkg); err != nil {
		return fmt.Errorf("imported package is invalid: %w", err)
	}

	if err := pkg.Save(opts.output); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	typeCount := len(pkg.ObjectTypes())
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Package", Value: pkg.Name},
		{Label: "Types", Value: fmt.Sprintf("%d", typeCount)},
		{Label: "Schema", Value: opts.output},
	}, "Import complete")

	return nil
}
