// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mattlk13/pulumi/internal/config"
	"github.com/Mattlk13/pulumi/internal/prompts"
	"github.com/Mattlk13/pulumi/internal/schema"
	"github.com/Mattlk13/pulumi/internal/session"
)

type initOptions struct {
	name           string
	schemaPath     string
	version        string
	createSchema   bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new sdkgen project in the current directory",
		Example: `  # Interactive mode
  sdkgen init

  # Non-interactive with a starter schema
  sdkgen init --name mypkg --schema schema.yaml --create-schema --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Package name")
	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Path to the schema file")
	cmd.Flags().StringVar(&opts.version, "package-version", "0.1.0", "Initial package version")
	cmd.Flags().BoolVar(&opts.createSchema, "create-schema", false, "Create a starter schema at the given path")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")

	return cmd
}

func runInit(opts *initOptions) error {
	if _, err := os.Stat(session.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists in this directory", session.ConfigFileName)
	}

	if opts.name == "" || opts.schemaPath == "" {
		if opts.nonInteractive {
			return fmt.Errorf("--name and --schema are required in non-interactive mode")
		}
		err := prompts.RunInitForm(&opts.name, &opts.schemaPath, &opts.version, &opts.createSchema)
		if err != nil {
			return err
		}
	}
	if opts.version == "" {
		opts.version = "0.1.0"
	}

	if opts.createSchema {
		if _, err := os.Stat(opts.schemaPath); err == nil {
			return fmt.Errorf("schema file %s already exists", opts.schemaPath)
		}
		if err := writeStarterSchema(opts.name, opts.version, opts.schemaPath); err != nil {
			return err
		}
	} else if _, err := os.Stat(opts.schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file %s does not exist", opts.schemaPath)
	}

	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  filepath.ToSlash(opts.schemaPath),
	}
	if err := cfg.Save(session.ConfigFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Package", Value: opts.name},
		{Label: "Schema", Value: opts.schemaPath},
		{Label: "Config", Value: session.ConfigFileName},
	}, "Project initialized. Run 'sdkgen generate' to build an SDK.")

	return nil
}

// writeStarterSchema creates a small example schema so a fresh project
// generates something meaningful right away.
func writeStarterSchema(name, version, path string) error {
	pkg := &schema.Package{
		Name:        name,
		Version:     version,
		Description: "An example schema package.",
		Namespaces: []*schema.Namespace{
			{
				Path: "",
				Types: []*schema.ObjectType{
					{
						Name:        "Greeting",
						Description: "A friendly greeting.",
						Properties: []*schema.Property{
							{
								Name:     "message",
								Type:     schema.TypeSpec{Name: "string"},
								Required: true,
							},
							{
								Name:    "language",
								Type:    schema.TypeSpec{Name: "string"},
								Default: &schema.DefaultValue{Value: "en"},
							},
						},
					},
				},
			},
		},
	}
	return pkg.Save(path)
}
