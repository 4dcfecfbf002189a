// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	// Import emitters to auto-register.
	_ "github.com/Mattlk13/pulumi/internal/targets/golang"
	_ "github.com/Mattlk13/pulumi/internal/targets/markdown"
	_ "github.com/Mattlk13/pulumi/internal/targets/python"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdkgen",
		Short: "Generate SDK types from a resource-schema package",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
