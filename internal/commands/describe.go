// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mattlk13/pulumi/internal/prompts"
	"github.com/Mattlk13/pulumi/internal/session"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "describe",
		Short:   "Show a summary of the configured schema package",
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			pkg := ctx.Package
			fields := []prompts.ResultField{
				{Label: "Package", Value: pkg.Name},
				{Label: "Version", Value: pkg.Version},
			}
			if pkg.Description != "" {
				fields = append(fields, prompts.ResultField{Label: "Description", Value: pkg.Description})
			}
			fields = append(fields,
				prompts.ResultField{Label: "Namespaces", Value: fmt.Sprintf("%d", len(pkg.Namespaces))},
				prompts.ResultField{Label: "Types", Value: fmt.Sprintf("%d", len(pkg.ObjectTypes()))},
			)
			prompts.PrintResult(fields, "")

			for _, ns := range pkg.Namespaces {
				path := ns.Path
				if path == "" {
					path = "(root)"
				}
				fmt.Printf("\n  %s\n", path)
				for _, ot := range ns.Types {
					fmt.Printf("    %s (%d properties)\n", ot.Name, len(ot.Properties))
				}
			}
			return nil
		},
	}
}
