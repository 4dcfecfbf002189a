// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/prompts"
	"github.com/Mattlk13/pulumi/internal/session"
	"github.com/Mattlk13/pulumi/internal/targets"
)

type generateOptions struct {
	languages string
	output    string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate SDK source for the configured schema package",
		Long: fmt.Sprintf(`Generate SDK source for the configured schema package.

Available languages: %s`, strings.Join(targets.Available(), ", ")),
		Example: `  # Interactive mode
  sdkgen generate

  # Generate a Python SDK
  sdkgen generate --language python

  # Generate multiple languages into a custom directory
  sdkgen generate --language python,go --output out/sdk`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.languages, "language", "l", "", fmt.Sprintf("Target language(s), comma-separated (%s)", strings.Join(targets.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured output)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	languages := splitList(opts.languages)
	if len(languages) == 0 {
		languages = ctx.Config.Languages
	}
	for _, lang := range languages {
		if _, err := targets.Get(lang); err != nil {
			return err
		}
	}

	output := opts.output
	if output == "" {
		output = ctx.Config.OutputDir()
	}

	err = prompts.RunGenerateForm(
		&languages, &output,
		!cmd.Flags().Changed("output") && ctx.Config.Output == "",
		targets.Available(),
	)
	if err != nil {
		return err
	}
	if len(languages) == 0 {
		return fmt.Errorf("no languages selected")
	}

	plans, planErr := emit.PlanPackage(ctx.Package)
	if planErr != nil {
		// Every failing type is reported in one run; the successfully
		// planned types are still emitted below.
		prompts.PrintFailure(planErr.Error())
	}

	modules := emit.Modules(plans)

	fmt.Printf("Generating %d language(s) for %d type(s)...\n", len(languages), len(plans))

	var results []prompts.ResultField
	for _, lang := range languages {
		emitter, err := targets.Get(lang)
		if err != nil {
			return err
		}

		count := 0
		for _, module := range modules {
			source, err := emitter.Emit(ctx.Package.Name, module)
			if err != nil {
				return fmt.Errorf("%s: namespace %q: %w", lang, module.Namespace, err)
			}

			files := map[string][]byte{targets.ModuleFile + emitter.FileExtension(): source}
			if packager, ok := emitter.(targets.Packager); ok {
				companions, err := packager.PackageFiles(ctx.Package.Name, module)
				if err != nil {
					return fmt.Errorf("%s: namespace %q: %w", lang, module.Namespace, err)
				}
				for name, content := range companions {
					files[name] = content
				}
			}
			if err := writeModule(output, lang, module.Namespace, files); err != nil {
				return err
			}
			count++
		}

		results = append(results, prompts.ResultField{
			Label: lang,
			Value: fmt.Sprintf("%d file(s) in %s", count, filepath.Join(output, lang)),
		})
	}

	prompts.PrintResult(results, "Generation complete")

	if planErr != nil {
		return fmt.Errorf("some types failed to generate")
	}
	return nil
}

// writeModule writes one namespace's emitted files under
// <output>/<language>/<namespace path>/.
func writeModule(output, lang, namespace string, files map[string][]byte) error {
	dir := filepath.Join(output, lang, filepath.FromSlash(namespace))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
