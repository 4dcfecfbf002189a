// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mattlk13/pulumi/internal/targets"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported target languages",
		Run: func(cmd *cobra.Command, args []string) {
			for _, lang := range targets.Available() {
				emitter, err := targets.Get(lang)
				if err != nil {
					continue
				}
				fmt.Printf("%-10s (%s)\n", lang, emitter.FileExtension())
			}
		},
	}
}
