// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for any generation inputs the user did not supply
// as flags. Pointers already holding values leave the corresponding group
// hidden.
func RunGenerateForm(languages *[]string, output *string, promptOutput bool, available []string) error {
	needLanguages := len(*languages) == 0

	options := make([]huh.Option[string], len(available))
	for i, lang := range available {
		options[i] = huh.NewOption(lang, lang)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Target languages").
				Options(options...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return errors.New("select at least one language")
					}
					return nil
				}).
				Value(languages),
		).WithHideFunc(func() bool { return !needLanguages }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("sdk").
				Value(output),
		).WithHideFunc(func() bool { return !promptOutput }),
	).WithTheme(Theme())

	if !needLanguages && !promptOutput {
		return nil
	}
	return form.Run()
}
