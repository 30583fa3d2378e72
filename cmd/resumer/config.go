package main

import (
	"fmt"

	"github.com/fwojciec/resumer"
)

// Run executes the config show command.
func (c *ConfigShowCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		return fail(deps, err)
	}

	key := maskKey(settings.APIKey)
	if deps.EnvAPIKey != "" {
		key = maskKey(deps.EnvAPIKey) + " (from GEMINI_API_KEY)"
	}

	fmt.Fprintf(deps.Stdout, "api key:  %s\n", key)
	fmt.Fprintf(deps.Stdout, "language: %s\n", settings.Language)
	return nil
}

// Run executes the config set-key command.
func (c *ConfigSetKeyCmd) Run(deps *Dependencies) error {
	if _, err := deps.Settings.UpdateSettings(deps.Ctx, resumer.SettingsUpdate{APIKey: &c.Key}); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, "API key saved")
	return nil
}

// Run executes the config set-lang command.
func (c *ConfigSetLangCmd) Run(deps *Dependencies) error {
	lang := resumer.Language(c.Lang)
	if _, err := deps.Settings.UpdateSettings(deps.Ctx, resumer.SettingsUpdate{Language: &lang}); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Language set to %s\n", lang)
	return nil
}

// maskKey hides all but the ends of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
