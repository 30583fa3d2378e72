package main

import (
	"fmt"

	"github.com/fwojciec/resumer"
)

// loadPage loads url and extracts its readable text. Pages without enough
// content are reported as ENOTFOUND.
func loadPage(deps *Dependencies, url string) (*resumer.ExtractResult, error) {
	doc, err := deps.Loader.Load(deps.Ctx, url)
	if err != nil {
		return nil, err
	}

	result := deps.Extractor.Extract(doc)
	if resumer.IsInsufficient(result.Content) {
		return nil, resumer.Errorf(resumer.ENOTFOUND, "no content could be extracted from this page")
	}
	if result.PageInfo.URL == "" {
		result.PageInfo.URL = url
	}
	return result, nil
}

// language returns the requested language, or the configured one when
// flag is empty.
func language(deps *Dependencies, flag string) (resumer.Language, error) {
	if flag != "" {
		lang := resumer.Language(flag)
		if !lang.Valid() {
			return "", resumer.Errorf(resumer.EINVALID, "unsupported language %q (use en or id)", flag)
		}
		return lang, nil
	}

	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		return "", err
	}
	return settings.Language, nil
}

// fail prints the user-facing message of err and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", resumer.ErrorMessage(err))
	return err
}
