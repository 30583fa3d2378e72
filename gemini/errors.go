package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/resumer"
	"google.golang.org/genai"
)

// TranslateError maps Gemini API and context errors to application errors
// with messages suitable for end users.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return resumer.Errorf(resumer.ETIMEOUT, "Request timed out. Please try again.")
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch code := apiErr.Code; {
	case code == http.StatusBadRequest:
		return resumer.Errorf(resumer.EINVALID, "Bad request: Please check your API key or try again later. %s", apiErr.Message)
	case code == http.StatusUnauthorized:
		return resumer.Errorf(resumer.EUNAUTHORIZED, "Invalid API key. Please check your API key in settings.")
	case code == http.StatusForbidden:
		return resumer.Errorf(resumer.EFORBIDDEN, "API access forbidden. Your API key might have insufficient permissions.")
	case code == http.StatusTooManyRequests:
		return resumer.Errorf(resumer.ERATELIMIT, "Rate limit exceeded. Please try again later.")
	case code >= http.StatusInternalServerError:
		return resumer.Errorf(resumer.EUNAVAILABLE, "Gemini AI service currently unavailable. Please try again later.")
	}

	if apiErr.Message != "" {
		return resumer.Errorf(resumer.EINTERNAL, "%s", apiErr.Message)
	}
	return resumer.Errorf(resumer.EINTERNAL, "API request failed with status %d", apiErr.Code)
}
