package resumer

import (
	"context"
	"strings"
)

// MinAPIKeyLength is the shortest API key accepted.
const MinAPIKeyLength = 10

// Settings holds user preferences.
type Settings struct {
	APIKey   string   `json:"apiKey"`
	Language Language `json:"language"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() *Settings {
	return &Settings{Language: LanguageEnglish}
}

// ValidateAPIKey returns an error unless the key looks like a usable API key.
func ValidateAPIKey(key string) error {
	if len(strings.TrimSpace(key)) < MinAPIKeyLength {
		return Errorf(EINVALID, "API key should be at least %d characters long", MinAPIKeyLength)
	}
	return nil
}

// SettingsService represents a service for managing settings.
type SettingsService interface {
	// FindSettings returns the stored settings, or DefaultSettings if none.
	FindSettings(ctx context.Context) (*Settings, error)

	// UpdateSettings validates and stores the given fields.
	UpdateSettings(ctx context.Context, upd SettingsUpdate) (*Settings, error)
}

// SettingsUpdate represents fields that can be updated on settings.
type SettingsUpdate struct {
	APIKey   *string   `json:"apiKey"`
	Language *Language `json:"language"`
}
