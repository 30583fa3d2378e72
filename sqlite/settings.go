package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/resumer"
)

// Setting keys.
const (
	keyAPIKey   = "api_key"
	keyLanguage = "language"
)

// Compile-time interface verification.
var _ resumer.SettingsService = (*SettingsService)(nil)

// SettingsService implements resumer.SettingsService using SQLite.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// FindSettings returns stored settings over the defaults.
func (s *SettingsService) FindSettings(ctx context.Context) (*resumer.Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := resumer.DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		switch key {
		case keyAPIKey:
			settings.APIKey = value
		case keyLanguage:
			settings.Language = resumer.Language(value)
		}
	}

	return settings, rows.Err()
}

// UpdateSettings validates and stores the given fields.
func (s *SettingsService) UpdateSettings(ctx context.Context, upd resumer.SettingsUpdate) (*resumer.Settings, error) {
	if upd.APIKey != nil {
		if err := resumer.ValidateAPIKey(*upd.APIKey); err != nil {
			return nil, err
		}
	}
	if upd.Language != nil && !upd.Language.Valid() {
		return nil, resumer.Errorf(resumer.EINVALID, "unsupported language %q", *upd.Language)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	set := func(key, value string) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		return err
	}

	if upd.APIKey != nil {
		if err := set(keyAPIKey, strings.TrimSpace(*upd.APIKey)); err != nil {
			return nil, err
		}
	}
	if upd.Language != nil {
		if err := set(keyLanguage, string(*upd.Language)); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.FindSettings(ctx)
}
