package mock

import (
	"context"

	"github.com/fwojciec/resumer"
)

var _ resumer.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of resumer.SettingsService.
type SettingsService struct {
	FindSettingsFn   func(ctx context.Context) (*resumer.Settings, error)
	UpdateSettingsFn func(ctx context.Context, upd resumer.SettingsUpdate) (*resumer.Settings, error)
}

func (s *SettingsService) FindSettings(ctx context.Context) (*resumer.Settings, error) {
	return s.FindSettingsFn(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, upd resumer.SettingsUpdate) (*resumer.Settings, error) {
	return s.UpdateSettingsFn(ctx, upd)
}
