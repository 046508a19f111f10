package service

import (
	"context"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
	"tabmark/internal/pkg/timeutil"
	"tabmark/internal/repo"
)

type SettingsService struct {
	settings *repo.SettingsRepo
}

func NewSettingsService(settings *repo.SettingsRepo) *SettingsService {
	return &SettingsService{settings: settings}
}

type SettingsUpdateInput struct {
	Theme   *string
	AutoRun *int
}

func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, input SettingsUpdateInput) (*model.Settings, error) {
	fields := map[string]interface{}{}
	if input.Theme != nil {
		if !model.ValidTheme(*input.Theme) {
			return nil, appErr.ErrInvalid
		}
		fields["theme"] = *input.Theme
	}
	if input.AutoRun != nil {
		fields["auto_run"] = *input.AutoRun
	}
	if len(fields) > 0 {
		fields["mtime"] = timeutil.NowUnix()
		if err := s.settings.Update(ctx, fields); err != nil {
			return nil, err
		}
	}
	return s.settings.Get(ctx)
}
