package service

import (
	"context"

	"go.uber.org/zap"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
	"tabmark/internal/pkg/logger"
	"tabmark/internal/pkg/timeutil"
	"tabmark/internal/repo"
)

type TabService struct {
	tabs      *repo.TabRepo
	sections  *repo.SectionRepo
	bookmarks *repo.BookmarkRepo
}

func NewTabService(tabs *repo.TabRepo, sections *repo.SectionRepo, bookmarks *repo.BookmarkRepo) *TabService {
	return &TabService{tabs: tabs, sections: sections, bookmarks: bookmarks}
}

type TabCreateInput struct {
	Name            string
	BackgroundImage string
	AutoSwitch      int
	Position        *int64
}

type TabUpdateInput struct {
	Name            *string
	BackgroundImage *string
	AutoSwitch      *int
	Position        *int64
}

func (s *TabService) Create(ctx context.Context, input TabCreateInput) (*model.Tab, error) {
	if input.Name == "" {
		return nil, appErr.ErrInvalid
	}
	position := int64(0)
	if input.Position != nil {
		position = *input.Position
	} else {
		max, err := s.tabs.MaxPosition(ctx)
		if err != nil {
			return nil, err
		}
		position = max + 1
	}
	now := timeutil.NowUnix()
	tab := &model.Tab{
		Name:            input.Name,
		Position:        position,
		BackgroundImage: input.BackgroundImage,
		AutoSwitch:      input.AutoSwitch,
		Ctime:           now,
		Mtime:           now,
	}
	if err := s.tabs.Create(ctx, tab); err != nil {
		return nil, err
	}
	return tab, nil
}

func (s *TabService) Get(ctx context.Context, id int64) (*model.Tab, error) {
	return s.tabs.GetByID(ctx, id)
}

func (s *TabService) List(ctx context.Context) ([]model.Tab, error) {
	return s.tabs.List(ctx)
}

func (s *TabService) Update(ctx context.Context, id int64, input TabUpdateInput) (*model.Tab, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, appErr.ErrInvalid
		}
		fields["name"] = *input.Name
	}
	if input.BackgroundImage != nil {
		fields["background_image"] = *input.BackgroundImage
	}
	if input.AutoSwitch != nil {
		fields["auto_switch"] = *input.AutoSwitch
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if len(fields) > 0 {
		fields["mtime"] = timeutil.NowUnix()
		if err := s.tabs.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.tabs.GetByID(ctx, id)
}

// Delete removes the tab together with its bookmarks and sections. The
// children go first so a failure never leaves orphans pointing at a dead tab.
func (s *TabService) Delete(ctx context.Context, id int64) error {
	if _, err := s.tabs.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.bookmarks.DeleteByTab(ctx, id); err != nil {
		return err
	}
	if err := s.sections.DeleteByTab(ctx, id); err != nil {
		return err
	}
	if err := s.tabs.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("tab deleted", zap.Int64("tab_id", id))
	return nil
}
