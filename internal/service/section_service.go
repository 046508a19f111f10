package service

import (
	"context"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
	"tabmark/internal/pkg/timeutil"
	"tabmark/internal/repo"
)

type SectionService struct {
	sections *repo.SectionRepo
}

func NewSectionService(sections *repo.SectionRepo) *SectionService {
	return &SectionService{sections: sections}
}

type SectionCreateInput struct {
	TabID    int64
	Name     string
	Color    string
	Position *int64
}

type SectionUpdateInput struct {
	TabID    *int64
	Name     *string
	Color    *string
	Position *int64
}

func (s *SectionService) Create(ctx context.Context, input SectionCreateInput) (*model.Section, error) {
	if input.Name == "" || input.TabID == 0 {
		return nil, appErr.ErrInvalid
	}
	position := int64(0)
	if input.Position != nil {
		position = *input.Position
	} else {
		max, err := s.sections.MaxPosition(ctx, input.TabID)
		if err != nil {
			return nil, err
		}
		position = max + 1
	}
	now := timeutil.NowUnix()
	section := &model.Section{
		TabID:    input.TabID,
		Name:     input.Name,
		Color:    input.Color,
		Position: position,
		Ctime:    now,
		Mtime:    now,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *SectionService) Get(ctx context.Context, id int64) (*model.Section, error) {
	return s.sections.GetByID(ctx, id)
}

func (s *SectionService) List(ctx context.Context, tabID *int64) ([]model.Section, error) {
	return s.sections.List(ctx, tabID)
}

func (s *SectionService) Update(ctx context.Context, id int64, input SectionUpdateInput) (*model.Section, error) {
	fields := map[string]interface{}{}
	if input.TabID != nil {
		fields["tab_id"] = *input.TabID
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, appErr.ErrInvalid
		}
		fields["name"] = *input.Name
	}
	if input.Color != nil {
		fields["color"] = *input.Color
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if len(fields) > 0 {
		fields["mtime"] = timeutil.NowUnix()
		if err := s.sections.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.sections.GetByID(ctx, id)
}

func (s *SectionService) Delete(ctx context.Context, id int64) error {
	return s.sections.Delete(ctx, id)
}
