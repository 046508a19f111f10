package service

import (
	"context"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
	"tabmark/internal/pkg/timeutil"
	"tabmark/internal/repo"
)

type BookmarkService struct {
	bookmarks *repo.BookmarkRepo
}

func NewBookmarkService(bookmarks *repo.BookmarkRepo) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

type BookmarkCreateInput struct {
	TabID       int64
	URL         string
	Title       string
	Favicon     string
	SectionName string
	Position    *int64
}

type BookmarkUpdateInput struct {
	TabID       *int64
	URL         *string
	Title       *string
	Favicon     *string
	SectionName *string
	Position    *int64
}

func (s *BookmarkService) Create(ctx context.Context, input BookmarkCreateInput) (*model.Bookmark, error) {
	if input.URL == "" || input.TabID == 0 {
		return nil, appErr.ErrInvalid
	}
	position := int64(0)
	if input.Position != nil {
		position = *input.Position
	} else {
		max, err := s.bookmarks.MaxPosition(ctx, input.TabID)
		if err != nil {
			return nil, err
		}
		position = max + 1
	}
	title := input.Title
	if title == "" {
		title = input.URL
	}
	now := timeutil.NowUnix()
	bookmark := &model.Bookmark{
		TabID:       input.TabID,
		URL:         input.URL,
		Title:       title,
		Favicon:     input.Favicon,
		SectionName: input.SectionName,
		Position:    position,
		Ctime:       now,
		Mtime:       now,
	}
	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkService) Get(ctx context.Context, id int64) (*model.Bookmark, error) {
	return s.bookmarks.GetByID(ctx, id)
}

func (s *BookmarkService) List(ctx context.Context, tabID *int64) ([]model.Bookmark, error) {
	return s.bookmarks.List(ctx, tabID)
}

func (s *BookmarkService) Update(ctx context.Context, id int64, input BookmarkUpdateInput) (*model.Bookmark, error) {
	fields := map[string]interface{}{}
	if input.TabID != nil {
		fields["tab_id"] = *input.TabID
	}
	if input.URL != nil {
		if *input.URL == "" {
			return nil, appErr.ErrInvalid
		}
		fields["url"] = *input.URL
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Favicon != nil {
		fields["favicon"] = *input.Favicon
	}
	if input.SectionName != nil {
		fields["section_name"] = *input.SectionName
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if len(fields) > 0 {
		fields["mtime"] = timeutil.NowUnix()
		if err := s.bookmarks.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.bookmarks.GetByID(ctx, id)
}

func (s *BookmarkService) Delete(ctx context.Context, id int64) error {
	return s.bookmarks.Delete(ctx, id)
}
