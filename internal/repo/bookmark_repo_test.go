package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
)

func newTestBookmark(tabID int64, url string, position int64) *model.Bookmark {
	return &model.Bookmark{
		TabID:    tabID,
		URL:      url,
		Title:    url,
		Position: position,
		Ctime:    1,
		Mtime:    1,
	}
}

func TestBookmarkRepoListByTab(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookmarkRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBookmark(1, "https://a.example", 2)))
	require.NoError(t, repo.Create(ctx, newTestBookmark(1, "https://b.example", 1)))
	require.NoError(t, repo.Create(ctx, newTestBookmark(2, "https://c.example", 1)))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	tabID := int64(1)
	filtered, err := repo.List(ctx, &tabID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	require.Equal(t, "https://b.example", filtered[0].URL)
	require.Equal(t, "https://a.example", filtered[1].URL)
}

func TestBookmarkRepoDeleteByTab(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookmarkRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBookmark(1, "https://a.example", 1)))
	require.NoError(t, repo.Create(ctx, newTestBookmark(1, "https://b.example", 2)))
	keep := newTestBookmark(2, "https://keep.example", 1)
	require.NoError(t, repo.Create(ctx, keep))

	require.NoError(t, repo.DeleteByTab(ctx, 1))

	remaining, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, keep.ID, remaining[0].ID)
}

func TestBookmarkRepoListMissingFavicon(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookmarkRepo(db)
	ctx := context.Background()

	withIcon := newTestBookmark(1, "https://has.example", 1)
	withIcon.Favicon = "https://has.example/favicon.ico"
	require.NoError(t, repo.Create(ctx, withIcon))
	missing := newTestBookmark(1, "https://missing.example", 2)
	require.NoError(t, repo.Create(ctx, missing))

	pending, err := repo.ListMissingFavicon(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, missing.ID, pending[0].ID)

	require.NoError(t, repo.Update(ctx, missing.ID, map[string]interface{}{"favicon": "https://missing.example/icon.png"}))
	pending, err = repo.ListMissingFavicon(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestBookmarkRepoSectionNameNotValidated(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookmarkRepo(db)
	ctx := context.Background()

	bookmark := newTestBookmark(1, "https://a.example", 1)
	bookmark.SectionName = "no such section"
	require.NoError(t, repo.Create(ctx, bookmark))

	got, err := repo.GetByID(ctx, bookmark.ID)
	require.NoError(t, err)
	require.Equal(t, "no such section", got.SectionName)
}

func TestBookmarkRepoDeleteMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookmarkRepo(db)

	require.ErrorIs(t, repo.Delete(context.Background(), 12345), appErr.ErrNotFound)
}
