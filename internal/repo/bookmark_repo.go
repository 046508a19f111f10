package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
)

type BookmarkRepo struct {
	db *sql.DB
}

func NewBookmarkRepo(db *sql.DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

var bookmarkFields = []string{"id", "tab_id", "url", "title", "favicon", "section_name", "position", "ctime", "mtime"}

func (r *BookmarkRepo) Create(ctx context.Context, bookmark *model.Bookmark) error {
	data := map[string]interface{}{
		"tab_id":       bookmark.TabID,
		"url":          bookmark.URL,
		"title":        bookmark.Title,
		"favicon":      bookmark.Favicon,
		"section_name": bookmark.SectionName,
		"position":     bookmark.Position,
		"ctime":        bookmark.Ctime,
		"mtime":        bookmark.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("bookmarks", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	bookmark.ID, err = result.LastInsertId()
	return err
}

func (r *BookmarkRepo) GetByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	sqlStr, args, err := builder.BuildSelect("bookmarks", map[string]interface{}{"id": id}, bookmarkFields)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	bookmark, err := scanBookmarkRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return bookmark, nil
}

func (r *BookmarkRepo) List(ctx context.Context, tabID *int64) ([]model.Bookmark, error) {
	where := map[string]interface{}{"_orderby": "position asc, id asc"}
	if tabID != nil {
		where["tab_id"] = *tabID
	}
	sqlStr, args, err := builder.BuildSelect("bookmarks", where, bookmarkFields)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookmarks := make([]model.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmarkRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, *bookmark)
	}
	return bookmarks, rows.Err()
}

// ListMissingFavicon feeds the background favicon refresh; limit bounds the
// work done per job run.
func (r *BookmarkRepo) ListMissingFavicon(ctx context.Context, limit uint) ([]model.Bookmark, error) {
	where := map[string]interface{}{
		"favicon":  "",
		"_orderby": "id asc",
	}
	if limit > 0 {
		where["_limit"] = []uint{0, limit}
	}
	sqlStr, args, err := builder.BuildSelect("bookmarks", where, bookmarkFields)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookmarks := make([]model.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmarkRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, *bookmark)
	}
	return bookmarks, rows.Err()
}

func (r *BookmarkRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sqlStr, args, err := builder.BuildUpdate("bookmarks", map[string]interface{}{"id": id}, fields)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *BookmarkRepo) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := builder.BuildDelete("bookmarks", map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *BookmarkRepo) DeleteByTab(ctx context.Context, tabID int64) error {
	sqlStr, args, err := builder.BuildDelete("bookmarks", map[string]interface{}{"tab_id": tabID})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *BookmarkRepo) MaxPosition(ctx context.Context, tabID int64) (int64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM bookmarks WHERE tab_id = ?", tabID)
	var max int64
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func scanBookmarkRow(scan func(dest ...interface{}) error) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	if err := scan(
		&bookmark.ID, &bookmark.TabID, &bookmark.URL, &bookmark.Title,
		&bookmark.Favicon, &bookmark.SectionName, &bookmark.Position,
		&bookmark.Ctime, &bookmark.Mtime,
	); err != nil {
		return nil, err
	}
	return &bookmark, nil
}
