package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
)

type TabRepo struct {
	db *sql.DB
}

func NewTabRepo(db *sql.DB) *TabRepo {
	return &TabRepo{db: db}
}

var tabFields = []string{"id", "name", "position", "background_image", "auto_switch", "ctime", "mtime"}

func (r *TabRepo) Create(ctx context.Context, tab *model.Tab) error {
	data := map[string]interface{}{
		"name":             tab.Name,
		"position":         tab.Position,
		"background_image": tab.BackgroundImage,
		"auto_switch":      tab.AutoSwitch,
		"ctime":            tab.Ctime,
		"mtime":            tab.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("tabs", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	tab.ID, err = result.LastInsertId()
	return err
}

func (r *TabRepo) GetByID(ctx context.Context, id int64) (*model.Tab, error) {
	sqlStr, args, err := builder.BuildSelect("tabs", map[string]interface{}{"id": id}, tabFields)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	var tab model.Tab
	if err := row.Scan(&tab.ID, &tab.Name, &tab.Position, &tab.BackgroundImage, &tab.AutoSwitch, &tab.Ctime, &tab.Mtime); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &tab, nil
}

func (r *TabRepo) List(ctx context.Context) ([]model.Tab, error) {
	where := map[string]interface{}{"_orderby": "position asc, id asc"}
	sqlStr, args, err := builder.BuildSelect("tabs", where, tabFields)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tabs := make([]model.Tab, 0)
	for rows.Next() {
		var tab model.Tab
		if err := rows.Scan(&tab.ID, &tab.Name, &tab.Position, &tab.BackgroundImage, &tab.AutoSwitch, &tab.Ctime, &tab.Mtime); err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, rows.Err()
}

func (r *TabRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sqlStr, args, err := builder.BuildUpdate("tabs", map[string]interface{}{"id": id}, fields)
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

func (r *TabRepo) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := builder.BuildDelete("tabs", map[string]interface{}{"id": id})
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

func (r *TabRepo) MaxPosition(ctx context.Context) (int64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM tabs")
	var max int64
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}
