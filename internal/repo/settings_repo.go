package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
)

// settingsRowID is the only row of the settings table; the migration seeds it.
const settingsRowID = 1

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	sqlStr, args, err := builder.BuildSelect("settings",
		map[string]interface{}{"id": settingsRowID},
		[]string{"id", "theme", "auto_run", "mtime"},
	)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	var settings model.Settings
	if err := row.Scan(&settings.ID, &settings.Theme, &settings.AutoRun, &settings.Mtime); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepo) Update(ctx context.Context, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sqlStr, args, err := builder.BuildUpdate("settings", map[string]interface{}{"id": settingsRowID}, fields)
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
