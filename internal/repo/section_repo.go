package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"tabmark/internal/model"
	appErr "tabmark/internal/pkg/errors"
)

type SectionRepo struct {
	db *sql.DB
}

func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

var sectionFields = []string{"id", "tab_id", "name", "color", "position", "ctime", "mtime"}

func (r *SectionRepo) Create(ctx context.Context, section *model.Section) error {
	data := map[string]interface{}{
		"tab_id":   section.TabID,
		"name":     section.Name,
		"color":    section.Color,
		"position": section.Position,
		"ctime":    section.Ctime,
		"mtime":    section.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("sections", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	section.ID, err = result.LastInsertId()
	return err
}

func (r *SectionRepo) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	sqlStr, args, err := builder.BuildSelect("sections", map[string]interface{}{"id": id}, sectionFields)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	var section model.Section
	if err := row.Scan(&section.ID, &section.TabID, &section.Name, &section.Color, &section.Position, &section.Ctime, &section.Mtime); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// List returns every section, or only those of one tab when tabID is non-nil,
// ordered by the drag-and-drop sort key.
func (r *SectionRepo) List(ctx context.Context, tabID *int64) ([]model.Section, error) {
	where := map[string]interface{}{"_orderby": "position asc, id asc"}
	if tabID != nil {
		where["tab_id"] = *tabID
	}
	sqlStr, args, err := builder.BuildSelect("sections", where, sectionFields)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sections := make([]model.Section, 0)
	for rows.Next() {
		var section model.Section
		if err := rows.Scan(&section.ID, &section.TabID, &section.Name, &section.Color, &section.Position, &section.Ctime, &section.Mtime); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

func (r *SectionRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sqlStr, args, err := builder.BuildUpdate("sections", map[string]interface{}{"id": id}, fields)
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

func (r *SectionRepo) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := builder.BuildDelete("sections", map[string]interface{}{"id": id})
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

func (r *SectionRepo) DeleteByTab(ctx context.Context, tabID int64) error {
	sqlStr, args, err := builder.BuildDelete("sections", map[string]interface{}{"tab_id": tabID})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *SectionRepo) MaxPosition(ctx context.Context, tabID int64) (int64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM sections WHERE tab_id = ?", tabID)
	var max int64
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}
