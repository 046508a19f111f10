package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/model"
)

func TestSettingsRepoSeededDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepo(db)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.ThemeSystem, settings.Theme)
	require.Zero(t, settings.AutoRun)
}

func TestSettingsRepoUpdateMerges(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, map[string]interface{}{"theme": model.ThemeDark, "mtime": 42}))
	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ThemeDark, settings.Theme)
	require.Zero(t, settings.AutoRun)

	require.NoError(t, repo.Update(ctx, map[string]interface{}{"auto_run": 1}))
	settings, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, model.ThemeDark, settings.Theme)
	require.Equal(t, 1, settings.AutoRun)
}
