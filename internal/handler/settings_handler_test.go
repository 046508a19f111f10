package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/model"
)

func TestSettingsGetAndPatch(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var settings model.Settings
	decodeJSON(t, resp, &settings)
	require.Equal(t, model.ThemeSystem, settings.Theme)
	require.Zero(t, settings.AutoRun)

	resp = doJSON(t, router, http.MethodPatch, "/api/settings", map[string]interface{}{
		"theme":   "dark",
		"autoRun": true,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	decodeJSON(t, resp, &settings)
	require.Equal(t, model.ThemeDark, settings.Theme)
	require.Equal(t, 1, settings.AutoRun)

	// partial patch leaves autoRun alone
	resp = doJSON(t, router, http.MethodPatch, "/api/settings", map[string]interface{}{"theme": "light"})
	require.Equal(t, http.StatusOK, resp.Code)
	decodeJSON(t, resp, &settings)
	require.Equal(t, model.ThemeLight, settings.Theme)
	require.Equal(t, 1, settings.AutoRun)
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPatch, "/api/settings", map[string]interface{}{"theme": "neon"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMetadataRequiresURL(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/metadata", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
}
