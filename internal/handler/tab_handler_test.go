package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/model"
)

func TestTabCRUDContract(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/tabs", map[string]interface{}{
		"name":            "work",
		"backgroundImage": "https://img.example/bg.png",
		"autoSwitch":      true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Tab
	decodeJSON(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, "work", created.Name)
	require.Equal(t, 1, created.AutoSwitch)
	require.Equal(t, int64(1), created.Position)

	// create then fetch returns the same record
	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/tabs/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var fetched model.Tab
	decodeJSON(t, resp, &fetched)
	require.Equal(t, created, fetched)

	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tabs/%d", created.ID), map[string]interface{}{
		"name": "renamed",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var patched model.Tab
	decodeJSON(t, resp, &patched)
	require.Equal(t, "renamed", patched.Name)
	require.Equal(t, "https://img.example/bg.png", patched.BackgroundImage)
	require.Equal(t, 1, patched.AutoSwitch)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tabs/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tabs/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	var errBody map[string]string
	decodeJSON(t, resp, &errBody)
	require.Contains(t, errBody, "message")
}

func TestTabValidation(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/tabs", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/tabs/notanumber", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/tabs/99999", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestTabListSortedByOrder(t *testing.T) {
	router := setupRouter(t)

	for _, name := range []string{"one", "two", "three"} {
		resp := doJSON(t, router, http.MethodPost, "/api/tabs", map[string]interface{}{"name": name})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	// move "three" to the front
	resp := doJSON(t, router, http.MethodGet, "/api/tabs", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tabs []model.Tab
	decodeJSON(t, resp, &tabs)
	require.Len(t, tabs, 3)

	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tabs/%d", tabs[2].ID), map[string]interface{}{"order": 0})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/tabs", nil)
	decodeJSON(t, resp, &tabs)
	require.Equal(t, "three", tabs[0].Name)
}

func TestTabDeleteCascadesOverAPI(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/tabs", map[string]interface{}{"name": "doomed"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var tab model.Tab
	decodeJSON(t, resp, &tab)

	resp = doJSON(t, router, http.MethodPost, "/api/sections", map[string]interface{}{
		"tabId": tab.ID, "name": "news", "color": "#00ff00",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/bookmarks", map[string]interface{}{
		"tabId": tab.ID, "url": "https://a.example",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tabs/%d", tab.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/sections", nil)
	var sections []model.Section
	decodeJSON(t, resp, &sections)
	require.Empty(t, sections)

	resp = doJSON(t, router, http.MethodGet, "/api/bookmarks", nil)
	var bookmarks []model.Bookmark
	decodeJSON(t, resp, &bookmarks)
	require.Empty(t, bookmarks)
}
