package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/model"
)

func createTab(t *testing.T, router http.Handler, name string) model.Tab {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/tabs", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, resp.Code)
	var tab model.Tab
	decodeJSON(t, resp, &tab)
	return tab
}

func TestBookmarkCRUDContract(t *testing.T) {
	router := setupRouter(t)
	tab := createTab(t, router, "links")

	resp := doJSON(t, router, http.MethodPost, "/api/bookmarks", map[string]interface{}{
		"tabId":       tab.ID,
		"url":         "https://go.dev",
		"title":       "The Go Programming Language",
		"sectionName": "dev",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Bookmark
	decodeJSON(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, "dev", created.SectionName)

	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/bookmarks/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var fetched model.Bookmark
	decodeJSON(t, resp, &fetched)
	require.Equal(t, created, fetched)

	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/bookmarks/%d", created.ID), map[string]interface{}{
		"favicon": "https://go.dev/favicon.ico",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var patched model.Bookmark
	decodeJSON(t, resp, &patched)
	require.Equal(t, "https://go.dev/favicon.ico", patched.Favicon)
	require.Equal(t, created.Title, patched.Title)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookmarks/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookmarks/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookmarkValidation(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/bookmarks", map[string]interface{}{"url": "https://a.example"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/bookmarks", map[string]interface{}{"tabId": 1})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookmarkListFilterByTab(t *testing.T) {
	router := setupRouter(t)
	tab1 := createTab(t, router, "one")
	tab2 := createTab(t, router, "two")

	for _, payload := range []map[string]interface{}{
		{"tabId": tab1.ID, "url": "https://a.example"},
		{"tabId": tab1.ID, "url": "https://b.example"},
		{"tabId": tab2.ID, "url": "https://c.example"},
	} {
		resp := doJSON(t, router, http.MethodPost, "/api/bookmarks", payload)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/bookmarks?tabId=%d", tab1.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var bookmarks []model.Bookmark
	decodeJSON(t, resp, &bookmarks)
	require.Len(t, bookmarks, 2)

	resp = doJSON(t, router, http.MethodGet, "/api/bookmarks?tabId=bogus", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSectionCRUDContract(t *testing.T) {
	router := setupRouter(t)
	tab := createTab(t, router, "home")

	resp := doJSON(t, router, http.MethodPost, "/api/sections", map[string]interface{}{
		"tabId": tab.ID,
		"name":  "reading",
		"color": "#336699",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Section
	decodeJSON(t, resp, &created)
	require.Equal(t, int64(1), created.Position)

	color := "#000000"
	resp = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/sections/%d", created.ID), map[string]interface{}{
		"color": color,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var patched model.Section
	decodeJSON(t, resp, &patched)
	require.Equal(t, color, patched.Color)
	require.Equal(t, "reading", patched.Name)

	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/sections?tabId=%d", tab.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var sections []model.Section
	decodeJSON(t, resp, &sections)
	require.Len(t, sections, 1)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/sections/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/sections/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}
