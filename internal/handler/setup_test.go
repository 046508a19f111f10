package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tabmark/internal/repo"
	"tabmark/internal/scraper"
	"tabmark/internal/service"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repo.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.ApplyMigrations(db))
	t.Cleanup(func() {
		_ = db.Close()
	})

	tabRepo := repo.NewTabRepo(db)
	sectionRepo := repo.NewSectionRepo(db)
	bookmarkRepo := repo.NewBookmarkRepo(db)
	settingsRepo := repo.NewSettingsRepo(db)

	metadataService := service.NewMetadataService(scraper.New(2*time.Second), 16, time.Minute)

	return NewRouter(RouterDeps{
		Tabs:      NewTabHandler(service.NewTabService(tabRepo, sectionRepo, bookmarkRepo)),
		Sections:  NewSectionHandler(service.NewSectionService(sectionRepo)),
		Bookmarks: NewBookmarkHandler(service.NewBookmarkService(bookmarkRepo)),
		Settings:  NewSettingsHandler(service.NewSettingsService(settingsRepo)),
		Metadata:  NewMetadataHandler(metadataService),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), dst))
}
