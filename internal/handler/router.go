package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"tabmark/internal/middleware"
)

type RouterDeps struct {
	Tabs      *TabHandler
	Sections  *SectionHandler
	Bookmarks *BookmarkHandler
	Settings  *SettingsHandler
	Metadata  *MetadataHandler
	Files     *FileHandler

	CORSOrigins       []string
	MetadataRateLimit time.Duration
	// WebDir, when set, is served as the SPA bundle with an index.html
	// fallback for client-side routes.
	WebDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.GET("/tabs", deps.Tabs.List)
	api.POST("/tabs", deps.Tabs.Create)
	api.GET("/tabs/:id", deps.Tabs.Get)
	api.PATCH("/tabs/:id", deps.Tabs.Update)
	api.DELETE("/tabs/:id", deps.Tabs.Delete)

	api.GET("/sections", deps.Sections.List)
	api.POST("/sections", deps.Sections.Create)
	api.GET("/sections/:id", deps.Sections.Get)
	api.PATCH("/sections/:id", deps.Sections.Update)
	api.DELETE("/sections/:id", deps.Sections.Delete)

	api.GET("/bookmarks", deps.Bookmarks.List)
	api.POST("/bookmarks", deps.Bookmarks.Create)
	api.GET("/bookmarks/:id", deps.Bookmarks.Get)
	api.PATCH("/bookmarks/:id", deps.Bookmarks.Update)
	api.DELETE("/bookmarks/:id", deps.Bookmarks.Delete)

	api.GET("/settings", deps.Settings.Get)
	api.PATCH("/settings", deps.Settings.Update)

	api.GET("/metadata", middleware.RateLimit(deps.MetadataRateLimit), deps.Metadata.Fetch)

	if deps.Files != nil {
		api.POST("/uploads", deps.Files.Upload)
		api.GET("/files/:key", deps.Files.Get)
	}

	if deps.WebDir != "" {
		registerSPA(router, deps.WebDir)
	}

	return router
}

func registerSPA(router *gin.Engine, webDir string) {
	index := filepath.Join(webDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Status(http.StatusNotFound)
			return
		}
		requested := filepath.Join(webDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(index)
	})
}
