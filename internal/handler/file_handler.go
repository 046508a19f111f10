package handler

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"tabmark/internal/filestore"
	"tabmark/internal/pkg/response"
)

const maxUploadSize = 10 << 20 // background images

type FileHandler struct {
	store     filestore.Store
	publicURL string
}

type uploadResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

func NewFileHandler(store filestore.Store, publicURL string) *FileHandler {
	return &FileHandler{store: store, publicURL: publicURL}
}

func (h *FileHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	if file.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, "file too large")
		return
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to open file")
		return
	}
	defer opened.Close()

	key := buildFileKey(file.Filename)
	if err := h.store.Save(c.Request.Context(), key, opened, file.Size); err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, uploadResponse{
		URL:  h.store.URL(key, h.baseURL(c)),
		Name: file.Filename,
	})
}

func (h *FileHandler) Get(c *gin.Context) {
	key := c.Param("key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "\\") {
		c.Status(http.StatusBadRequest)
		return
	}
	file, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer file.Close()
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	_, _ = io.Copy(c.Writer, file)
}

func (h *FileHandler) baseURL(c *gin.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		if c.Request.TLS != nil {
			proto = "https"
		} else {
			proto = "http"
		}
	}
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	return proto + "://" + host
}

// buildFileKey keeps the original extension so mime sniffing on serve works,
// under a random name so uploads never collide or traverse paths.
func buildFileKey(filename string) string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	return hex.EncodeToString(buf) + ext
}
