package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabmark/internal/pkg/response"
	"tabmark/internal/service"
)

type MetadataHandler struct {
	metadata *service.MetadataService
}

func NewMetadataHandler(metadata *service.MetadataService) *MetadataHandler {
	return &MetadataHandler{metadata: metadata}
}

// Fetch resolves title/description/favicon for the bookmark-add dialog.
func (h *MetadataHandler) Fetch(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		response.Error(c, http.StatusBadRequest, "url required")
		return
	}
	meta, err := h.metadata.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, meta)
}
