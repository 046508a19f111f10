package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabmark/internal/pkg/response"
	"tabmark/internal/service"
)

type BookmarkHandler struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkHandler(bookmarks *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

type bookmarkCreateRequest struct {
	TabID       int64  `json:"tabId"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Favicon     string `json:"favicon"`
	SectionName string `json:"sectionName"`
	Position    *int64 `json:"order"`
}

type bookmarkUpdateRequest struct {
	TabID       *int64  `json:"tabId"`
	URL         *string `json:"url"`
	Title       *string `json:"title"`
	Favicon     *string `json:"favicon"`
	SectionName *string `json:"sectionName"`
	Position    *int64  `json:"order"`
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	var req bookmarkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.URL == "" {
		response.Error(c, http.StatusBadRequest, "url required")
		return
	}
	if req.TabID <= 0 {
		response.Error(c, http.StatusBadRequest, "tabId required")
		return
	}
	bookmark, err := h.bookmarks.Create(c.Request.Context(), service.BookmarkCreateInput{
		TabID:       req.TabID,
		URL:         req.URL,
		Title:       req.Title,
		Favicon:     req.Favicon,
		SectionName: req.SectionName,
		Position:    req.Position,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, bookmark)
}

func (h *BookmarkHandler) List(c *gin.Context) {
	tabID, ok := parseTabFilter(c)
	if !ok {
		return
	}
	bookmarks, err := h.bookmarks.List(c.Request.Context(), tabID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, bookmarks)
}

func (h *BookmarkHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bookmark, err := h.bookmarks.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, bookmark)
}

func (h *BookmarkHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req bookmarkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	bookmark, err := h.bookmarks.Update(c.Request.Context(), id, service.BookmarkUpdateInput{
		TabID:       req.TabID,
		URL:         req.URL,
		Title:       req.Title,
		Favicon:     req.Favicon,
		SectionName: req.SectionName,
		Position:    req.Position,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, bookmark)
}

func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.bookmarks.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.NoContent(c)
}
