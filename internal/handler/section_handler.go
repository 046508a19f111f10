package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabmark/internal/pkg/response"
	"tabmark/internal/service"
)

type SectionHandler struct {
	sections *service.SectionService
}

func NewSectionHandler(sections *service.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

type sectionCreateRequest struct {
	TabID    int64  `json:"tabId"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position *int64 `json:"order"`
}

type sectionUpdateRequest struct {
	TabID    *int64  `json:"tabId"`
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Position *int64  `json:"order"`
}

func (h *SectionHandler) Create(c *gin.Context) {
	var req sectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		response.Error(c, http.StatusBadRequest, "name required")
		return
	}
	if req.TabID <= 0 {
		response.Error(c, http.StatusBadRequest, "tabId required")
		return
	}
	section, err := h.sections.Create(c.Request.Context(), service.SectionCreateInput{
		TabID:    req.TabID,
		Name:     req.Name,
		Color:    req.Color,
		Position: req.Position,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, section)
}

func (h *SectionHandler) List(c *gin.Context) {
	tabID, ok := parseTabFilter(c)
	if !ok {
		return
	}
	sections, err := h.sections.List(c.Request.Context(), tabID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, sections)
}

func (h *SectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	section, err := h.sections.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, section)
}

func (h *SectionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req sectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	section, err := h.sections.Update(c.Request.Context(), id, service.SectionUpdateInput{
		TabID:    req.TabID,
		Name:     req.Name,
		Color:    req.Color,
		Position: req.Position,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, section)
}

func (h *SectionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.sections.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.NoContent(c)
}
