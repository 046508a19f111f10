package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabmark/internal/pkg/response"
	"tabmark/internal/service"
)

type TabHandler struct {
	tabs *service.TabService
}

func NewTabHandler(tabs *service.TabService) *TabHandler {
	return &TabHandler{tabs: tabs}
}

type tabCreateRequest struct {
	Name            string `json:"name"`
	BackgroundImage string `json:"backgroundImage"`
	AutoSwitch      *bool  `json:"autoSwitch"`
	Position        *int64 `json:"order"`
}

type tabUpdateRequest struct {
	Name            *string `json:"name"`
	BackgroundImage *string `json:"backgroundImage"`
	AutoSwitch      *bool   `json:"autoSwitch"`
	Position        *int64  `json:"order"`
}

func (h *TabHandler) Create(c *gin.Context) {
	var req tabCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		response.Error(c, http.StatusBadRequest, "name required")
		return
	}
	autoSwitch := 0
	if req.AutoSwitch != nil && *req.AutoSwitch {
		autoSwitch = 1
	}
	tab, err := h.tabs.Create(c.Request.Context(), service.TabCreateInput{
		Name:            req.Name,
		BackgroundImage: req.BackgroundImage,
		AutoSwitch:      autoSwitch,
		Position:        req.Position,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, tab)
}

func (h *TabHandler) List(c *gin.Context) {
	tabs, err := h.tabs.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, tabs)
}

func (h *TabHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tab, err := h.tabs.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, tab)
}

func (h *TabHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req tabUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	input := service.TabUpdateInput{
		Name:            req.Name,
		BackgroundImage: req.BackgroundImage,
		Position:        req.Position,
	}
	if req.AutoSwitch != nil {
		autoSwitch := 0
		if *req.AutoSwitch {
			autoSwitch = 1
		}
		input.AutoSwitch = &autoSwitch
	}
	tab, err := h.tabs.Update(c.Request.Context(), id, input)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, tab)
}

func (h *TabHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tabs.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.NoContent(c)
}
