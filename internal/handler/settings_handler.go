package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabmark/internal/pkg/response"
	"tabmark/internal/service"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type settingsUpdateRequest struct {
	Theme   *string `json:"theme"`
	AutoRun *bool   `json:"autoRun"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request")
		return
	}
	input := service.SettingsUpdateInput{Theme: req.Theme}
	if req.AutoRun != nil {
		autoRun := 0
		if *req.AutoRun {
			autoRun = 1
		}
		input.AutoRun = &autoRun
	}
	settings, err := h.settings.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, settings)
}
