package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErr "tabmark/internal/pkg/errors"
	"tabmark/internal/pkg/logger"
	"tabmark/internal/pkg/response"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// parseTabFilter reads the optional ?tabId= list filter.
func parseTabFilter(c *gin.Context) (*int64, bool) {
	value := c.Query("tabId")
	if value == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid tabId")
		return nil, false
	}
	return &id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case appErr.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "not found")
	case appErr.IsInvalid(err):
		response.Error(c, http.StatusBadRequest, "invalid request")
	default:
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "internal error")
	}
}
