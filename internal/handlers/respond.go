package handlers

import (
	"errors"
	"net/http"

	"tempconv/internal/conversion"
	"tempconv/internal/history"
	"tempconv/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusDeleted   = "deleted"
	statusCleared   = "cleared"
	statusCancelled = "cancelled"

	errInternal        = "internal error"
	errInvalidID       = "invalid id"
	errNotFound        = "history entry not found"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError maps domain errors to status codes; anything unexpected is
// logged under logKey and reported as 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, conversion.ErrInvalidInput), errors.Is(err, models.ErrUnknownScale):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, history.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
