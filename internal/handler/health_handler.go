package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
	"github.com/bilimly/bilimly-api/pkg/response"
)

type statusRepository interface {
	ServerTime(ctx context.Context) (time.Time, error)
}

// HealthHandler serves liveness, readiness, and database diagnostics.
type HealthHandler struct {
	status statusRepository
}

// NewHealthHandler creates a new handler.
func NewHealthHandler(status statusRepository) *HealthHandler {
	return &HealthHandler{status: status}
}

// Health godoc
// @Summary Health check
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary Readiness check
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// TestDB godoc
// @Summary Database connectivity check
// @Description Ask the database for its current time
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /test-db [get]
func (h *HealthHandler) TestDB(c *gin.Context) {
	serverTime, err := h.status.ServerTime(c.Request.Context())
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "database connectivity check failed"))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":     "ok",
		"serverTime": serverTime.UTC(),
	})
}
