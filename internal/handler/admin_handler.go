package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bilimly/bilimly-api/internal/models"
	"github.com/bilimly/bilimly-api/pkg/response"
)

type adminUserService interface {
	List(ctx context.Context) (*models.UserList, error)
	Export(ctx context.Context, format string) ([]byte, string, error)
}

// AdminHandler serves the user roster endpoints.
//
// TODO: these routes carry no authorization check, matching the legacy
// service. Decide with product whether the deployment stays internal-only
// or the routes need an admin role guard before a public rollout.
type AdminHandler struct {
	service adminUserService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(svc adminUserService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Users godoc
// @Summary List all users
// @Description Return every user ordered by registration time descending
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// Export godoc
// @Summary Export the user roster
// @Description Download the user roster as a CSV or PDF file
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /admin/users/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	data, contentType, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("users_%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
