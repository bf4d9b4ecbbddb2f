package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilimly/bilimly-api/internal/models"
	"github.com/bilimly/bilimly-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context) (*models.CourseList, bool, error)
}

// CourseHandler serves the public course catalog.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler creates a new handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// List godoc
// @Summary List active courses
// @Description Return all active courses ordered by identifier
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	list, cacheHit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list, map[string]interface{}{"cache_hit": cacheHit})
}
