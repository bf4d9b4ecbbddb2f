package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilimly/bilimly-api/internal/middleware"
	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
	"github.com/bilimly/bilimly-api/pkg/response"
)

type profileService interface {
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler creates a new handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Profile godoc
// @Summary Get current user profile
// @Description Return the profile of the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /user/profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrNoToken)
		return
	}

	user, err := h.service.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": user})
}
