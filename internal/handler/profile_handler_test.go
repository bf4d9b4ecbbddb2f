package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilimly/bilimly-api/internal/middleware"
	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
)

type fakeProfileService struct {
	user   *models.User
	err    error
	lastID string
}

func (f *fakeProfileService) Profile(_ context.Context, userID string) (*models.User, error) {
	f.lastID = userID
	return f.user, f.err
}

func TestProfileHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeProfileService{user: &models.User{ID: "u1", Email: "a@x.com", PasswordHash: "secret-hash", IsActive: true}}
	h := NewProfileHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1"})

	h.Profile(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.lastID)
	var envelope struct {
		Data struct {
			User models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "a@x.com", envelope.Data.User.Email)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestProfileHandlerMissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandler(&fakeProfileService{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/profile", nil)

	h.Profile(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandlerUserNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandler(&fakeProfileService{err: appErrors.Clone(appErrors.ErrNotFound, "user not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "gone"})

	h.Profile(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
