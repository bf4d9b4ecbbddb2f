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

	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
)

type fakeCourseService struct {
	list *models.CourseList
	hit  bool
	err  error
}

func (f *fakeCourseService) List(context.Context) (*models.CourseList, bool, error) {
	return f.list, f.hit, f.err
}

func getRequest(t *testing.T, h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	h(c)
	return rec
}

func TestCourseHandlerList(t *testing.T) {
	h := NewCourseHandler(&fakeCourseService{
		list: &models.CourseList{Courses: []models.Course{{ID: 1, Title: "Algebra", IsActive: true}}, Total: 1},
		hit:  true,
	})

	rec := getRequest(t, h.List, "/courses")

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data models.CourseList      `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "Algebra", envelope.Data.Courses[0].Title)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestCourseHandlerStoreError(t *testing.T) {
	h := NewCourseHandler(&fakeCourseService{err: appErrors.ErrInternal})

	rec := getRequest(t, h.List, "/courses")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
