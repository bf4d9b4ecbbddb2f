package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
)

const courseCacheKey = "courses:active"

type courseRepository interface {
	ListActive(ctx context.Context) ([]models.Course, error)
}

// CourseService serves the public course catalog, optionally backed by a
// cache-aside layer.
type CourseService struct {
	repo   courseRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(repo courseRepository, cache *CacheService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

// List returns all active courses ordered by identifier ascending. The
// second return value reports whether the result came from cache.
func (s *CourseService) List(ctx context.Context) (*models.CourseList, bool, error) {
	var cached models.CourseList
	if s.cache.Get(ctx, courseCacheKey, &cached) {
		return &cached, true, nil
	}

	courses, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}

	list := &models.CourseList{Courses: courses, Total: len(courses)}
	s.cache.Set(ctx, courseCacheKey, list)

	return list, false, nil
}
