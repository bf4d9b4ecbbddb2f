package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveCourses(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "description", "subject", "class_level", "teacher_name", "is_active", "created_at"}).
		AddRow(int64(1), "Algebra", "Intro algebra", "math", "9", "B. Aitova", true, now).
		AddRow(int64(2), "Mechanics", "Forces and motion", "physics", "10", "D. Omarov", true, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, subject, class_level, teacher_name, is_active, created_at FROM courses WHERE is_active = TRUE ORDER BY id ASC")).
		WillReturnRows(rows)

	courses, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, int64(2), courses[1].ID)
	assert.True(t, courses[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerTime(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStatusRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT NOW()")).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(now))

	got, err := repo.ServerTime(context.Background())
	require.NoError(t, err)
	assert.WithinDuration(t, now, got, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
