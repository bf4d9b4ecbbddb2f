package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
)

type mockProfileRepo struct {
	users   map[string]*models.User
	listErr error
}

func (m *mockProfileRepo) FindActiveByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok || !user.IsActive {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *mockProfileRepo) List(ctx context.Context) ([]models.User, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var users []models.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, len(users), nil
}

func TestProfileFound(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "a@x.com", IsActive: true},
	}}
	svc := NewUserService(repo, zap.NewNop())

	user, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestProfileNotFound(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{}}
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.Profile(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestProfileInactiveUserNotFound(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{
		"u1": {ID: "u1", IsActive: false},
	}}
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.Profile(context.Background(), "u1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestListUsersEmpty(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{}}
	svc := NewUserService(repo, zap.NewNop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Users)
	assert.Equal(t, 0, list.Total)
}

func TestExportCSV(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{
		"u1": {ID: "u1", FullName: "A", Email: "a@x.com", Phone: "1", ClassLevel: "11", IsActive: true, CreatedAt: time.Now()},
	}}
	svc := NewUserService(repo, zap.NewNop())

	data, contentType, err := svc.Export(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Full Name")
	assert.Contains(t, lines[1], "a@x.com")
}

func TestExportPDF(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{
		"u1": {ID: "u1", FullName: "A", Email: "a@x.com", IsActive: true, CreatedAt: time.Now()},
	}}
	svc := NewUserService(repo, zap.NewNop())

	data, contentType, err := svc.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportInvalidFormat(t *testing.T) {
	repo := &mockProfileRepo{users: map[string]*models.User{}}
	svc := NewUserService(repo, zap.NewNop())

	_, _, err := svc.Export(context.Background(), "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
