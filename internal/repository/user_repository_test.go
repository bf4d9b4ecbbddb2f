package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilimly/bilimly-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func userColumns() []string {
	return []string{"id", "full_name", "email", "phone", "class_level", "password_hash", "is_active", "trial_used", "created_at"}
}

func TestEmailExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	exists, err := repo.EmailExists(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "A", "a@x.com", "1", "11", "hash", true, false, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at FROM users WHERE email = $1 AND is_active = TRUE LIMIT 1")).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	user, err := repo.FindActiveByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserAssignsIDAndTimestamp(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))

	user := &models.User{FullName: "A", Email: "a@x.com", Phone: "1", ClassLevel: "11", PasswordHash: "hash", IsActive: true}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersOrdersByRegistration(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	listRows := sqlmock.NewRows(userColumns()).
		AddRow("u2", "B", "b@x.com", "2", "10", "hash", true, false, now).
		AddRow("u1", "A", "a@x.com", "1", "11", "hash", false, true, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at FROM users ORDER BY created_at DESC")).
		WillReturnRows(listRows)

	countRows := sqlmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).WillReturnRows(countRows)

	users, total, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "u2", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(context.DeadlineExceeded))
	assert.False(t, IsUniqueViolation(nil))
}
