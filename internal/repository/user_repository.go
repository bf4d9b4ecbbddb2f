package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bilimly/bilimly-api/internal/models"
)

const uniqueViolationCode = "23505"

// UserRepository provides database access for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EmailExists reports whether a user with the given email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// FindActiveByEmail returns an active user by email address.
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at FROM users WHERE email = $1 AND is_active = TRUE LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindActiveByID returns an active user by identifier.
func (r *UserRepository) FindActiveByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at FROM users WHERE id = $1 AND is_active = TRUE LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row, assigning an identifier and timestamp
// when absent.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO users (id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at) VALUES (:id, :full_name, :email, :phone, :class_level, :password_hash, :is_active, :trial_used, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// List returns all users ordered by registration time descending, with
// the total count.
func (r *UserRepository) List(ctx context.Context) ([]models.User, int, error) {
	const query = `SELECT id, full_name, email, phone, class_level, password_hash, is_active, trial_used, created_at FROM users ORDER BY created_at DESC`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	const countQuery = `SELECT COUNT(*) FROM users`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return users, total, nil
}

// IsUniqueViolation reports whether the error stems from the users table
// UNIQUE constraint. The constraint backstops the non-transactional
// existence-check+insert pair during registration.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
