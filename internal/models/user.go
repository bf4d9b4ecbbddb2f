package models

import "time"

// User represents a student account stored in the users table.
// The password hash never leaves the server.
type User struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	ClassLevel   string    `db:"class_level" json:"classLevel"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	TrialUsed    bool      `db:"trial_used" json:"trialUsed"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// UserList wraps the admin roster response.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
