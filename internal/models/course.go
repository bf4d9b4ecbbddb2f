package models

import "time"

// Course represents a tutoring course. Courses are managed outside this
// API and only read here.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Subject     string    `db:"subject" json:"subject"`
	ClassLevel  string    `db:"class_level" json:"classLevel"`
	TeacherName string    `db:"teacher_name" json:"teacherName"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CourseList wraps the course catalog response.
type CourseList struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}
