package models

import "time"

// Task is a to-do item owned by a user, optionally tied to a course
type Task struct {
	ID          string       `json:"id" example:"task1"`
	UserID      string       `json:"userId" validate:"required" example:"user1"`
	Title       string       `json:"title" validate:"required" example:"Complete Data Science Assignment 3"`
	Description *string      `json:"description"`
	DueDate     time.Time    `json:"dueDate" example:"2024-03-18T00:00:00Z"`
	Priority    TaskPriority `json:"priority" validate:"oneof=low medium high" example:"high"`
	Completed   bool         `json:"completed" example:"false"`
	CourseID    *string      `json:"courseId" example:"course1"`
}

// Key returns the task id
func (t Task) Key() string { return t.ID }

// WithKey returns a copy of t carrying id
func (t Task) WithKey(id string) Task {
	t.ID = id
	return t
}

// Clone returns a deep copy of t
func (t Task) Clone() Task {
	t.Description = clonePtr(t.Description)
	t.CourseID = clonePtr(t.CourseID)
	return t
}
