package models

import "time"

// Assignment is graded coursework belonging to a course
type Assignment struct {
	ID          string           `json:"id" example:"assign1"`
	CourseID    string           `json:"courseId" validate:"required" example:"course1"`
	Title       string           `json:"title" validate:"required" example:"Assignment 3: Data Visualization"`
	Description *string          `json:"description"`
	DueDate     time.Time        `json:"dueDate" example:"2024-03-18T00:00:00Z"`
	Status      AssignmentStatus `json:"status" validate:"oneof=pending submitted graded" example:"pending"`
	Grade       *int             `json:"grade" validate:"omitempty,gte=0"` // null until graded
	MaxGrade    int              `json:"maxGrade" validate:"gt=0" example:"100"`
}

// Key returns the assignment id
func (a Assignment) Key() string { return a.ID }

// WithKey returns a copy of a carrying id
func (a Assignment) WithKey(id string) Assignment {
	a.ID = id
	return a
}

// Clone returns a deep copy of a
func (a Assignment) Clone() Assignment {
	a.Description = clonePtr(a.Description)
	a.Grade = clonePtr(a.Grade)
	return a
}
