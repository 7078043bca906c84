package dto

import (
	"time"

	"github.com/yigit/lmsdash/internal/app/models"
)

// CreateTaskRequest is the body of POST /api/tasks. The owner is always the
// current dashboard user.
type CreateTaskRequest struct {
	Title       string              `json:"title" example:"Read Chapter 6"`
	Description *string             `json:"description"`
	DueDate     time.Time           `json:"dueDate" example:"2024-03-27T00:00:00Z"`
	Priority    models.TaskPriority `json:"priority" example:"medium"`
	Completed   bool                `json:"completed"`
	CourseID    *string             `json:"courseId" example:"course2"`
}

// ToModel converts the request into a Task owned by userID
func (r CreateTaskRequest) ToModel(userID string) *models.Task {
	return &models.Task{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Completed:   r.Completed,
		CourseID:    r.CourseID,
	}
}

// UpdateTaskRequest documents the usual PATCH /api/tasks/{id} body. Any
// top-level Task field is accepted.
type UpdateTaskRequest struct {
	Completed *bool `json:"completed,omitempty" example:"true"`
}
