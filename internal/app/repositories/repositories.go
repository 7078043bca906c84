package repositories

import (
	"context"

	"github.com/yigit/lmsdash/internal/pkg/apperrors"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// ErrNotFound is returned by repository lookups for unknown ids
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	TaskRepository       *TaskRepository
	AssignmentRepository *AssignmentRepository
}

// NewRepositories initializes all repositories with empty tables sharing ids
func NewRepositories(ids idgen.Generator) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(ids),
		CourseRepository:     NewCourseRepository(ids),
		TaskRepository:       NewTaskRepository(ids),
		AssignmentRepository: NewAssignmentRepository(ids),
	}
}

// ready reports a cancelled or expired context before touching the store
func ready(ctx context.Context) error {
	return ctx.Err()
}
