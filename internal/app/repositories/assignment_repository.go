package repositories

import (
	"context"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// AssignmentRepository handles assignment storage
type AssignmentRepository struct {
	table *Table[models.Assignment]
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(ids idgen.Generator) *AssignmentRepository {
	return &AssignmentRepository{table: NewTable[models.Assignment](ids)}
}

// Create stores a new assignment under a generated id
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	created := r.table.Create(*assignment)
	return &created, nil
}

// Insert stores an assignment under its preset id
func (r *AssignmentRepository) Insert(ctx context.Context, assignment models.Assignment) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return r.table.Insert(assignment)
}

// GetByCourseID returns the assignments of a course in insertion order.
// A course without assignments yields an empty slice.
func (r *AssignmentRepository) GetByCourseID(ctx context.Context, courseID string) ([]models.Assignment, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return r.table.List(func(a models.Assignment) bool { return a.CourseID == courseID }), nil
}

// Count returns the number of stored assignments
func (r *AssignmentRepository) Count() int {
	return r.table.Len()
}
