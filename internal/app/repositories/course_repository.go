package repositories

import (
	"context"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// CourseRepository handles course storage
type CourseRepository struct {
	table *Table[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(ids idgen.Generator) *CourseRepository {
	return &CourseRepository{table: NewTable[models.Course](ids)}
}

// Create stores a new course under a generated id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	created := r.table.Create(*course)
	return &created, nil
}

// Insert stores a course under its preset id
func (r *CourseRepository) Insert(ctx context.Context, course models.Course) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return r.table.Insert(course)
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	course, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &course, nil
}

// GetAll returns every course in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return r.table.List(nil), nil
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	return r.table.Len()
}
