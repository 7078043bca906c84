package repositories

import (
	"context"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// TaskRepository handles task storage
type TaskRepository struct {
	table *Table[models.Task]
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(ids idgen.Generator) *TaskRepository {
	return &TaskRepository{table: NewTable[models.Task](ids)}
}

// Create stores a new task under a generated id
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	created := r.table.Create(*task)
	return &created, nil
}

// Insert stores a task under its preset id
func (r *TaskRepository) Insert(ctx context.Context, task models.Task) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return r.table.Insert(task)
}

// GetByID retrieves a task by id
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	task, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

// GetByUserID returns the tasks whose userId equals userID, in insertion order
func (r *TaskRepository) GetByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return r.table.List(func(t models.Task) bool { return t.UserID == userID }), nil
}

// Update applies fn to the stored task atomically. Unknown ids return ErrNotFound.
func (r *TaskRepository) Update(ctx context.Context, id string, fn func(current models.Task) (models.Task, error)) (*models.Task, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	updated, ok, err := r.table.Update(id, fn)
	if !ok {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Count returns the number of stored tasks
func (r *TaskRepository) Count() int {
	return r.table.Len()
}
