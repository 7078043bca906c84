package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
	"github.com/yigit/lmsdash/internal/pkg/validation"
)

// TaskService defines the interface for to-do operations
type TaskService interface {
	GetTasksByUser(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	// UpdateTask shallow-merges partial into the stored task. Any top-level
	// field may be overwritten; the id cannot.
	UpdateTask(ctx context.Context, id string, partial models.Partial) (*models.Task, error)
}

type taskServiceImpl struct {
	taskRepo *repositories.TaskRepository
	notifier Notifier
	logger   zerolog.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(taskRepo *repositories.TaskRepository, notifier Notifier, lgr zerolog.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo: taskRepo,
		notifier: orNoop(notifier),
		logger:   lgr,
	}
}

// GetTasksByUser returns the tasks whose userId equals userID
func (s *taskServiceImpl) GetTasksByUser(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving tasks: %w", err)
	}
	return tasks, nil
}

// validateTask checks the task invariants before it is stored
func (s *taskServiceImpl) validateTask(task models.Task) error {
	var details []string
	if err := validation.Struct(task); err != nil {
		var custom *apperrors.CustomError
		if !errors.As(err, &custom) {
			return err
		}
		details = append(details, custom.Details...)
	}
	if task.DueDate.IsZero() {
		details = append(details, "dueDate is required")
	}
	if len(details) > 0 {
		return apperrors.NewValidationError(details...)
	}
	return nil
}

// CreateTask validates and stores a task under a new id
func (s *taskServiceImpl) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil {
		return nil, apperrors.Validationf("task is nil")
	}

	input := *task
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if err := s.validateTask(input); err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Create(ctx, &input)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	s.notifier.Notify(changed(models.ChangeCreated, models.EntityTask, created.ID))
	return created, nil
}

// UpdateTask applies partial to the task with the given id
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, partial models.Partial) (*models.Task, error) {
	updated, err := s.taskRepo.Update(ctx, id, func(current models.Task) (models.Task, error) {
		return mergePartial(current, partial)
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrTaskNotFound
		case errors.Is(err, apperrors.ErrBadRequest):
			return nil, err
		default:
			return nil, fmt.Errorf("error updating task: %w", err)
		}
	}

	fields := make([]string, 0, len(partial))
	for key := range partial {
		fields = append(fields, key)
	}
	s.logger.Debug().Str("taskID", id).Strs("fields", fields).Msg("Task updated")

	s.notifier.Notify(changed(models.ChangeUpdated, models.EntityTask, updated.ID))
	return updated, nil
}
