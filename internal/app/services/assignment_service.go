package services

import (
	"context"
	"fmt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
	"github.com/yigit/lmsdash/internal/pkg/validation"
)

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	GetAssignmentsByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error)
}

type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	notifier       Notifier
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, notifier Notifier) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		notifier:       orNoop(notifier),
	}
}

// GetAssignmentsByCourse returns the assignments whose courseId equals courseID.
// Unknown courses simply have no assignments.
func (s *assignmentServiceImpl) GetAssignmentsByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment validates and stores an assignment under a new id
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if assignment == nil {
		return nil, apperrors.Validationf("assignment is nil")
	}

	input := *assignment
	if input.Status == "" {
		input.Status = models.StatusPending
	}
	if input.MaxGrade == 0 {
		input.MaxGrade = models.DefaultMaxGrade
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.DueDate.IsZero() {
		return nil, apperrors.Validationf("dueDate is required")
	}
	if input.Grade != nil && *input.Grade > input.MaxGrade {
		return nil, apperrors.Validationf("grade %d exceeds maxGrade %d", *input.Grade, input.MaxGrade)
	}

	created, err := s.assignmentRepo.Create(ctx, &input)
	if err != nil {
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}

	event := changed(models.ChangeCreated, models.EntityAssignment, created.ID)
	event.CourseID = created.CourseID
	s.notifier.Notify(event)
	return created, nil
}
