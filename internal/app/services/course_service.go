package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
	"github.com/yigit/lmsdash/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	notifier   Notifier
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, notifier Notifier) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		notifier:   orNoop(notifier),
	}
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by id
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// CreateCourse validates and stores a course under a new id
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, apperrors.Validationf("course is nil")
	}
	if err := validation.Struct(*course); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.notifier.Notify(changed(models.ChangeCreated, models.EntityCourse, created.ID))
	return created, nil
}
