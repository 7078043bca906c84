package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
	"github.com/yigit/lmsdash/internal/pkg/auth"
	"github.com/yigit/lmsdash/internal/pkg/validation"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
	notifier Notifier
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, notifier Notifier) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		notifier: orNoop(notifier),
	}
}

// GetUserByID retrieves a user by id
func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetUserByUsername returns the user with exactly this username
func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by username: %w", err)
	}
	return user, nil
}

// CreateUser validates the user, hashes the plain-text password it carries
// and stores it under a new id
func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, apperrors.Validationf("user is nil")
	}

	input := *user
	if input.Role == "" {
		input.Role = models.RoleStudent
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	input.Password = hash

	created, err := s.userRepo.Create(ctx, &input)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.notifier.Notify(changed(models.ChangeCreated, models.EntityUser, created.ID))
	return created, nil
}
