package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// UserRepository handles user storage
type UserRepository struct {
	table *Table[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(ids idgen.Generator) *UserRepository {
	return &UserRepository{table: NewTable[models.User](ids)}
}

// Create stores a new user. Usernames are unique; a clash returns ErrDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	created, err := r.table.CreateUnique(*user, func(existing models.User) bool {
		return existing.Username == user.Username
	})
	if err != nil {
		return nil, fmt.Errorf("username %q: %w", user.Username, err)
	}
	return &created, nil
}

// Insert stores a user under its preset id
func (r *UserRepository) Insert(ctx context.Context, user models.User) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return r.table.Insert(user)
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	user, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetByUsername returns the first user whose username matches exactly
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}

	user, ok := r.table.Find(func(u models.User) bool { return u.Username == username })
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Count returns the number of stored users
func (r *UserRepository) Count() int {
	return r.table.Len()
}
