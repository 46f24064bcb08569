// Package user holds the records behind the User Management screen.
// Authentication itself is out of scope; these are grid rows, not
// principals.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planops/ruleboard/internal/repository"
)

// User is one row of the User Management grid.
type User struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Email        string    `json:"email" yaml:"email"`
	Role         string    `json:"role" yaml:"role"`
	Active       bool      `json:"active" yaml:"active"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

var (
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidInput indicates invalid input for user operations.
	ErrInvalidInput = errors.New("invalid user input")
)

// Repository provides persistence for users.
type Repository interface {
	Create(ctx context.Context, u User) error
	Get(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
}

// Service handles user management operations.
type Service struct {
	users Repository
}

// NewService creates a new user service.
func NewService(users Repository) *Service {
	return &Service{users: users}
}

// Create adds a user with a generated id.
func (s *Service) Create(ctx context.Context, name, email, role string) (User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return User{}, ErrInvalidInput
	}
	now := time.Now()
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// SetActive flips a user's active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (User, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("getting user: %w", err)
	}
	u.Active = active
	u.LastModified = time.Now()
	if err := s.users.Update(ctx, u); err != nil {
		return User{}, fmt.Errorf("updating user: %w", err)
	}
	return u, nil
}

// List returns all users in store order.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.users.List(ctx)
}
