// Package app implements the application use cases on top of the domain
// repository ports.
package app

import (
	"context"
	"errors"
	"strings"

	"exercisetracker/internal/domain"
)

// ErrUsernameRequired is returned when a username is empty after trimming.
var ErrUsernameRequired = errors.New("username required")

// UserService encapsulates the user directory use cases.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create validates and stores a new user. The username is trimmed of
// surrounding whitespace; no uniqueness is enforced.
func (s *UserService) Create(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	return s.users.CreateUser(ctx, username)
}

// List returns every user in store order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}
