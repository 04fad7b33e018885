package core

import (
	"context"
	"errors"
	"fmt"

	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user record does not exist.
var ErrUserNotFound = errors.New("user not found")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a user record keyed by email. Registration is idempotent:
// if a record for the email already exists it is returned unchanged with
// created=false and nothing is written.
func (s *userService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user '%s': %w", req.Email, err)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleMember,
	}
	if _, err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user '%s': %w", req.Email, err)
	}
	return user, true, nil
}

// List returns all user records.
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the record for email carries the admin role.
// A missing record reports false rather than an error: authorization
// treats "no record" and "not admin" identically.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve role for '%s': %w", email, err)
	}
	return user.IsAdmin(), nil
}

// Promote sets the admin role on the user record with the given ID.
func (s *userService) Promote(ctx context.Context, id string) error {
	if err := s.userRepo.SetRole(ctx, id, models.RoleAdmin); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrUserNotFound, id)
		}
		return fmt.Errorf("failed to promote user '%s': %w", id, err)
	}
	return nil
}

// Remove deletes the user record with the given ID.
func (s *userService) Remove(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrUserNotFound, id)
		}
		return fmt.Errorf("failed to delete user '%s': %w", id, err)
	}
	return nil
}
