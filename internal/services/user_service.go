package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// UserService handles business logic for the account directory.
//
// Account reads answer Forbidden before NotFound: a caller who is neither the
// account owner nor an ADMIN is rejected without the existence of the account
// ever being checked. This is deliberately different from order lookups,
// which hide foreign orders behind NotFound.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// ListUsers returns all accounts. ADMIN only.
func (s *UserService) ListUsers(identity models.Identity) ([]models.User, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("listing accounts: %w", models.ErrForbidden)
	}
	return s.repo.GetAll()
}

// GetUser returns a single account, allowed for the account owner and for
// ADMIN callers.
func (s *UserService) GetUser(id string, identity models.Identity) (*models.User, error) {
	if identity.UserID != id && !identity.IsAdmin() {
		return nil, fmt.Errorf("reading account %s: %w", id, models.ErrForbidden)
	}
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial account update. ADMIN only; this is the only
// way a role changes after registration.
func (s *UserService) UpdateUser(id string, update models.UserUpdate, identity models.Identity) (*models.User, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("updating account %s: %w", id, models.ErrForbidden)
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return user, nil
}
