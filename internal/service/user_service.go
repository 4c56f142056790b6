package service

import (
	"context"
	"errors"
	"strings"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrInvalidRole       = errors.New("unknown role")
	ErrInvalidUserStatus = errors.New("unknown user status")
	ErrUserNoUpdates     = errors.New("no updates provided")
)

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) ListPaged(ctx context.Context, filter repository.UserFilter, req repository.PageRequest) (repository.PageResult[domain.User], error) {
	if filter.Role != "" && !domain.ValidRole(filter.Role) {
		return repository.PageResult[domain.User]{}, ErrInvalidRole
	}
	return s.repo.ListPaged(filter, req)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*domain.User, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.New("name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if len(updates) == 0 {
		return nil, ErrUserNoUpdates
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

// SetRole is an admin operation; role changes never happen through
// self-service paths.
func (s *UserService) SetRole(ctx context.Context, id uint, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if err := s.repo.Update(id, map[string]any{"role": role}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *UserService) SetStatus(ctx context.Context, id uint, status string) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusSuspended {
		return nil, ErrInvalidUserStatus
	}
	if err := s.repo.Update(id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
