package service

import (
	"context"
	"errors"
	"fmt"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"
)

var ErrUserNotFound = errors.New("User not found")

// UserService provides profile and settings management
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID, displayName string) (*model.User, error)
	UpdateSettings(ctx context.Context, userID string, req model.UpdateSettingsRequest) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, displayName string) (*model.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, displayName); err != nil {
		return nil, fmt.Errorf("failed to update profile in repo: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *userService) UpdateSettings(ctx context.Context, userID string, req model.UpdateSettingsRequest) (*model.User, error) {
	if err := s.userRepo.UpdateSettings(ctx, userID, req.Theme, req.Layout); err != nil {
		return nil, fmt.Errorf("failed to update settings in repo: %w", err)
	}
	return s.GetProfile(ctx, userID)
}
