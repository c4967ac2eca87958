package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"
	"secure_vault/internal/utils"

	"github.com/google/uuid"
)

// Client-visible auth outcomes. The messages are part of the API contract,
// so they live on the sentinels and handlers return err.Error() directly.
var (
	ErrAlreadyRegistered = errors.New("User already registered. Please login.")
	ErrNotRegistered     = errors.New("User not registered. Please register first.")
	ErrIncorrectPassword = errors.New("Incorrect password.")
	ErrMissingFields     = errors.New("Missing required fields")
)

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	PhoneLogin(ctx context.Context, idToken, phoneNumber string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new email-provider account. No token is issued; the
// user logs in separately.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrAlreadyRegistered
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        &email,
		PasswordHash: &hashedPassword,
		AuthProvider: model.AuthProviderEmail,
		CreatedAt:    now,
		LastLogin:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two registrations can race past the existence check; the unique
		// index reports the loser here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates an email user and returns a session token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrNotRegistered
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, "", ErrIncorrectPassword
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = now

	token, err := s.jwtUtil.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// PhoneLogin authenticates a phone user, creating the account on first
// login. The idToken is the external proof of phone ownership; it is
// required but passed through opaquely, never verified or stored here.
func (s *authService) PhoneLogin(ctx context.Context, idToken, phoneNumber string) (*model.User, string, error) {
	if idToken == "" || phoneNumber == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}

	now := time.Now().UTC()
	if user == nil {
		user = &model.User{
			ID:           uuid.NewString(),
			PhoneNumber:  &phoneNumber,
			AuthProvider: model.AuthProviderPhone,
			CreatedAt:    now,
			LastLogin:    now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				// Lost a first-login race; the row exists now, use it.
				user, err = s.userRepo.FindByPhone(ctx, phoneNumber)
				if err != nil || user == nil {
					return nil, "", fmt.Errorf("failed to load user after duplicate insert: %w", err)
				}
			} else {
				return nil, "", fmt.Errorf("failed to create phone user: %w", err)
			}
		}
	} else {
		if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
			return nil, "", fmt.Errorf("failed to update last login: %w", err)
		}
		user.LastLogin = now
	}

	token, err := s.jwtUtil.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
