package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure_vault/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateProfile(ctx context.Context, id, displayName string) error
	UpdateSettings(ctx context.Context, id string, theme, layout *string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, phone_number, password_hash, auth_provider, display_name, theme, layout, created_at, last_login`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PhoneNumber, &user.PasswordHash,
		&user.AuthProvider, &user.DisplayName, &user.Theme, &user.Layout,
		&user.CreatedAt, &user.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, the service layer decides
		}
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Returns ErrDuplicate when the email or phone
// number is already taken, closing the check-then-insert race at the store.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, email, phone_number, password_hash, auth_provider, created_at, last_login)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, user.ID, user.Email, user.PhoneNumber, user.PasswordHash,
		user.AuthProvider, user.CreatedAt, user.LastLogin)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by their (already normalized) email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByPhone retrieves a user by their phone number
func (r *userRepository) FindByPhone(ctx context.Context, phoneNumber string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, phoneNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by phone: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// UpdateLastLogin stamps the user's last successful login
func (r *userRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	sql := `UPDATE users SET last_login = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for last login update")
	}
	return nil
}

// UpdateProfile sets the user's display name
func (r *userRepository) UpdateProfile(ctx context.Context, id, displayName string) error {
	sql := `UPDATE users SET display_name = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, displayName, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for profile update")
	}
	return nil
}

// UpdateSettings updates the provided preference fields, leaving nil ones unchanged
func (r *userRepository) UpdateSettings(ctx context.Context, id string, theme, layout *string) error {
	sql := `UPDATE users SET theme = COALESCE($1, theme), layout = COALESCE($2, layout) WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, sql, theme, layout, id)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for settings update")
	}
	return nil
}
