package repository

import (
	"context"
	"testing"
	"time"

	"secure_vault/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepository_Create(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	email := "a@x.com"
	hash := "$2a$10$fakehash"
	now := time.Now().UTC()
	user := &model.User{
		ID:           "u1",
		Email:        &email,
		PasswordHash: &hash,
		AuthProvider: model.AuthProviderEmail,
		CreatedAt:    now,
		LastLogin:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	email := "a@x.com"
	user := &model.User{ID: "u1", Email: &email, AuthProvider: model.AuthProviderEmail}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	email := "a@x.com"
	hash := "$2a$10$fakehash"
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(email).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "phone_number", "password_hash", "auth_provider",
			"display_name", "theme", "layout", "created_at", "last_login",
		}).AddRow("u1", &email, nil, &hash, model.AuthProviderEmail, nil, nil, nil, now, now))

	user, err := repo.FindByEmail(context.Background(), email)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, email, *user.Email)
	assert.Nil(t, user.PhoneNumber)
	assert.Equal(t, model.AuthProviderEmail, user.AuthProvider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@x.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "phone_number", "password_hash", "auth_provider",
			"display_name", "theme", "layout", "created_at", "last_login",
		}))

	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(pgxmock.AnyArg(), "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateLastLogin(context.Background(), "u1", time.Now())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_NotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec("UPDATE users SET display_name").
		WithArgs("Alice", "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateProfile(context.Background(), "missing", "Alice")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
