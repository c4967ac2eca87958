package service

import (
	"context"
	"testing"
	"time"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"
	"secure_vault/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository enforcing the same uniqueness
// rules the real store does.
type fakeUserRepo struct {
	users     map[string]*model.User
	createErr error // forced Create failure, simulates losing an insert race
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return repository.ErrDuplicate
		}
		if user.PhoneNumber != nil && u.PhoneNumber != nil && *u.PhoneNumber == *user.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*model.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber != nil && *u.PhoneNumber == phoneNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastLogin = at
		return nil
	}
	return repository.ErrDuplicate // unused path in these tests
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, displayName string) error {
	if u, ok := f.users[id]; ok {
		u.DisplayName = &displayName
	}
	return nil
}

func (f *fakeUserRepo) UpdateSettings(_ context.Context, id string, theme, layout *string) error {
	if u, ok := f.users[id]; ok {
		if theme != nil {
			u.Theme = theme
		}
		if layout != nil {
			u.Layout = layout
		}
	}
	return nil
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *utils.JWTUtil) {
	repo := newFakeUserRepo()
	jwtUtil := utils.NewJWTUtil("test-secret", 168)
	return NewAuthService(repo, jwtUtil), repo, jwtUtil
}

func TestAuthService_Register(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	user, err := svc.Register(context.Background(), "a@x.com", "abcdef")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.AuthProviderEmail, user.AuthProvider)
	require.NotNil(t, user.Email)
	assert.Equal(t, "a@x.com", *user.Email)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "abcdef", *user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("abcdef", *user.PasswordHash))
	assert.Len(t, repo.users, 1)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "a@x.com", "abcdef")
	require.NoError(t, err)

	// A different password does not help
	_, err = svc.Register(context.Background(), "a@x.com", "another-password")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestAuthService_Register_DuplicateCaseInsensitive(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Foo@Bar.com", "abcdef")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "foo@bar.com", "abcdef")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Len(t, repo.users, 1)
}

func TestAuthService_Register_InsertRaceLoser(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()
	repo.createErr = repository.ErrDuplicate

	// The existence check saw nothing, but the store's unique index fired
	_, err := svc.Register(context.Background(), "a@x.com", "abcdef")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestAuthService_Login(t *testing.T) {
	svc, repo, jwtUtil := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), "a@x.com", "abcdef")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "a@x.com", "abcdef")

	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.AuthProviderEmail, claims.AuthProvider)

	stored := repo.users[user.ID]
	assert.False(t, stored.LastLogin.Before(stored.CreatedAt))
}

func TestAuthService_Login_NotRegistered(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "abcdef")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestAuthService_Login_IncorrectPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "a@x.com", "abcdef")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestAuthService_Login_EmailNormalization(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Foo@Bar.com", "abcdef")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "foo@bar.com", "abcdef")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.Email)
	assert.Equal(t, "foo@bar.com", *user.Email)
}

func TestAuthService_PhoneLogin_MissingFields(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, _, err := svc.PhoneLogin(context.Background(), "", "+15550001111")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.PhoneLogin(context.Background(), "external-proof", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuthService_PhoneLogin_IdempotentOnIdentity(t *testing.T) {
	svc, repo, jwtUtil := newAuthServiceForTest()

	first, token, err := svc.PhoneLogin(context.Background(), "external-proof", "+15550001111")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, model.AuthProviderPhone, first.AuthProvider)
	assert.Len(t, repo.users, 1)

	second, token2, err := svc.PhoneLogin(context.Background(), "external-proof", "+15550001111")
	require.NoError(t, err)
	require.NotEmpty(t, token2)

	// Same record: no second user, creation time untouched
	assert.Len(t, repo.users, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.LastLogin.Before(first.LastLogin))

	claims, err := jwtUtil.ValidateToken(token2)
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", claims.PhoneNumber)
	assert.Empty(t, claims.Email)
	assert.Equal(t, model.AuthProviderPhone, claims.AuthProvider)
}
