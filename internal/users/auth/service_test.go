// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/dberr"
	"github.com/argusintel/argus/internal/platform/sec"
	"github.com/argusintel/argus/internal/users/auth"
)

type memoryUserRepository struct {
	byID map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byID: map[string]*auth.User{}}
}

func (m *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := m.byID[id]
	if !ok || user.DeletedAt != nil {
		return nil, dberr.ErrNotFound
	}
	return user, nil
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range m.byID {
		if user.Email == email && user.DeletedAt == nil {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryUserRepository) List(_ context.Context) ([]*auth.User, error) {
	var out []*auth.User
	for _, user := range m.byID {
		if user.DeletedAt == nil {
			out = append(out, user)
		}
	}
	return out, nil
}

func (m *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	clone := *user
	m.byID[user.ID] = &clone
	return nil
}

func (m *memoryUserRepository) Update(_ context.Context, user *auth.User) error {
	if _, ok := m.byID[user.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *user
	m.byID[user.ID] = &clone
	return nil
}

func (m *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := m.byID[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.PasswordHash = newHash
	return nil
}

func (m *memoryUserRepository) MarkVerified(_ context.Context, userID string) error {
	user, ok := m.byID[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.IsVerified = true
	return nil
}

func (m *memoryUserRepository) SoftDelete(_ context.Context, id string) error {
	user, ok := m.byID[id]
	if !ok {
		return dberr.ErrNotFound
	}
	now := time.Now()
	user.DeletedAt = &now
	user.IsActive = false
	return nil
}

type memorySessionRepository struct {
	byID map[string]*auth.Session
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{byID: map[string]*auth.Session{}}
}

func (m *memorySessionRepository) Create(_ context.Context, session *auth.Session) error {
	clone := *session
	m.byID[session.ID] = &clone
	return nil
}

func (m *memorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range m.byID {
		if session.TokenHash == tokenHash && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memorySessionRepository) Revoke(_ context.Context, sessionID string) error {
	session, ok := m.byID[sessionID]
	if !ok || session.RevokedAt != nil {
		return dberr.ErrNotFound
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (m *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	now := time.Now()
	for _, session := range m.byID {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (m *memorySessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func (m *memorySessionRepository) liveCount(userID string) int {
	count := 0
	for _, session := range m.byID {
		if session.UserID == userID && session.RevokedAt == nil {
			count++
		}
	}
	return count
}

type memoryTokenRepository struct {
	byToken map[string]string
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{byToken: map[string]string{}}
}

func (m *memoryTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	m.byToken[token] = userID
	return nil
}

func (m *memoryTokenRepository) Get(_ context.Context, token string) (string, error) {
	userID, ok := m.byToken[token]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired token")
	}
	return userID, nil
}

func (m *memoryTokenRepository) Delete(_ context.Context, token string) error {
	delete(m.byToken, token)
	return nil
}

// fakeTokenProvider mints predictable access tokens.
type fakeTokenProvider struct {
	minted int
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	f.minted++
	return "access-" + userID + "-" + strconv.Itoa(f.minted), nil
}

type testFixture struct {
	service  *auth.Service
	users    *memoryUserRepository
	sessions *memorySessionRepository
	resets   *memoryTokenRepository
	verifies *memoryTokenRepository
}

func newFixture() *testFixture {
	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	resets := newMemoryTokenRepository()
	verifies := newMemoryTokenRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := auth.NewService(users, sessions, resets, verifies, &fakeTokenProvider{}, "https://argusintel.io", logger)
	return &testFixture{service: service, users: users, sessions: sessions, resets: resets, verifies: verifies}
}

func (f *testFixture) register(t *testing.T, email, password string) *auth.User {
	t.Helper()
	user, err := f.service.Register(context.Background(), auth.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: "Test Analyst",
		Role:        sec.RoleEditor,
	})
	require.NoError(t, err)
	return user
}

/*
TestRegister_Validation covers weak passwords, malformed emails, and
unknown roles.
*/
func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input auth.RegisterInput
	}{
		{"short_password", auth.RegisterInput{Email: "a@argusintel.io", Password: "short", DisplayName: "A", Role: sec.RoleEditor}},
		{"bad_email", auth.RegisterInput{Email: "not-an-email", Password: "long-enough-pw", DisplayName: "A", Role: sec.RoleEditor}},
		{"unknown_role", auth.RegisterInput{Email: "a@argusintel.io", Password: "long-enough-pw", DisplayName: "A", Role: "superuser"}},
		{"missing_display_name", auth.RegisterInput{Email: "a@argusintel.io", Password: "long-enough-pw", Role: sec.RoleEditor}},
	}

	fixture := newFixture()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Register(context.Background(), tt.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestRegister_DuplicateEmail verifies a second account with the same email
is rejected with a conflict.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	fixture := newFixture()
	fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Email:       "ops@argusintel.io",
		Password:    "another-long-pw",
		DisplayName: "Imposter",
		Role:        sec.RoleViewer,
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestRegister_NeverStoresPlaintext verifies the persisted hash is not the
raw password and verifies against it.
*/
func TestRegister_NeverStoresPlaintext(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	stored := fixture.users.byID[user.ID]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse-battery", stored.PasswordHash))
}

/*
TestLogin covers the credential checks and session establishment.
*/
func TestLogin(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	t.Run("wrong_password_is_unauthorized", func(t *testing.T) {
		_, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Email:    "ops@argusintel.io",
			Password: "wrong-password-here",
		})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 401, appError.HTTPStatus)
	})

	t.Run("unknown_email_same_error", func(t *testing.T) {
		_, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Email:    "ghost@argusintel.io",
			Password: "correct-horse-battery",
		})
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 401, appError.HTTPStatus)
		assert.Equal(t, "Invalid login credentials", appError.Message)
	})

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Email:     "ops@argusintel.io",
			Password:  "correct-horse-battery",
			UserAgent: "go-test",
			IPAddress: "10.0.0.1",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Equal(t, user.ID, session.User.ID)
		assert.Equal(t, 1, fixture.sessions.liveCount(user.ID))
	})
}

/*
TestRefreshSession_Rotation verifies the presented refresh token is
revoked on use and a replay of it fails.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	fixture := newFixture()
	fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	login, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	refreshed, err := fixture.service.RefreshSession(context.Background(), login.RefreshToken, "go-test", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.NotEqual(t, login.AccessToken, refreshed.AccessToken)

	// The rotated-out token must be dead.
	_, err = fixture.service.RefreshSession(context.Background(), login.RefreshToken, "go-test", "10.0.0.1")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
}

/*
TestLogout verifies revocation and that unknown tokens are accepted
silently.
*/
func TestLogout(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	login, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), login.RefreshToken))
	assert.Equal(t, 0, fixture.sessions.liveCount(user.ID))

	// Repeating with the same (now dead) token is not an error.
	require.NoError(t, fixture.service.Logout(context.Background(), login.RefreshToken))
	require.NoError(t, fixture.service.Logout(context.Background(), "never-issued"))
}

/*
TestChangePassword verifies the current-password gate and that every
session dies after a successful change.
*/
func TestChangePassword(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	err = fixture.service.ChangePassword(context.Background(), user.ID, "wrong-current-pw", "brand-new-password")
	require.Error(t, err)
	assert.Equal(t, 401, apperr.As(err).HTTPStatus)

	require.NoError(t, fixture.service.ChangePassword(context.Background(), user.ID, "correct-horse-battery", "brand-new-password"))
	assert.Equal(t, 0, fixture.sessions.liveCount(user.ID))

	_, err = fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "brand-new-password",
	})
	require.NoError(t, err)
}

/*
TestPasswordResetFlow walks forgot -> reset and verifies the token is
single use.
*/
func TestPasswordResetFlow(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	require.NoError(t, fixture.service.ForgotPassword(context.Background(), "ops@argusintel.io"))
	require.Len(t, fixture.resets.byToken, 1)

	var token string
	for issued := range fixture.resets.byToken {
		token = issued
	}

	require.NoError(t, fixture.service.ResetPassword(context.Background(), token, "reset-to-this-pw"))
	assert.Equal(t, 0, fixture.sessions.liveCount(user.ID))

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "reset-to-this-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fixture.sessions.liveCount(user.ID))

	// Token is burned on use.
	err = fixture.service.ResetPassword(context.Background(), token, "yet-another-pw")
	require.Error(t, err)
}

/*
TestForgotPassword_UnknownEmail verifies the service does not disclose
whether an account exists.
*/
func TestForgotPassword_UnknownEmail(t *testing.T) {
	fixture := newFixture()

	require.NoError(t, fixture.service.ForgotPassword(context.Background(), "ghost@argusintel.io"))
	assert.Empty(t, fixture.resets.byToken)
}

/*
TestVerifyEmail verifies the registration token marks the account
verified.
*/
func TestVerifyEmail(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")
	require.False(t, user.IsVerified)
	require.Len(t, fixture.verifies.byToken, 1)

	var token string
	for issued := range fixture.verifies.byToken {
		token = issued
	}

	require.NoError(t, fixture.service.VerifyEmail(context.Background(), token))
	assert.True(t, fixture.users.byID[user.ID].IsVerified)
	assert.Empty(t, fixture.verifies.byToken)
}

/*
TestDeactivateUser verifies soft deletion hides the account and kills its
sessions.
*/
func TestDeactivateUser(t *testing.T) {
	fixture := newFixture()
	user := fixture.register(t, "ops@argusintel.io", "correct-horse-battery")

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.DeactivateUser(context.Background(), user.ID))
	assert.Equal(t, 0, fixture.sessions.liveCount(user.ID))

	_, err = fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ops@argusintel.io",
		Password: "correct-horse-battery",
	})
	require.Error(t, err)

	users, err := fixture.service.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
