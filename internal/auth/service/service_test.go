package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/auth/domain"
	"github.com/districtclose/districtclose/internal/auth/repository"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Session{}))
	require.NoError(t, db.Exec("DELETE FROM users").Error)
	require.NoError(t, db.Exec("DELETE FROM sessions").Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(zap.NewNop(), repository.NewUserRepository(db), repository.NewSessionRepository(db), node)
}

func TestSignUpAndAuthenticate(t *testing.T) {
	svc := setupService(t)

	result, err := svc.SignUp(context.Background(), domain.SignUpRequest{
		Email:           "Alice@Example.com",
		Password:        "hunter2hunter2",
		PasswordConfirm: "hunter2hunter2",
		FullName:        "Alice Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, "Alice Smith", result.User.FullName)
	assert.NotEmpty(t, result.RawToken)
	assert.NotContains(t, result.User.PasswordHash, "hunter2")

	user, err := svc.Authenticate(context.Background(), result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)
}

func TestSignUpValidation(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "not-an-email", Password: "hunter2hunter2", PasswordConfirm: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "a@example.com", Password: "short", PasswordConfirm: "short",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	_, err = svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "a@example.com", Password: "hunter2hunter2", PasswordConfirm: "different-pass",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "a@example.com", Password: "hunter2hunter2", PasswordConfirm: "hunter2hunter2",
	})
	require.NoError(t, err)
	_, err = svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "a@example.com", Password: "hunter2hunter2", PasswordConfirm: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "bob@example.com", Password: "hunter2hunter2", PasswordConfirm: "hunter2hunter2",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "BOB@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RawToken)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "bob@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@example.com", Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := setupService(t)

	result, err := svc.SignUp(context.Background(), domain.SignUpRequest{
		Email: "carol@example.com", Password: "hunter2hunter2", PasswordConfirm: "hunter2hunter2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RawToken))

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)

	_, err = svc.Authenticate(context.Background(), "bogus-token")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}
