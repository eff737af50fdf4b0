package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "courselens.test",
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a student account with tokens", func(t *testing.T) {
		userStore := newFakeUserStore()
		facultyStore := &fakeFacultyStore{faculties: []models.Faculty{{ID: 10, Name: "Faculty of Engineering", Code: "ENG"}}}
		svc := NewAuthService(userStore, facultyStore, testJWTService(), zerolog.Nop())

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "Somchai@Student.ac.th",
			Username:  "somchai",
			Password:  "S3cret!pass",
			FacultyID: int64Ptr(10),
		})
		require.NoError(t, err)

		assert.Equal(t, "somchai@student.ac.th", resp.User.Email)
		assert.Equal(t, string(models.RoleStudent), resp.User.Role)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)

		stored, err := userStore.GetUserByEmail(ctx, "somchai@student.ac.th")
		require.NoError(t, err)
		assert.NotEqual(t, "S3cret!pass", stored.Password)
		assert.True(t, stored.IsActive)
	})

	t.Run("rejects unknown faculty", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore(), &fakeFacultyStore{}, testJWTService(), zerolog.Nop())

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "a@b.ac.th",
			Username:  "a",
			Password:  "password1",
			FacultyID: int64Ptr(99),
		})
		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userStore := newFakeUserStore()
		svc := NewAuthService(userStore, &fakeFacultyStore{}, testJWTService(), zerolog.Nop())

		req := &dto.RegisterRequest{Email: "a@b.ac.th", Username: "a", Password: "password1"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T) (AuthService, *fakeUserStore) {
		t.Helper()
		userStore := newFakeUserStore()
		svc := NewAuthService(userStore, &fakeFacultyStore{}, testJWTService(), zerolog.Nop())
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email: "somchai@student.ac.th", Username: "somchai", Password: "S3cret!pass",
		})
		require.NoError(t, err)
		return svc, userStore
	}

	t.Run("valid credentials return tokens", func(t *testing.T) {
		svc, _ := register(t)
		resp, err := svc.Login(ctx, "somchai@student.ac.th", "S3cret!pass")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		svc, _ := register(t)
		_, err := svc.Login(ctx, "somchai@student.ac.th", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		svc, _ := register(t)
		_, err := svc.Login(ctx, "nobody@student.ac.th", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("disabled accounts cannot log in", func(t *testing.T) {
		svc, userStore := register(t)
		for i := range userStore.users {
			userStore.users[i].IsActive = false
		}
		_, err := svc.Login(ctx, "somchai@student.ac.th", "S3cret!pass")
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (AuthService, string) {
		t.Helper()
		svc := NewAuthService(newFakeUserStore(), &fakeFacultyStore{}, testJWTService(), zerolog.Nop())
		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Email: "somchai@student.ac.th", Username: "somchai", Password: "S3cret!pass",
		})
		require.NoError(t, err)
		return svc, resp.Token.RefreshToken
	}

	t.Run("exchanges a valid token for a new pair", func(t *testing.T) {
		svc, refreshToken := setup(t)
		tokens, err := svc.RefreshToken(ctx, refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEqual(t, refreshToken, tokens.RefreshToken)
	})

	t.Run("consumed tokens are single use", func(t *testing.T) {
		svc, refreshToken := setup(t)
		_, err := svc.RefreshToken(ctx, refreshToken)
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("unknown tokens are rejected", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	userStore := newFakeUserStore(models.User{
		ID: 7, Email: "somchai@student.ac.th", Username: "somchai",
		RoleType: models.RoleStudent, FacultyID: int64Ptr(10), IsActive: true,
	})
	facultyStore := &fakeFacultyStore{faculties: []models.Faculty{{ID: 10, Name: "Faculty of Engineering", Code: "ENG"}}}
	svc := NewAuthService(userStore, facultyStore, testJWTService(), zerolog.Nop())

	profile, err := svc.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "somchai", profile.Username)
	assert.Equal(t, "Faculty of Engineering", profile.FacultyName)

	_, err = svc.GetProfile(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
