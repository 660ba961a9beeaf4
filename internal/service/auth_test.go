package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	domainmocks "github.com/rykoi/storefront/internal/domain/mocks"
	"github.com/rykoi/storefront/internal/utils/jwt"
	"github.com/rykoi/storefront/internal/utils/password"
	passwordmocks "github.com/rykoi/storefront/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		username := "ash"
		pwd := "pikachu123"
		passwordHash := "hashed_password"
		user := &domain.User{ID: uuid.New(), Username: username, Name: username, PasswordHash: passwordHash}

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, username, username, passwordHash).Return(user, nil).Once()

		session, err := svc.Register(ctx, username, pwd)
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, username, session.Username)
		assert.Zero(t, session.Pokeballs)

		claims, err := jwtManager.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, username, claims.Username)
	})

	t.Run("Username is trimmed", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Username: "misty"}

		mockHasher.EXPECT().Hash("starmie1").Return("hash", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "misty", "misty", "hash").Return(user, nil).Once()

		_, err := svc.Register(ctx, "  misty ", "starmie1")
		require.NoError(t, err)
	})

	t.Run("Empty username", func(t *testing.T) {
		session, err := svc.Register(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("Empty password", func(t *testing.T) {
		session, err := svc.Register(ctx, "ash", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("Password too short", func(t *testing.T) {
		mockHasher.EXPECT().Hash("abc").Return("", password.ErrPasswordTooShort).Once()

		session, err := svc.Register(ctx, "ash", "abc")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("pikachu123").Return("", errors.New("hash error")).Once()

		session, err := svc.Register(ctx, "ash", "pikachu123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("User already exists", func(t *testing.T) {
		mockHasher.EXPECT().Hash("pikachu123").Return("hashed_password", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "brock", "brock", "hashed_password").
			Return(nil, domain.ErrUserExists).Once()

		session, err := svc.Register(ctx, "brock", "pikachu123")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, session)
	})

	t.Run("Database error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("pikachu123").Return("hashed_password", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "gary", "gary", "hashed_password").
			Return(nil, errors.New("db error")).Once()

		session, err := svc.Register(ctx, "gary", "pikachu123")
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Username: "ash", PasswordHash: "hashed_password", Pokeballs: 12}

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "ash").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_password", "pikachu123").Return(nil).Once()

		session, err := svc.Login(ctx, "ash", "pikachu123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, int64(12), session.Pokeballs)

		claims, err := jwtManager.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("Empty username", func(t *testing.T) {
		session, err := svc.Login(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("Empty password", func(t *testing.T) {
		session, err := svc.Login(ctx, "ash", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, session)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "nobody").Return(nil, domain.ErrUserNotFound).Once()

		session, err := svc.Login(ctx, "nobody", "pikachu123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("Wrong password", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Username: "ash", PasswordHash: "hashed_password"}

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "ash").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_password", "wrongpassword").Return(password.ErrMismatch).Once()

		session, err := svc.Login(ctx, "ash", "wrongpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "ash").Return(nil, errors.New("db error")).Once()

		session, err := svc.Login(ctx, "ash", "pikachu123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})
}
