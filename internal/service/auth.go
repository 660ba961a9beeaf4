package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rykoi/storefront/internal/domain"
	"github.com/rykoi/storefront/internal/utils/jwt"
	"github.com/rykoi/storefront/internal/utils/password"
)

// maxUsernameLength ограничение длины имени пользователя
const maxUsernameLength = 64

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register регистрирует нового пользователя и сразу открывает для него сессию
func (s *AuthService) Register(ctx context.Context, username, userPassword string) (*domain.AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || userPassword == "" || len(username) > maxUsernameLength {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooShort) || errors.Is(err, password.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("auth service: failed to hash password for user %q: %w", username, err)
	}

	// Отображаемое имя совпадает с логином, пока пользователь его не сменит
	user, err := s.userRepo.CreateUser(ctx, username, username, hash)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to register user %q: %w", username, err)
	}

	return s.newSession(user)
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, username, userPassword string) (*domain.AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || userPassword == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to get user %q: %w", username, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.newSession(user)
}

func (s *AuthService) newSession(user *domain.User) (*domain.AuthSession, error) {
	token, err := s.jwtManager.Generate(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return &domain.AuthSession{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Pokeballs: user.Pokeballs,
	}, nil
}
