package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования по умолчанию
const DefaultCost = bcrypt.DefaultCost

// DefaultMinLength минимальная длина пароля по умолчанию
const DefaultMinLength = 6

// Ошибки проверки пароля
var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrMismatch         = errors.New("password does not match")
)

// bcrypt игнорирует все после 72 байт
const maxPasswordBytes = 72

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost      int
	minLength int
}

// NewBCryptHasher создает новый hasher с заданной стоимостью и минимальной длиной пароля
func NewBCryptHasher(cost, minLength int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &BCryptHasher{
		cost:      cost,
		minLength: minLength,
	}
}

// Hash проверяет длину и хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < h.minLength {
		return "", ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// Check проверяет соответствие пароля хешу
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
