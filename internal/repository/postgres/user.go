package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rykoi/storefront/internal/domain"
)

const userColumns = `id, username, name, email, password_hash, pokeballs, total_contributed, packs_purchased, created_at`

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, username, name, passwordHash string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (username, name, password_hash) 
		 VALUES ($1, $2, $3) 
		 RETURNING `+userColumns,
		username, name, passwordHash,
	))

	if err != nil {
		// Проверка на уникальность имени пользователя
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", username, err)
	}

	return user, nil
}

// GetUserByUsername получает пользователя по имени
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` 
		 FROM users 
		 WHERE username = $1`,
		username,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by username %q: %w", username, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` 
		 FROM users 
		 WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %s: %w", id, err)
	}

	return user, nil
}

// GetTopContributors возвращает пользователей с наибольшей суммой взносов
func (r *UserRepository) GetTopContributors(ctx context.Context, limit int) ([]*domain.Contributor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, name, total_contributed 
		 FROM users 
		 WHERE total_contributed > 0 
		 ORDER BY total_contributed DESC, created_at ASC 
		 LIMIT $1`,
		limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get top contributors: %w", err)
	}
	defer rows.Close()

	var contributors []*domain.Contributor
	for rows.Next() {
		c := &domain.Contributor{}
		if err := rows.Scan(&c.UserID, &c.Username, &c.Name, &c.TotalContributed); err != nil {
			return nil, fmt.Errorf("repository: failed to scan contributor: %w", err)
		}
		contributors = append(contributors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating contributors: %w", err)
	}

	return contributors, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Name, &user.Email, &user.PasswordHash,
		&user.Pokeballs, &user.TotalContributed, &user.PacksPurchased, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
