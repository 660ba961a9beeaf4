package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rykoi/storefront/internal/domain"
)

// PackRepository реализует domain.PackRepository
type PackRepository struct {
	db DBTX
}

// NewPackRepository создает новый PackRepository
func NewPackRepository(db DBTX) *PackRepository {
	return &PackRepository{db: db}
}

// GetAvailablePacks получает паки, доступные для покупки
func (r *PackRepository) GetAvailablePacks(ctx context.Context) ([]*domain.Pack, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, set_name, image_url, price_pokeballs, cards_per_pack 
		 FROM packs 
		 WHERE is_available = TRUE 
		 ORDER BY price_pokeballs ASC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get available packs: %w", err)
	}
	defer rows.Close()

	var packs []*domain.Pack
	for rows.Next() {
		p := &domain.Pack{}
		if err := rows.Scan(&p.ID, &p.Name, &p.SetName, &p.ImageURL, &p.PricePokeballs, &p.CardsPerPack); err != nil {
			return nil, fmt.Errorf("repository: failed to scan pack: %w", err)
		}
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating packs: %w", err)
	}

	return packs, nil
}

// PurchasePack списывает покеболы и создает покупку пака одной транзакцией.
// Списание условное (pokeballs >= цена), поэтому баланс не уходит в минус
// при параллельных покупках.
func (r *PackRepository) PurchasePack(ctx context.Context, userID, packID uuid.UUID, scheduledStream time.Time) (*domain.PackPurchase, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin pack purchase for user %s: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var price int64
	err = tx.QueryRow(ctx,
		`SELECT price_pokeballs 
		 FROM packs 
		 WHERE id = $1 AND is_available = TRUE`,
		packID,
	).Scan(&price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPackNotFound
		}
		return nil, fmt.Errorf("repository: failed to get pack %s: %w", packID, err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users 
		 SET pokeballs = pokeballs - $1, 
		     packs_purchased = packs_purchased + 1, 
		     updated_at = NOW() 
		 WHERE id = $2 AND pokeballs >= $1`,
		price, userID,
	)
	if err != nil {
		if _, constraint := pgErrorCode(err); constraint == constraintUserPokeballs {
			return nil, domain.ErrInsufficientCredits
		}
		return nil, fmt.Errorf("repository: failed to debit user %s: %w", userID, err)
	}

	if tag.RowsAffected() == 0 {
		// Либо пользователя нет, либо не хватает покеболов
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("repository: failed to check user %s: %w", userID, err)
		}
		if !exists {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrInsufficientCredits
	}

	purchase := &domain.PackPurchase{
		UserID:          userID,
		PackID:          packID,
		PokeballsSpent:  price,
		Status:          domain.PurchaseStatusPending,
		ScheduledStream: scheduledStream,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO pack_purchases (user_id, pack_id, pokeballs_spent, status, scheduled_stream) 
		 VALUES ($1, $2, $3, $4, $5) 
		 RETURNING id, created_at`,
		userID, packID, price, purchase.Status, scheduledStream,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert pack purchase for user %s: %w", userID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO credit_transactions (user_id, type, credits, amount, reference_id) 
		 VALUES ($1, $2, $3, NULL, $4)`,
		userID, domain.CreditTransactionPackPurchase, -price, purchase.ID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to record pack purchase %s: %w", purchase.ID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit pack purchase: %w", err)
	}

	return purchase, nil
}
