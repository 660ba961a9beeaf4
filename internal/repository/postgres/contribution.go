package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rykoi/storefront/internal/domain"
)

const contributionColumns = `id, user_id, box_id, amount_paid, box_share, credits_granted, status, 
	payment_reference, session_id, currency, completed_at, created_at`

// ContributionRepository реализует domain.ContributionRepository
type ContributionRepository struct {
	db DBTX
}

// NewContributionRepository создает новый ContributionRepository
func NewContributionRepository(db DBTX) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// GetContributionByReference получает взнос по идентификатору платежа
func (r *ContributionRepository) GetContributionByReference(ctx context.Context, paymentReference string) (*domain.Contribution, error) {
	c := &domain.Contribution{}

	err := r.db.QueryRow(ctx,
		`SELECT `+contributionColumns+` 
		 FROM contributions 
		 WHERE payment_reference = $1`,
		paymentReference,
	).Scan(contributionFields(c)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContributionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get contribution by reference %q: %w", paymentReference, err)
	}

	return c, nil
}

// GetBoxContributions получает последние проведенные взносы в коробку
func (r *ContributionRepository) GetBoxContributions(ctx context.Context, boxID uuid.UUID, limit int) ([]*domain.Contribution, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contributionColumns+` 
		 FROM contributions 
		 WHERE box_id = $1 AND status = $2 
		 ORDER BY created_at DESC 
		 LIMIT $3`,
		boxID, domain.ContributionStatusCompleted, limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get contributions for box %s: %w", boxID, err)
	}
	defer rows.Close()

	var contributions []*domain.Contribution
	for rows.Next() {
		c := &domain.Contribution{}
		if err := rows.Scan(contributionFields(c)...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating contributions: %w", err)
	}

	return contributions, nil
}

func contributionFields(c *domain.Contribution) []any {
	return []any{
		&c.ID, &c.UserID, &c.BoxID, &c.AmountPaid, &c.BoxShare, &c.CreditsGranted, &c.Status,
		&c.PaymentReference, &c.SessionID, &c.Currency, &c.CompletedAt, &c.CreatedAt,
	}
}
