package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rykoi/storefront/internal/domain"
)

const boxColumns = `id, name, description, image_url, set_name, target_price, current_raised, 
	contributors_count, status, scheduled_break, stream_url, is_featured, created_at`

// BoxRepository реализует domain.BoxRepository
type BoxRepository struct {
	db DBTX
}

// NewBoxRepository создает новый BoxRepository
func NewBoxRepository(db DBTX) *BoxRepository {
	return &BoxRepository{db: db}
}

// GetBoxByID получает коробку по ID
func (r *BoxRepository) GetBoxByID(ctx context.Context, id uuid.UUID) (*domain.Box, error) {
	box := &domain.Box{}

	err := r.db.QueryRow(ctx,
		`SELECT `+boxColumns+` 
		 FROM boxes 
		 WHERE id = $1`,
		id,
	).Scan(boxFields(box)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoxNotFound
		}
		return nil, fmt.Errorf("repository: failed to get box %s: %w", id, err)
	}

	return box, nil
}

// GetActiveBoxes получает коробки, которые видны на витрине
func (r *BoxRepository) GetActiveBoxes(ctx context.Context) ([]*domain.Box, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+boxColumns+` 
		 FROM boxes 
		 WHERE status IN ($1, $2, $3) 
		 ORDER BY created_at DESC`,
		domain.BoxStatusFunding, domain.BoxStatusReady, domain.BoxStatusBreaking,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get active boxes: %w", err)
	}
	defer rows.Close()

	var boxes []*domain.Box
	for rows.Next() {
		box := &domain.Box{}
		if err := rows.Scan(boxFields(box)...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan box: %w", err)
		}
		boxes = append(boxes, box)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating boxes: %w", err)
	}

	return boxes, nil
}

func boxFields(box *domain.Box) []any {
	return []any{
		&box.ID, &box.Name, &box.Description, &box.ImageURL, &box.SetName,
		&box.TargetPrice, &box.CurrentRaised, &box.ContributorsCount, &box.Status,
		&box.ScheduledBreak, &box.StreamURL, &box.IsFeatured, &box.CreatedAt,
	}
}
