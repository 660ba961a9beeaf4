package postgres

import (
	"context"
	"fmt"

	"github.com/rykoi/storefront/internal/domain"
)

// ActivityRepository реализует domain.ActivityRepository
type ActivityRepository struct {
	db DBTX
}

// NewActivityRepository создает новый ActivityRepository
func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetActivityFeed получает последние записи ленты
func (r *ActivityRepository) GetActivityFeed(ctx context.Context, limit int) ([]*domain.ActivityEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, username, event_type, message, metadata, created_at 
		 FROM activity_feed 
		 ORDER BY created_at DESC 
		 LIMIT $1`,
		limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get activity feed: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ActivityEntry
	for rows.Next() {
		e := &domain.ActivityEntry{}
		err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.EventType, &e.Message, &e.Metadata, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating activity feed: %w", err)
	}

	return entries, nil
}
