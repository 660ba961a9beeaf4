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

// Статусы строк outbox
const (
	outboxStatusPending    = "PENDING"
	outboxStatusProcessing = "PROCESSING"
	outboxStatusPublished  = "PUBLISHED"
	outboxStatusDead       = "DEAD"
)

const (
	// DefaultClaimTimeout время, после которого захваченное, но не опубликованное событие снова доступно
	DefaultClaimTimeout = 5 * time.Minute

	// DefaultMaxAttempts число неудачных публикаций, после которого событие переводится в DEAD
	DefaultMaxAttempts = 10
)

// OutboxRepository реализует domain.OutboxRepository поверх таблицы settlement_events
type OutboxRepository struct {
	db           DBTX
	claimTimeout time.Duration
	maxAttempts  int
}

// NewOutboxRepository создает новый OutboxRepository.
// Неположительные значения заменяются значениями по умолчанию.
func NewOutboxRepository(db DBTX, claimTimeout time.Duration, maxAttempts int) *OutboxRepository {
	if claimTimeout <= 0 {
		claimTimeout = DefaultClaimTimeout
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &OutboxRepository{db: db, claimTimeout: claimTimeout, maxAttempts: maxAttempts}
}

// ClaimPendingEvents захватывает пачку неопубликованных событий.
// FOR UPDATE SKIP LOCKED позволяет нескольким экземплярам разбирать outbox без дублей,
// а зависшие в PROCESSING дольше claimTimeout строки захватываются повторно.
func (r *OutboxRepository) ClaimPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	rows, err := r.db.Query(ctx,
		`UPDATE settlement_events 
		 SET status = $1, claimed_at = NOW() 
		 WHERE id IN (
			SELECT id FROM settlement_events 
			WHERE status = $2 OR (status = $1 AND claimed_at < NOW() - make_interval(secs => $3)) 
			ORDER BY created_at 
			LIMIT $4 
			FOR UPDATE SKIP LOCKED
		 ) 
		 RETURNING id, event_type, partition_key, payload, attempts, created_at`,
		outboxStatusProcessing, outboxStatusPending, r.claimTimeout.Seconds(), limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to claim outbox events: %w", err)
	}
	defer rows.Close()

	var events []*domain.OutboxEvent
	for rows.Next() {
		e := &domain.OutboxEvent{}
		if err := rows.Scan(&e.ID, &e.EventType, &e.PartitionKey, &e.Payload, &e.Attempts, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan outbox event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating outbox events: %w", err)
	}

	return events, nil
}

// MarkPublished отмечает событие как опубликованное
func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE settlement_events 
		 SET status = $1, published_at = NOW(), last_error = NULL 
		 WHERE id = $2`,
		outboxStatusPublished, id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark outbox event %s published: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: outbox event %s not found", id)
	}

	return nil
}

// MarkFailed возвращает событие в очередь и увеличивает счетчик попыток.
// Событие, исчерпавшее maxAttempts, переводится в DEAD и больше не захватывается.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	var status string
	err := r.db.QueryRow(ctx,
		`UPDATE settlement_events 
		 SET status = CASE WHEN attempts + 1 >= $1 THEN $2 ELSE $3 END, 
		     attempts = attempts + 1, last_error = $4, claimed_at = NULL 
		 WHERE id = $5 
		 RETURNING status`,
		r.maxAttempts, outboxStatusDead, outboxStatusPending, reason, id,
	).Scan(&status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("repository: outbox event %s not found", id)
		}
		return false, fmt.Errorf("repository: failed to mark outbox event %s failed: %w", id, err)
	}

	return status == outboxStatusDead, nil
}
