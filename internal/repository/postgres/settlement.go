package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rykoi/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// SettlementRepository реализует domain.SettlementRepository.
// Все изменения одного платежа выполняются в одной транзакции.
type SettlementRepository struct {
	db DBTX
}

// NewSettlementRepository создает новый SettlementRepository
func NewSettlementRepository(db DBTX) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// ApplySettlement проводит оплаченный платеж.
//
// Вставка взноса с ON CONFLICT по payment_reference служит шлюзом идемпотентности:
// из параллельных вызовов с одной ссылкой строку вставляет только один, остальные
// получают AlreadyProcessed с ранее начисленными покеболами. Счетчики пользователя
// и коробки увеличиваются атомарно в самом UPDATE. Ошибка записи в ленту активности
// откатывает только savepoint и не отменяет проводку.
func (r *SettlementRepository) ApplySettlement(ctx context.Context, s domain.Settlement) (*domain.SettlementResult, error) {
	intent := s.Intent

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin settlement %q: %w", s.PaymentReference, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var contributionID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO contributions
			(user_id, box_id, amount_paid, box_share, credits_granted, status, payment_reference, session_id, currency, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		 ON CONFLICT (payment_reference) DO NOTHING
		 RETURNING id`,
		intent.UserID, intent.BoxID, intent.AmountPaid, intent.BoxShare, intent.Credits,
		domain.ContributionStatusCompleted, s.PaymentReference, s.SessionID, intent.Currency,
	).Scan(&contributionID)

	if errors.Is(err, pgx.ErrNoRows) {
		// Платеж уже проведен другим вызовом
		return existingSettlement(ctx, tx, s.PaymentReference)
	}
	if err != nil {
		return nil, contributionInsertError(err, s.PaymentReference)
	}

	if intent.UserID != nil {
		if err := creditUser(ctx, tx, *intent.UserID, s.PaymentReference, intent); err != nil {
			return nil, err
		}
	}

	var boxStatus domain.BoxStatus
	if intent.BoxID != nil {
		err = tx.QueryRow(ctx,
			`UPDATE boxes
			 SET current_raised = current_raised + $1,
			     contributors_count = contributors_count + 1,
			     status = CASE WHEN status = 'FUNDING' AND current_raised + $1 >= target_price
			                   THEN 'READY'::box_status ELSE status END,
			     updated_at = NOW()
			 WHERE id = $2
			 RETURNING status`,
			intent.BoxShare, *intent.BoxID,
		).Scan(&boxStatus)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrBoxNotFound
			}
			return nil, fmt.Errorf("repository: failed to increment box %s: %w", *intent.BoxID, err)
		}
	}

	if err := enqueueSettledEvent(ctx, tx, contributionID, s, boxStatus); err != nil {
		return nil, err
	}

	result := &domain.SettlementResult{
		ContributionID: contributionID,
		CreditsGranted: intent.Credits,
	}
	result.ActivityError = appendContributionActivity(ctx, tx, contributionID, intent)
	result.ActivityRecorded = result.ActivityError == nil

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit settlement %q: %w", s.PaymentReference, err)
	}

	return result, nil
}

func existingSettlement(ctx context.Context, tx pgx.Tx, paymentReference string) (*domain.SettlementResult, error) {
	result := &domain.SettlementResult{AlreadyProcessed: true}

	err := tx.QueryRow(ctx,
		`SELECT id, credits_granted
		 FROM contributions
		 WHERE payment_reference = $1`,
		paymentReference,
	).Scan(&result.ContributionID, &result.CreditsGranted)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to load settled contribution %q: %w", paymentReference, err)
	}

	return result, nil
}

func contributionInsertError(err error, paymentReference string) error {
	code, constraint := pgErrorCode(err)
	if code == pgForeignKeyViolation {
		switch constraint {
		case constraintContributionUser:
			return domain.ErrUserNotFound
		case constraintContributionBox:
			return domain.ErrBoxNotFound
		}
	}
	return fmt.Errorf("repository: failed to insert contribution %q: %w", paymentReference, err)
}

func creditUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID, paymentReference string, intent domain.SettlementIntent) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users
		 SET pokeballs = pokeballs + $1,
		     total_contributed = total_contributed + $2,
		     updated_at = NOW()
		 WHERE id = $3`,
		intent.Credits, intent.AmountPaid, userID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to credit user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO credit_transactions (user_id, type, credits, amount, reference_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, domain.CreditTransactionContribution, intent.Credits, intent.AmountPaid, paymentReference,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record credit transaction for user %s: %w", userID, err)
	}

	return nil
}

func enqueueSettledEvent(ctx context.Context, tx pgx.Tx, contributionID uuid.UUID, s domain.Settlement, boxStatus domain.BoxStatus) error {
	intent := s.Intent
	payload, err := json.Marshal(domain.ContributionSettledEvent{
		ContributionID:   contributionID,
		PaymentReference: s.PaymentReference,
		SessionID:        s.SessionID,
		UserID:           intent.UserID,
		BoxID:            intent.BoxID,
		AmountPaid:       intent.AmountPaid,
		Credits:          intent.Credits,
		BoxShare:         intent.BoxShare,
		Currency:         intent.Currency,
		BoxStatus:        boxStatus,
		SettledAt:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("repository: failed to encode settlement event: %w", err)
	}

	partitionKey := contributionID.String()
	if intent.BoxID != nil {
		partitionKey = intent.BoxID.String()
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO settlement_events (event_type, partition_key, payload)
		 VALUES ($1, $2, $3)`,
		domain.EventContributionSettled, partitionKey, payload,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to enqueue settlement event: %w", err)
	}

	return nil
}

// appendContributionActivity пишет запись в ленту внутри savepoint.
// Возвращает причину, если запись не удалась; основная транзакция при этом жива.
func appendContributionActivity(ctx context.Context, tx pgx.Tx, contributionID uuid.UUID, intent domain.SettlementIntent) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to open activity savepoint: %w", err)
	}

	metadata := map[string]any{
		"contributionId": contributionID.String(),
		"amount":         intent.AmountPaid.String(),
		"pokeballs":      intent.Credits,
	}
	if intent.BoxID != nil {
		metadata["boxId"] = intent.BoxID.String()
	}

	message := fmt.Sprintf("aportó %s y recibió %d Pokeballs", formatAmount(intent.AmountPaid, intent.Currency), intent.Credits)

	_, err = sp.Exec(ctx,
		`INSERT INTO activity_feed (user_id, username, event_type, message, metadata)
		 VALUES ($1, COALESCE((SELECT username FROM users WHERE id = $1), $2), $3, $4, $5)`,
		intent.UserID, domain.AnonymousUsername, domain.ActivityContribution, message, metadata,
	)
	if err != nil {
		_ = sp.Rollback(ctx)
		return fmt.Errorf("repository: failed to append activity: %w", err)
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to release activity savepoint: %w", err)
	}

	return nil
}

// formatAmount форматирует сумму для ленты активности в валюте платежа
func formatAmount(amount decimal.Decimal, currency string) string {
	switch strings.ToLower(currency) {
	case "", "eur":
		return amount.String() + "€"
	case "usd":
		return "$" + amount.String()
	case "gbp":
		return "£" + amount.String()
	default:
		return amount.String() + " " + strings.ToUpper(currency)
	}
}
