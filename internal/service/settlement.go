package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// SettlementService реализует domain.SettlementService.
// И webhook, и ручная проверка сессии сходятся в Settle.
type SettlementService struct {
	gateway       domain.PaymentGateway
	settlements   domain.SettlementRepository
	contributions domain.ContributionRepository
	logger        *zap.Logger
}

// NewSettlementService создает новый SettlementService
func NewSettlementService(
	gateway domain.PaymentGateway,
	settlements domain.SettlementRepository,
	contributions domain.ContributionRepository,
	logger *zap.Logger,
) *SettlementService {
	return &SettlementService{
		gateway:       gateway,
		settlements:   settlements,
		contributions: contributions,
		logger:        logger,
	}
}

// Settle проводит оплаченную сессию.
// Повторный вызов для той же ссылки на платеж возвращает AlreadyProcessed и ничего не меняет.
func (s *SettlementService) Settle(ctx context.Context, snapshot *domain.SessionSnapshot) (*domain.SettlementResult, error) {
	if snapshot == nil || snapshot.SessionID == "" {
		return nil, domain.ErrSessionNotFound
	}

	reference := snapshot.PaymentReference
	if reference == "" {
		reference = snapshot.SessionID
	}

	// Быстрый путь для повторных доставок, окончательное решение за ограничением уникальности
	existing, err := s.contributions.GetContributionByReference(ctx, reference)
	switch {
	case err == nil:
		s.logger.Info("Payment already settled",
			zap.String("payment_reference", reference),
			zap.String("session_id", snapshot.SessionID),
			zap.String("contribution_id", existing.ID.String()),
		)
		return &domain.SettlementResult{
			ContributionID:   existing.ID,
			CreditsGranted:   existing.CreditsGranted,
			AlreadyProcessed: true,
		}, nil
	case !errors.Is(err, domain.ErrContributionNotFound):
		return nil, fmt.Errorf("settlement service: failed to look up payment %q: %w", reference, err)
	}

	if !snapshot.Paid {
		return nil, domain.ErrPaymentNotCompleted
	}

	intent, err := DecodeIntent(snapshot.Metadata)
	if err != nil {
		s.logger.Error("Paid session carries unusable metadata",
			zap.String("payment_reference", reference),
			zap.String("session_id", snapshot.SessionID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := s.settlements.ApplySettlement(ctx, domain.Settlement{
		PaymentReference: reference,
		SessionID:        snapshot.SessionID,
		Intent:           intent,
	})
	if err != nil {
		s.logger.Error("Failed to settle paid session",
			zap.String("payment_reference", reference),
			zap.String("session_id", snapshot.SessionID),
			zap.Error(err),
		)
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrBoxNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("settlement service: failed to settle payment %q: %w", reference, err)
	}

	if result.AlreadyProcessed {
		s.logger.Info("Payment settled concurrently",
			zap.String("payment_reference", reference),
			zap.String("contribution_id", result.ContributionID.String()),
		)
		return result, nil
	}

	if result.ActivityError != nil {
		s.logger.Warn("Activity feed entry skipped",
			zap.String("payment_reference", reference),
			zap.Error(result.ActivityError),
		)
	}

	s.logger.Info("Payment settled",
		zap.String("payment_reference", reference),
		zap.String("session_id", snapshot.SessionID),
		zap.String("contribution_id", result.ContributionID.String()),
		zap.Stringp("user_id", idString(intent.UserID)),
		zap.Stringp("box_id", idString(intent.BoxID)),
		zap.Int64("credits", result.CreditsGranted),
		zap.String("box_share", intent.BoxShare.String()),
	)

	return result, nil
}

// VerifySession запрашивает сессию у шлюза и проводит ее
func (s *SettlementService) VerifySession(ctx context.Context, sessionID string) (*domain.SettlementResult, error) {
	snapshot, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("settlement service: failed to retrieve session %q: %w", sessionID, err)
	}

	return s.Settle(ctx, snapshot)
}

// HandleEvent обрабатывает проверенное событие шлюза.
// Неизвестные типы событий принимаются и игнорируются.
func (s *SettlementService) HandleEvent(ctx context.Context, event *domain.WebhookEvent) error {
	logger := s.logger.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	switch event.Type {
	case domain.EventCheckoutCompleted, domain.EventCheckoutAsyncSucceeded:
		if event.Session == nil {
			return fmt.Errorf("settlement service: event %s has no checkout session: %w", event.ID, domain.ErrSessionNotFound)
		}
		if !event.Session.Paid {
			// Отложенные способы оплаты придут отдельным async_payment_succeeded
			logger.Info("Checkout completed without payment yet", zap.String("session_id", event.Session.SessionID))
			return nil
		}

		result, err := s.Settle(ctx, event.Session)
		if err != nil {
			return err
		}
		logger.Debug("Webhook settled",
			zap.String("contribution_id", result.ContributionID.String()),
			zap.Bool("already_processed", result.AlreadyProcessed),
		)

	case domain.EventCheckoutAsyncFailed:
		logger.Warn("Asynchronous payment failed", zap.String("session_id", event.ObjectID))

	case domain.EventPaymentIntentSucceeded:
		logger.Info("Payment intent succeeded", zap.String("payment_intent", event.ObjectID))

	case domain.EventPaymentIntentPaymentFailed:
		logger.Info("Payment intent failed", zap.String("payment_intent", event.ObjectID))

	default:
		logger.Debug("Unhandled event type")
	}

	return nil
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}
