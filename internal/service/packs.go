package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// Паки открываются на стриме по пятницам в 20:00
const (
	streamWeekday = time.Friday
	streamHour    = 20
)

// PackService реализует domain.PackService
type PackService struct {
	packRepo domain.PackRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewPackService создает новый PackService
func NewPackService(packRepo domain.PackRepository, logger *zap.Logger) *PackService {
	return &PackService{
		packRepo: packRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// ListPacks возвращает доступные паки
func (s *PackService) ListPacks(ctx context.Context) ([]*domain.Pack, error) {
	packs, err := s.packRepo.GetAvailablePacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("pack service: failed to list packs: %w", err)
	}

	return packs, nil
}

// Purchase списывает покеболы и записывает пак на ближайший стрим
func (s *PackService) Purchase(ctx context.Context, userID, packID uuid.UUID) (*domain.PackPurchase, error) {
	stream := NextStream(s.now())

	purchase, err := s.packRepo.PurchasePack(ctx, userID, packID, stream)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientCredits) ||
			errors.Is(err, domain.ErrPackNotFound) ||
			errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pack service: failed to purchase pack %s for user %s: %w", packID, userID, err)
	}

	s.logger.Info("Pack purchased",
		zap.String("user_id", userID.String()),
		zap.String("pack_id", packID.String()),
		zap.Int64("pokeballs_spent", purchase.PokeballsSpent),
		zap.Time("scheduled_stream", purchase.ScheduledStream),
	)

	return purchase, nil
}

// NextStream возвращает время ближайшего стрима строго после now.
// В пятницу покупка попадает на стрим следующей недели.
func NextStream(now time.Time) time.Time {
	now = now.UTC()

	days := (int(streamWeekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), streamHour, 0, 0, 0, time.UTC)
}
