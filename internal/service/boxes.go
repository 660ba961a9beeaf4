package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
)

// Ограничения размера публичных списков
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// BoxService реализует domain.BoxService
type BoxService struct {
	boxRepo          domain.BoxRepository
	contributionRepo domain.ContributionRepository
	activityRepo     domain.ActivityRepository
	userRepo         domain.UserRepository
}

// NewBoxService создает новый BoxService
func NewBoxService(
	boxRepo domain.BoxRepository,
	contributionRepo domain.ContributionRepository,
	activityRepo domain.ActivityRepository,
	userRepo domain.UserRepository,
) *BoxService {
	return &BoxService{
		boxRepo:          boxRepo,
		contributionRepo: contributionRepo,
		activityRepo:     activityRepo,
		userRepo:         userRepo,
	}
}

// GetActiveBoxes возвращает коробки, которые видны на витрине
func (s *BoxService) GetActiveBoxes(ctx context.Context) ([]*domain.Box, error) {
	boxes, err := s.boxRepo.GetActiveBoxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("box service: failed to get active boxes: %w", err)
	}

	return boxes, nil
}

// GetBox возвращает коробку по ID
func (s *BoxService) GetBox(ctx context.Context, id uuid.UUID) (*domain.Box, error) {
	box, err := s.boxRepo.GetBoxByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBoxNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("box service: failed to get box %s: %w", id, err)
	}

	return box, nil
}

// GetBoxContributions возвращает последние взносы в коробку
func (s *BoxService) GetBoxContributions(ctx context.Context, id uuid.UUID, limit int) ([]*domain.Contribution, error) {
	if _, err := s.GetBox(ctx, id); err != nil {
		return nil, err
	}

	contributions, err := s.contributionRepo.GetBoxContributions(ctx, id, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("box service: failed to get contributions for box %s: %w", id, err)
	}

	return contributions, nil
}

// GetActivityFeed возвращает последние записи ленты
func (s *BoxService) GetActivityFeed(ctx context.Context, limit int) ([]*domain.ActivityEntry, error) {
	entries, err := s.activityRepo.GetActivityFeed(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("box service: failed to get activity feed: %w", err)
	}

	return entries, nil
}

// GetLeaderboard возвращает участников с наибольшей суммой взносов
func (s *BoxService) GetLeaderboard(ctx context.Context, limit int) ([]*domain.Contributor, error) {
	contributors, err := s.userRepo.GetTopContributors(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("box service: failed to get leaderboard: %w", err)
	}

	return contributors, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
