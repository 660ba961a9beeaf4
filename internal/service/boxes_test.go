package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	domainmocks "github.com/rykoi/storefront/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBoxService(t *testing.T) (
	*BoxService,
	*domainmocks.BoxRepositoryMock,
	*domainmocks.ContributionRepositoryMock,
	*domainmocks.ActivityRepositoryMock,
	*domainmocks.UserRepositoryMock,
) {
	boxes := domainmocks.NewBoxRepositoryMock(t)
	contributions := domainmocks.NewContributionRepositoryMock(t)
	activity := domainmocks.NewActivityRepositoryMock(t)
	users := domainmocks.NewUserRepositoryMock(t)
	return NewBoxService(boxes, contributions, activity, users), boxes, contributions, activity, users
}

func TestBoxService_GetBox(t *testing.T) {
	ctx := context.Background()
	boxID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)
		box := &domain.Box{ID: boxID, Name: "Prismatic Evolutions ETB", Status: domain.BoxStatusFunding}

		boxes.EXPECT().GetBoxByID(mock.Anything, boxID).Return(box, nil).Once()

		result, err := svc.GetBox(ctx, boxID)
		require.NoError(t, err)
		assert.Equal(t, box, result)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)

		boxes.EXPECT().GetBoxByID(mock.Anything, boxID).Return(nil, domain.ErrBoxNotFound).Once()

		_, err := svc.GetBox(ctx, boxID)
		assert.Equal(t, domain.ErrBoxNotFound, err)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)

		boxes.EXPECT().GetBoxByID(mock.Anything, boxID).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetBox(ctx, boxID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrBoxNotFound)
	})
}

func TestBoxService_GetActiveBoxes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)
		list := []*domain.Box{{ID: uuid.New()}, {ID: uuid.New()}}

		boxes.EXPECT().GetActiveBoxes(mock.Anything).Return(list, nil).Once()

		result, err := svc.GetActiveBoxes(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)

		boxes.EXPECT().GetActiveBoxes(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetActiveBoxes(ctx)
		assert.Error(t, err)
	})
}

func TestBoxService_GetBoxContributions(t *testing.T) {
	ctx := context.Background()
	boxID := uuid.New()

	t.Run("Limit is clamped", func(t *testing.T) {
		svc, boxes, contributions, _, _ := newTestBoxService(t)

		boxes.EXPECT().GetBoxByID(mock.Anything, boxID).Return(&domain.Box{ID: boxID}, nil).Once()
		contributions.EXPECT().GetBoxContributions(mock.Anything, boxID, MaxListLimit).
			Return([]*domain.Contribution{}, nil).Once()

		_, err := svc.GetBoxContributions(ctx, boxID, 1000)
		require.NoError(t, err)
	})

	t.Run("Unknown box", func(t *testing.T) {
		svc, boxes, _, _, _ := newTestBoxService(t)

		boxes.EXPECT().GetBoxByID(mock.Anything, boxID).Return(nil, domain.ErrBoxNotFound).Once()

		_, err := svc.GetBoxContributions(ctx, boxID, 10)
		assert.ErrorIs(t, err, domain.ErrBoxNotFound)
	})
}

func TestBoxService_GetActivityFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Default limit", func(t *testing.T) {
		svc, _, _, activity, _ := newTestBoxService(t)
		entries := []*domain.ActivityEntry{{ID: uuid.New(), Username: domain.AnonymousUsername}}

		activity.EXPECT().GetActivityFeed(mock.Anything, DefaultListLimit).Return(entries, nil).Once()

		result, err := svc.GetActivityFeed(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, _, _, activity, _ := newTestBoxService(t)

		activity.EXPECT().GetActivityFeed(mock.Anything, 5).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetActivityFeed(ctx, 5)
		assert.Error(t, err)
	})
}

func TestBoxService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, _, _, users := newTestBoxService(t)
		top := []*domain.Contributor{{UserID: uuid.New(), Username: "ash"}}

		users.EXPECT().GetTopContributors(mock.Anything, 10).Return(top, nil).Once()

		result, err := svc.GetLeaderboard(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, top, result)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, _, _, _, users := newTestBoxService(t)

		users.EXPECT().GetTopContributors(mock.Anything, DefaultListLimit).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetLeaderboard(ctx, -1)
		assert.Error(t, err)
	})
}
