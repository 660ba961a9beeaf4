package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	domainmocks "github.com/rykoi/storefront/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNextStream(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Monday",
			now:  time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC),
			want: time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Thursday night",
			now:  time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Friday goes to next week",
			now:  time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 23, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Saturday",
			now:  time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 23, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Crosses month boundary",
			now:  time.Date(2026, 10, 28, 8, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 30, 20, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStream(tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.Friday, got.Weekday())
		})
	}
}

func TestPackService_ListPacks(t *testing.T) {
	mockPackRepo := domainmocks.NewPackRepositoryMock(t)
	svc := NewPackService(mockPackRepo, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		packs := []*domain.Pack{{ID: uuid.New(), Name: "Surging Sparks", PricePokeballs: 12}}

		mockPackRepo.EXPECT().GetAvailablePacks(mock.Anything).Return(packs, nil).Once()

		result, err := svc.ListPacks(ctx)
		require.NoError(t, err)
		assert.Equal(t, packs, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mockPackRepo.EXPECT().GetAvailablePacks(mock.Anything).Return(nil, errors.New("db error")).Once()

		result, err := svc.ListPacks(ctx)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestPackService_Purchase(t *testing.T) {
	mockPackRepo := domainmocks.NewPackRepositoryMock(t)
	svc := NewPackService(mockPackRepo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	userID := uuid.New()
	packID := uuid.New()
	stream := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		purchase := &domain.PackPurchase{
			ID:              uuid.New(),
			UserID:          userID,
			PackID:          packID,
			PokeballsSpent:  12,
			Status:          domain.PurchaseStatusPending,
			ScheduledStream: stream,
		}

		mockPackRepo.EXPECT().PurchasePack(mock.Anything, userID, packID, stream).Return(purchase, nil).Once()

		result, err := svc.Purchase(ctx, userID, packID)
		require.NoError(t, err)
		assert.Equal(t, purchase, result)
	})

	sentinels := []error{domain.ErrInsufficientCredits, domain.ErrPackNotFound, domain.ErrUserNotFound}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			mockPackRepo.EXPECT().PurchasePack(mock.Anything, userID, packID, stream).Return(nil, sentinel).Once()

			result, err := svc.Purchase(ctx, userID, packID)
			assert.Equal(t, sentinel, err)
			assert.Nil(t, result)
		})
	}

	t.Run("Database error", func(t *testing.T) {
		mockPackRepo.EXPECT().PurchasePack(mock.Anything, userID, packID, stream).Return(nil, errors.New("db error")).Once()

		result, err := svc.Purchase(ctx, userID, packID)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
