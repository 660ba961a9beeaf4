package worker

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
	"go.uber.org/zap"
)

func newEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:           uuid.New(),
		EventType:    domain.EventContributionSettled,
		PartitionKey: uuid.NewString(),
		Payload:      []byte(`{"credits":6}`),
		CreatedAt:    time.Now(),
	}
}

func TestPool_ProcessEvent(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockOutbox, mockPublisher, logger)

	ctx := context.Background()
	event := newEvent()

	mockPublisher.EXPECT().Publish(mock.Anything, event.EventType, event.Payload, event.PartitionKey).Return(nil).Once()
	mockOutbox.EXPECT().MarkPublished(mock.Anything, event.ID).Return(nil).Once()

	pool.processEvent(ctx, event)
}

func TestPool_ProcessEvent_PublishFailure(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockOutbox, mockPublisher, logger)

	ctx := context.Background()
	event := newEvent()

	mockPublisher.EXPECT().Publish(mock.Anything, event.EventType, event.Payload, event.PartitionKey).
		Return(errors.New("broker unavailable")).Once()
	mockOutbox.EXPECT().MarkFailed(mock.Anything, event.ID, "broker unavailable").Return(false, nil).Once()

	pool.processEvent(ctx, event)
}

func TestPool_ProcessEvent_AttemptsExhausted(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockOutbox, mockPublisher, logger)

	ctx := context.Background()
	event := newEvent()
	event.Attempts = 9

	mockPublisher.EXPECT().Publish(mock.Anything, event.EventType, event.Payload, event.PartitionKey).
		Return(errors.New("message too large")).Once()
	mockOutbox.EXPECT().MarkFailed(mock.Anything, event.ID, "message too large").Return(true, nil).Once()

	// Событие в DEAD больше не публикуется и не помечается опубликованным
	pool.processEvent(ctx, event)
}

func TestPool_ProcessEvent_MarkPublishedFailure(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockOutbox, mockPublisher, logger)

	ctx := context.Background()
	event := newEvent()

	mockPublisher.EXPECT().Publish(mock.Anything, event.EventType, event.Payload, event.PartitionKey).Return(nil).Once()
	mockOutbox.EXPECT().MarkPublished(mock.Anything, event.ID).Return(errors.New("db error")).Once()

	// Ошибка только логируется, MarkFailed не вызывается
	pool.processEvent(ctx, event)
}

func TestPool_ScanOutbox(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 1, mockOutbox, mockPublisher, logger)
	pool.SetBatchSize(5)

	ctx := context.Background()
	first, second := newEvent(), newEvent()

	mockOutbox.EXPECT().ClaimPendingEvents(mock.Anything, 5).Return([]*domain.OutboxEvent{first, second}, nil).Once()

	pool.scanOutbox(ctx)

	// Очередь на одно событие, второе пропущено
	assert.Len(t, pool.queue, 1)
	assert.Equal(t, first, <-pool.queue)
}

func TestPool_ScanOutbox_ClaimError(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, mockOutbox, mockPublisher, logger)

	mockOutbox.EXPECT().ClaimPendingEvents(mock.Anything, DefaultBatchSize).Return(nil, errors.New("db error")).Once()

	pool.scanOutbox(context.Background())
	assert.Empty(t, pool.queue)
}

func TestPool_StartStop(t *testing.T) {
	mockOutbox := domainmocks.NewOutboxRepositoryMock(t)
	mockPublisher := domainmocks.NewEventPublisherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(2, 10, mockOutbox, mockPublisher, logger)
	pool.SetScanInterval(time.Hour)

	event := newEvent()
	published := make(chan struct{})

	mockOutbox.EXPECT().ClaimPendingEvents(mock.Anything, DefaultBatchSize).Return([]*domain.OutboxEvent{event}, nil).Once()
	mockPublisher.EXPECT().Publish(mock.Anything, event.EventType, event.Payload, event.PartitionKey).Return(nil).Once()
	mockOutbox.EXPECT().MarkPublished(mock.Anything, event.ID).
		Run(func(ctx context.Context, id uuid.UUID) { close(published) }).
		Return(nil).Once()

	pool.Start(context.Background())

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}

	pool.Stop()
}
