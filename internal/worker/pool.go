package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// Значения по умолчанию для relay outbox
const (
	DefaultScanInterval = 10 * time.Second
	DefaultBatchSize    = 50
)

// Pool переносит события о проведенных платежах из outbox во внешнюю шину.
// Сканер забирает пачку PENDING событий, воркеры публикуют их по одному.
type Pool struct {
	workers      int
	queue        chan *domain.OutboxEvent
	outboxRepo   domain.OutboxRepository
	publisher    domain.EventPublisher
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	batchSize    int
	cancel       context.CancelFunc
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	outboxRepo domain.OutboxRepository,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:      workers,
		queue:        make(chan *domain.OutboxEvent, queueSize),
		outboxRepo:   outboxRepo,
		publisher:    publisher,
		logger:       logger,
		scanInterval: DefaultScanInterval,
		batchSize:    DefaultBatchSize,
	}
}

// SetScanInterval задает период сканирования outbox
func (p *Pool) SetScanInterval(interval time.Duration) {
	if interval > 0 {
		p.scanInterval = interval
	}
}

// SetBatchSize задает количество событий, забираемых за один проход
func (p *Pool) SetBatchSize(size int) {
	if size > 0 {
		p.batchSize = size
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер outbox
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool и ждет завершения воркеров.
// События, оставшиеся в очереди, будут забраны повторно после таймаута захвата.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// worker публикует события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case event := <-p.queue:
			p.processEvent(ctx, event)
		}
	}
}

// scanner периодически забирает неопубликованные события
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	p.scanOutbox(ctx)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanOutbox(ctx)
		}
	}
}

// scanOutbox забирает пачку событий и отправляет их в очередь
func (p *Pool) scanOutbox(ctx context.Context) {
	events, err := p.outboxRepo.ClaimPendingEvents(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("failed to claim outbox events", zap.Error(err))
		return
	}

	for _, event := range events {
		select {
		case p.queue <- event:
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, событие вернется в работу после таймаута захвата
			p.logger.Warn("queue is full, skipping event", zap.String("event_id", event.ID.String()))
		}
	}
}

// processEvent публикует одно событие и фиксирует результат
func (p *Pool) processEvent(ctx context.Context, event *domain.OutboxEvent) {
	logger := p.logger.With(
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", event.EventType),
	)
	logger.Debug("publishing event", zap.Int("attempts", event.Attempts))

	if err := p.publisher.Publish(ctx, event.EventType, event.Payload, event.PartitionKey); err != nil {
		logger.Error("failed to publish event", zap.Int("attempts", event.Attempts+1), zap.Error(err))

		dead, markErr := p.outboxRepo.MarkFailed(ctx, event.ID, err.Error())
		if markErr != nil {
			logger.Error("failed to record publish failure", zap.Error(markErr))
			return
		}
		if dead {
			logger.Error("giving up on event, publish attempts exhausted", zap.Int("attempts", event.Attempts+1))
		}
		return
	}

	if err := p.outboxRepo.MarkPublished(ctx, event.ID); err != nil {
		// Событие будет опубликовано повторно, потребители дедуплицируют по contribution_id
		logger.Error("failed to mark event published", zap.Error(err))
		return
	}

	logger.Debug("event published")
}
