package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher пишет события в лог, используется без Kafka
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher создает новый LogPublisher
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish логирует событие
func (p *LogPublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.Info("Settlement event",
		zap.String("event_type", eventType),
		zap.String("partition_key", partitionKey),
		zap.ByteString("payload", payload),
	)
	return nil
}

// Close ничего не делает
func (p *LogPublisher) Close() error {
	return nil
}
