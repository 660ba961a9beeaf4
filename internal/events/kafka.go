package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic топик для событий о проведенных платежах
const DefaultTopic = "pokeball.settlements"

// eventTypeHeader заголовок сообщения с типом события
const eventTypeHeader = "event_type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher реализует domain.EventPublisher поверх kafka-go
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher создает издателя для указанных брокеров
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("events: kafka publisher requires at least one broker")
	}
	if topic == "" {
		topic = DefaultTopic
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
		topic: topic,
	}, nil
}

// Publish отправляет событие, ключ партиции сохраняет порядок событий одной коробки
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(partitionKey),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("events: failed to publish %s to %s: %w", eventType, p.topic, err)
	}
	return nil
}

// Close закрывает writer и дожидается отправки буфера
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
