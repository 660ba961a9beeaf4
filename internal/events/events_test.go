package events

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaPublisher(t *testing.T) {
	t.Run("No brokers", func(t *testing.T) {
		_, err := NewKafkaPublisher(nil, "topic")
		assert.Error(t, err)
	})

	t.Run("Default topic", func(t *testing.T) {
		publisher, err := NewKafkaPublisher([]string{"localhost:9092"}, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultTopic, publisher.topic)

		writer, ok := publisher.writer.(*kafka.Writer)
		require.True(t, ok)
		assert.Equal(t, DefaultTopic, writer.Topic)
		assert.Equal(t, kafka.RequireAll, writer.RequiredAcks)
	})
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		writer := &recordingWriter{}
		publisher := &KafkaPublisher{writer: writer, topic: DefaultTopic}

		err := publisher.Publish(ctx, "contribution.settled", []byte(`{"credits":6}`), "box-1")
		require.NoError(t, err)

		require.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, []byte("box-1"), msg.Key)
		assert.JSONEq(t, `{"credits":6}`, string(msg.Value))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "event_type", msg.Headers[0].Key)
		assert.Equal(t, []byte("contribution.settled"), msg.Headers[0].Value)
		assert.Empty(t, msg.Topic)
	})

	t.Run("Writer error", func(t *testing.T) {
		writer := &recordingWriter{err: errors.New("leader not available")}
		publisher := &KafkaPublisher{writer: writer, topic: DefaultTopic}

		err := publisher.Publish(ctx, "contribution.settled", []byte(`{}`), "box-1")
		assert.ErrorIs(t, err, writer.err)
	})

	t.Run("Close", func(t *testing.T) {
		writer := &recordingWriter{}
		publisher := &KafkaPublisher{writer: writer, topic: DefaultTopic}

		require.NoError(t, publisher.Close())
		assert.True(t, writer.closed)
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLogPublisher(zap.New(core))

	err := publisher.Publish(context.Background(), "contribution.settled", []byte(`{"credits":6}`), "box-1")
	require.NoError(t, err)

	entries := logs.FilterMessage("Settlement event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "contribution.settled", fields["event_type"])
	assert.Equal(t, "box-1", fields["partition_key"])
	assert.NoError(t, publisher.Close())
}
