package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDedupTTL время жизни отметки о полученном событии
const DefaultDedupTTL = 72 * time.Hour

const webhookEventKeyPrefix = "webhook:event:"

// Connect создает клиента Redis по URL или адресу host:port и проверяет соединение
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("cache: failed to parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisDeduplicator реализует domain.EventDeduplicator через SET NX
type RedisDeduplicator struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisDeduplicator создает новый RedisDeduplicator
func NewRedisDeduplicator(client redis.Cmdable, ttl time.Duration) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &RedisDeduplicator{client: client, ttl: ttl}
}

// MarkSeen отмечает событие как полученное.
// Возвращает false, если событие с таким ID уже отмечено.
func (d *RedisDeduplicator) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	fresh, err := d.client.SetNX(ctx, webhookEventKeyPrefix+eventID, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: failed to mark event %q: %w", eventID, err)
	}
	return fresh, nil
}

// Forget снимает отметку, чтобы повторная доставка обработалась заново
func (d *RedisDeduplicator) Forget(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, webhookEventKeyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("cache: failed to forget event %q: %w", eventID, err)
	}
	return nil
}

// NopDeduplicator пропускает все события, используется без Redis
type NopDeduplicator struct{}

// MarkSeen всегда считает событие новым
func (NopDeduplicator) MarkSeen(context.Context, string) (bool, error) {
	return true, nil
}

// Forget ничего не делает
func (NopDeduplicator) Forget(context.Context, string) error {
	return nil
}
