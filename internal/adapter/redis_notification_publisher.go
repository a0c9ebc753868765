package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"pylearn/internal/cache"
	"pylearn/internal/domain"
	"pylearn/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisNotificationPublisher fans notification inserts out over Redis pub/sub,
// one channel per user.
type RedisNotificationPublisher struct {
	client redis.UniversalClient
}

func NewRedisNotificationPublisher(client redis.UniversalClient) domain.NotificationPublisher {
	return &RedisNotificationPublisher{client: client}
}

func (p *RedisNotificationPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := p.client.Publish(ctx, cache.NotificationChannel(n.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe returns a channel that is closed once ctx is done.
func (p *RedisNotificationPublisher) Subscribe(ctx context.Context, userID string) (<-chan *domain.Notification, error) {
	ps := p.client.Subscribe(ctx, cache.NotificationChannel(userID))
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("failed to subscribe to notifications: %w", err)
	}

	out := make(chan *domain.Notification)
	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var n domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
					logger.Get().Warn("dropping malformed notification", zap.String("user_id", userID), zap.Error(err))
					continue
				}
				select {
				case out <- &n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
