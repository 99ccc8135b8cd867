package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/models"
)

// NotificationRelay fans toasts out to other instances over Redis pub/sub.
type NotificationRelay struct {
	client   *redis.Client
	channel  string
	instance string
	logger   *zap.Logger
}

// NewNotificationRelay constructs a relay. instance tags outgoing messages so
// an instance ignores its own echoes.
func NewNotificationRelay(client *redis.Client, channel, instance string, logger *zap.Logger) *NotificationRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationRelay{client: client, channel: channel, instance: instance, logger: logger}
}

// Publish sends the notification to every subscribed instance.
func (r *NotificationRelay) Publish(ctx context.Context, n models.Notification) error {
	n.Origin = r.instance
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}
	return nil
}

// Listen delivers notifications published by other instances until ctx ends.
func (r *NotificationRelay) Listen(ctx context.Context, deliver func(models.Notification)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close() //nolint:errcheck

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var n models.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				r.logger.Warn("drop malformed relayed notification", zap.Error(err))
				continue
			}
			if n.Origin == r.instance {
				continue
			}
			deliver(n)
		}
	}
}
