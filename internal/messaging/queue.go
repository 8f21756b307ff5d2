package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const notificationQueueKey = "sms_notifications"

// Kind tags why a notification was queued.
type Kind string

const (
	KindRangerAssignment Kind = "ranger_assignment"
	KindRangerReleased   Kind = "ranger_released"
	KindUrgentHelp       Kind = "urgent_help"
)

// Notification is a queued SMS for asynchronous delivery.
type Notification struct {
	Kind       Kind       `json:"kind"`
	Phone      string     `json:"phone"`
	Text       string     `json:"text"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	QueuedAt   time.Time  `json:"queued_at"`
}

// Notifier queues notifications for the worker.
type Notifier interface {
	Enqueue(ctx context.Context, n Notification) error
}

// RedisNotifier pushes notifications onto a Redis list.
type RedisNotifier struct {
	redisClient *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{
		redisClient: client,
	}
}

// Enqueue pushes to the left of the list; the worker pops from the right.
func (p *RedisNotifier) Enqueue(ctx context.Context, n Notification) error {
	if n.QueuedAt.IsZero() {
		n.QueuedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification to Redis: %w", err)
	}
	return nil
}
