package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// Worker drains the notification queue and delivers each entry through a Sender.
type Worker struct {
	redisClient *redis.Client
	sender      Sender
	logger      *logrus.Logger
	maxRetries  int
	baseDelay   time.Duration
}

func NewWorker(redisClient *redis.Client, sender Sender, logger *logrus.Logger, maxRetries int, baseDelay time.Duration) *Worker {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &Worker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
		maxRetries:  maxRetries,
		baseDelay:   baseDelay,
	}
}

// Start runs the pop loop in a goroutine until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, notificationQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop notification from Redis")
				w.sleep(ctx, w.baseDelay)
				continue
			}

			// result[0] is the key, result[1] the payload
			var n Notification
			if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal notification from Redis")
				continue
			}

			_ = w.deliver(ctx, n)
		}
	}()
}

// deliver sends with exponential backoff between attempts.
func (w *Worker) deliver(ctx context.Context, n Notification) error {
	log := w.logger.WithFields(logrus.Fields{
		"kind": n.Kind,
		"to":   n.Phone,
	})
	if n.IncidentID != nil {
		log = log.WithField("incident_id", n.IncidentID.String())
	}

	delay := w.baseDelay
	var lastErr error
	for i := 0; i < w.maxRetries; i++ {
		lastErr = w.sender.Send(ctx, n.Phone, n.Text)
		if lastErr == nil {
			log.Debug("Notification delivered.")
			return nil
		}
		if i == w.maxRetries-1 {
			break
		}
		log.WithError(lastErr).Warnf("Notification delivery failed. Retrying in %v. Retries left: %d", delay, w.maxRetries-1-i)
		if !w.sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	log.WithError(lastErr).Errorf("Failed to deliver notification after %d attempts.", w.maxRetries)
	return fmt.Errorf("deliver notification: %w", lastErr)
}

// sleep waits for d or until ctx is done; false means ctx ended first.
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
