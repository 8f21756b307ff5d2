package ussd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "ussd:session:"

// Step is the menu screen a session is waiting on.
type Step string

const (
	StepMain     Step = "main"
	StepThreat   Step = "threat"
	StepSeverity Step = "severity"
	StepRespond  Step = "respond"
)

// Session is the state of one USSD dialogue, keyed by the gateway's session id.
type Session struct {
	ID         string            `json:"id"`
	Phone      string            `json:"phone"`
	Step       Step              `json:"step"`
	ThreatType models.ThreatType `json:"threat_type,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SessionStore persists sessions between gateway callbacks. Get returns nil, nil
// when the session does not exist or has expired.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in Redis so any instance can serve the next step.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ussd session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode ussd session: %w", err)
	}
	return &s, nil
}

// Save writes the session and restarts its expiry.
func (r *RedisSessionStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode ussd session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save ussd session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete ussd session: %w", err)
	}
	return nil
}
