package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Type names an incident lifecycle event.
type Type string

const (
	TypeIncidentCreated   Type = "incident.created"
	TypeIncidentAssigned  Type = "incident.assigned"
	TypeIncidentStatus    Type = "incident.status_changed"
	TypeIncidentBroadcast Type = "incident.broadcast"
	TypeCommunityResponse Type = "incident.community_response"
)

// IncidentEvent is the JSON payload written to the incident events topic.
type IncidentEvent struct {
	Type       Type                  `json:"type"`
	IncidentID uuid.UUID             `json:"incident_id"`
	Status     models.IncidentStatus `json:"status"`
	PrevStatus models.IncidentStatus `json:"prev_status,omitempty"`
	ThreatType models.ThreatType     `json:"threat_type"`
	Severity   models.Severity       `json:"severity"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	RangerID   *uuid.UUID            `json:"ranger_id,omitempty"`
	Detail     map[string]any        `json:"detail,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// NewIncidentEvent fills the incident snapshot fields of an event.
func NewIncidentEvent(t Type, inc models.Incident, now time.Time) IncidentEvent {
	return IncidentEvent{
		Type:       t,
		IncidentID: inc.ID,
		Status:     inc.Status,
		ThreatType: inc.ThreatType,
		Severity:   inc.Severity,
		Latitude:   inc.Location.Lat,
		Longitude:  inc.Location.Lon,
		RangerID:   inc.AssignedRangerID,
		OccurredAt: now.UTC(),
	}
}

// Publisher emits incident events.
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by incident id so one incident stays on one partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 250 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: NewWriter(brokers, topic)}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.IncidentID.String()),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write incident event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, IncidentEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
