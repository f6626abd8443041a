package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/splitwing/splitwing/ports"
)

// SessionEvent describes a session transition observed by this client
type SessionEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"` // "login" or "logout"
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{
		publisher: publisher,
		topic:     "splitwing.session",
	}
}

// PublishLogin publishes a login event
func (p *WatermillPublisher) PublishLogin(ctx context.Context, subject string) error {
	return p.publish("login", subject)
}

// PublishLogout publishes a logout event
func (p *WatermillPublisher) PublishLogout(ctx context.Context, subject string) error {
	return p.publish("logout", subject)
}

func (p *WatermillPublisher) publish(kind, subject string) error {
	event := SessionEvent{
		ID:         uuid.New().String(),
		Kind:       kind,
		Subject:    subject,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// NoopPublisher discards all session events
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event
func NewNoopPublisher() ports.EventPublisher {
	return NoopPublisher{}
}

// PublishLogin implements ports.EventPublisher
func (NoopPublisher) PublishLogin(ctx context.Context, subject string) error { return nil }

// PublishLogout implements ports.EventPublisher
func (NoopPublisher) PublishLogout(ctx context.Context, subject string) error { return nil }
