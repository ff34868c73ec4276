package service

import (
	"context"
	"time"
)

// Session event types.
const (
	SessionEventSignedIn  = "signed_in"
	SessionEventSignedOut = "signed_out"
)

// SessionEvent describes one transition of the process-wide session
type SessionEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UID        string    `json:"uid"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing session events to a message queue
type EventPublisher interface {
	// PublishSessionEvent publishes a session transition
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
