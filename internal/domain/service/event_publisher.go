package service

import (
	"context"
	"time"
)

// ContactEventType names what happened to a contact.
type ContactEventType string

const (
	ContactCreated ContactEventType = "contact.created"
	ContactUpdated ContactEventType = "contact.updated"
	ContactDeleted ContactEventType = "contact.deleted"
)

// ContactEvent is published after a contact mutation has been committed
type ContactEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       ContactEventType `json:"type"`
	ContactID  int64            `json:"contact_id"`
	Username   string           `json:"username"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContactEvent publishes a contact change event
	PublishContactEvent(ctx context.Context, event *ContactEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
