package core

import (
	"time"
)

// DomainEvent represents a business event that has occurred in the library.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event represents a failed business operation.
	IsErrorEvent() bool

	// Message returns the human-readable notification text for this event.
	Message() string
}
