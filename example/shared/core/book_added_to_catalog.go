package core

import (
	"fmt"
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book copy is added to the catalog.
type BookAddedToCatalog struct {
	Title      BookTitleString
	OccurredAt OccurredAt
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(title BookTitleString, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}

// Message returns the notification text.
func (e BookAddedToCatalog) Message() string {
	return fmt.Sprintf("Book '%s' has been added to the catalog.", e.Title)
}
