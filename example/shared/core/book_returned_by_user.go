package core

import (
	"fmt"
	"time"
)

// BookReturnedByUserEventType is the event type identifier.
const BookReturnedByUserEventType = "BookReturnedByUser"

// BookReturnedByUser represents when a user returns a book copy to the catalog.
type BookReturnedByUser struct {
	Title      BookTitleString
	UserID     UserIDString
	UserName   UserNameString
	OccurredAt OccurredAt
}

// BuildBookReturnedByUser creates a new BookReturnedByUser event.
func BuildBookReturnedByUser(title BookTitleString, user User, occurredAt time.Time) BookReturnedByUser {
	return BookReturnedByUser{
		Title:      title,
		UserID:     user.ID().String(),
		UserName:   user.Name(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookReturnedByUser) EventType() string {
	return BookReturnedByUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnedByUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturnedByUser) IsErrorEvent() bool {
	return false
}

// Message returns the notification text.
func (e BookReturnedByUser) Message() string {
	return fmt.Sprintf("%s returned the book '%s'.", e.UserName, e.Title)
}
