package core

import (
	"fmt"
	"time"
)

// BookBorrowedByUserEventType is the event type identifier.
const BookBorrowedByUserEventType = "BookBorrowedByUser"

// BookBorrowedByUser represents when a user borrows a book copy from the catalog.
type BookBorrowedByUser struct {
	Title      BookTitleString
	UserID     UserIDString
	UserName   UserNameString
	OccurredAt OccurredAt
}

// BuildBookBorrowedByUser creates a new BookBorrowedByUser event.
func BuildBookBorrowedByUser(title BookTitleString, user User, occurredAt time.Time) BookBorrowedByUser {
	return BookBorrowedByUser{
		Title:      title,
		UserID:     user.ID().String(),
		UserName:   user.Name(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookBorrowedByUser) EventType() string {
	return BookBorrowedByUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowedByUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookBorrowedByUser) IsErrorEvent() bool {
	return false
}

// Message returns the notification text.
func (e BookBorrowedByUser) Message() string {
	return fmt.Sprintf("%s borrowed the book '%s'.", e.UserName, e.Title)
}
