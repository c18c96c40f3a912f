package core

import (
	"fmt"
	"time"
)

// BorrowingBookFailedEventType is the event type identifier.
const BorrowingBookFailedEventType = "BorrowingBookFailed"

// BorrowingBookFailed represents when a user asked for a book that is not in the catalog.
// It is reported to the caller, it is not broadcast to subscribers.
type BorrowingBookFailed struct {
	Title       BookTitleString
	UserID      UserIDString
	UserName    UserNameString
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildBorrowingBookFailed creates a new BorrowingBookFailed event.
func BuildBorrowingBookFailed(
	title BookTitleString,
	user User,
	failureInfo string,
	occurredAt time.Time,
) BorrowingBookFailed {

	return BorrowingBookFailed{
		Title:       title,
		UserID:      user.ID().String(),
		UserName:    user.Name(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BorrowingBookFailed) EventType() string {
	return BorrowingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e BorrowingBookFailed) IsErrorEvent() bool {
	return true
}

// Message returns the text reported to the caller.
func (e BorrowingBookFailed) Message() string {
	return fmt.Sprintf("Book '%s' is not available.", e.Title)
}
