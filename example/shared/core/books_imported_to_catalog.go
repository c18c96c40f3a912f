package core

import (
	"fmt"
	"time"
)

// BooksImportedToCatalogEventType is the event type identifier.
const BooksImportedToCatalogEventType = "BooksImportedToCatalog"

// BooksImportedToCatalog represents when a batch of titles was loaded from external book data.
// Imports are not broadcast to subscribers.
type BooksImportedToCatalog struct {
	Titles     []BookTitleString
	Format     string
	OccurredAt OccurredAt
}

// BuildBooksImportedToCatalog creates a new BooksImportedToCatalog event.
func BuildBooksImportedToCatalog(titles []BookTitleString, format string, occurredAt time.Time) BooksImportedToCatalog {
	return BooksImportedToCatalog{
		Titles:     titles,
		Format:     format,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BooksImportedToCatalog) EventType() string {
	return BooksImportedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BooksImportedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BooksImportedToCatalog) IsErrorEvent() bool {
	return false
}

// Message returns a summary of the import.
func (e BooksImportedToCatalog) Message() string {
	return fmt.Sprintf("%d books have been imported to the catalog from %s data.", len(e.Titles), e.Format)
}
