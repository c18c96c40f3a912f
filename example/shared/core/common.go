package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types here ...

// BookTitleString represents a book, which is identified by its title only.
type BookTitleString = string

// UserIDString represents a user identifier.
type UserIDString = string

// UserNameString represents the display name of a user.
type UserNameString = string

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
