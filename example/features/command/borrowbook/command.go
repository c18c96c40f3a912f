package borrowbook

import (
	"time"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent of a user to borrow a book copy.
type Command struct {
	Title      core.BookTitleString
	User       core.User
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(title core.BookTitleString, user core.User, occurredAt time.Time) Command {
	return Command{
		Title:      title,
		User:       user,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
