package addbook

import (
	"time"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book copy to the catalog.
type Command struct {
	Title      core.BookTitleString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(title core.BookTitleString, occurredAt time.Time) Command {
	return Command{
		Title:      title,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
