package importbooks

import (
	"time"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
)

const (
	commandType = "ImportBooks"
)

// Command represents the intent to load titles from raw book data.
type Command struct {
	RawData    string
	Adapter    bookdata.BookDataAdapter
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(rawData string, adapter bookdata.BookDataAdapter, occurredAt time.Time) Command {
	return Command{
		RawData:    rawData,
		Adapter:    adapter,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
