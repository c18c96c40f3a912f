package importbooks

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// ErrMissingAdapter is returned when the command carries no adapter.
var ErrMissingAdapter = errors.New("import books: adapter must not be nil")

// CommandHandler orchestrates the command processing workflow: Adapt -> Decide -> Append.
type CommandHandler struct {
	catalog shell.AppendsBooks
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalog shell.AppendsBooks) CommandHandler {
	return CommandHandler{
		catalog: catalog,
	}
}

// Handle adapts the raw data and appends every title in source order.
// Parse errors wrap bookdata.ErrParse, the catalog is left untouched on any error.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	if command.Adapter == nil {
		return shell.HandlerResult{}, ErrMissingAdapter
	}

	records, err := command.Adapter.AdaptData(command.RawData)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	result, err := Decide(records, command)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	event := result.Event.(core.BooksImportedToCatalog) //nolint:forcetypeassert // Decide only builds this event

	for _, title := range event.Titles {
		h.catalog.Add(title)
	}

	return shell.NewSilentSuccessResult(shell.BuildEventEnvelope(event, shell.NewEventMetadata())), nil
}
