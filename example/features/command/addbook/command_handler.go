package addbook

import (
	"context"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// CommandHandler orchestrates the command processing workflow: Decide -> Append -> Broadcast.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	catalog     shell.AppendsBooks
	broadcaster shell.Broadcaster
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(catalog shell.AppendsBooks, broadcaster shell.Broadcaster) CommandHandler {
	return CommandHandler{
		catalog:     catalog,
		broadcaster: broadcaster,
	}
}

// Handle appends the title and broadcasts the event message.
// A failing subscriber does not undo the append, its error is returned together with the result.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	result := Decide(command)
	envelope := shell.BuildEventEnvelope(result.Event, shell.NewEventMetadata())

	h.catalog.Add(command.Title)

	if err := h.broadcaster.Notify(ctx, result.Event.Message()); err != nil {
		return shell.NewSuccessResult(envelope), err
	}

	return shell.NewSuccessResult(envelope), nil
}
