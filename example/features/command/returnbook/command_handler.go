package returnbook

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// ErrMissingUser is returned when the command carries no user.
var ErrMissingUser = errors.New("return book: user must not be nil")

// CommandHandler orchestrates the command processing workflow: Decide -> Append -> Broadcast.
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

// Handle appends the returned title and broadcasts the event message.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	if command.User == nil {
		return shell.HandlerResult{}, ErrMissingUser
	}

	result := Decide(command)
	envelope := shell.BuildEventEnvelope(result.Event, shell.NewEventMetadata())

	h.catalog.Add(command.Title)

	if err := h.broadcaster.Notify(ctx, result.Event.Message()); err != nil {
		return shell.NewSuccessResult(envelope), err
	}

	return shell.NewSuccessResult(envelope), nil
}
