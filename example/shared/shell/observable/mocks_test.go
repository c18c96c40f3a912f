package observable_test

import (
	"context"
	"log/slog"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// mockCommand implements shell.Command for testing.
type mockCommand struct{}

func (c mockCommand) CommandType() string { return "TestCommand" }

// mockHandler implements shell.CoreCommandHandler for testing.
type mockHandler struct {
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func newMockHandler(result shell.HandlerResult, err error) *mockHandler {
	return &mockHandler{result: result, err: err}
}

func (h *mockHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}

func (h *mockHandler) GetCalls() []mockCommand {
	return h.calls
}

// mockQuery implements shell.Query for testing.
type mockQuery struct{}

func (q mockQuery) QueryType() string { return "TestQuery" }

type mockResult struct {
	Value string
}

// mockQueryHandler implements shell.CoreQueryHandler for testing.
type mockQueryHandler struct {
	result mockResult
	err    error
}

func newMockQueryHandler(result mockResult, err error) *mockQueryHandler {
	return &mockQueryHandler{result: result, err: err}
}

func (h *mockQueryHandler) Handle(_ context.Context, _ mockQuery) (mockResult, error) {
	return h.result, h.err
}

type fixedSize int

func (s fixedSize) Len() int { return int(s) }

func newSlogLogger(handler slog.Handler) *slog.Logger {
	return slog.New(handler)
}
