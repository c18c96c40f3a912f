package listbooks

import (
	"context"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
)

// QueryHandler answers the List Books query.
type QueryHandler struct {
	catalog shell.ReadsBooks
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(catalog shell.ReadsBooks) QueryHandler {
	return QueryHandler{
		catalog: catalog,
	}
}

// Handle takes a snapshot of the catalog and returns an iterator over it.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (*catalog.BookIterator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return catalog.NewBookIterator(h.catalog.Books()), nil
}
