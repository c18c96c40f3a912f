package facade

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/addbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/borrowbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/importbooks"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/returnbook"
	"github.com/AntonStoeckl/library-patterns-go/example/features/query/listbooks"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
)

// ErrNilCatalog is returned when a Library is created without a catalog.
var ErrNilCatalog = errors.New("catalog must not be nil")

// Outcome describes the result of a borrow request.
type Outcome struct {
	// Unavailable is true when the title was not in the catalog. The catalog is unchanged in that case.
	Unavailable bool

	// Message is the text that was broadcast, or the unavailability notice.
	Message string
}

// Library is the facade over the catalog, the notifier and the feature slices.
type Library struct {
	catalog     *catalog.Catalog
	notifier    *notifier.Notifier
	addBook     shell.CoreCommandHandler[addbook.Command]
	borrowBook  shell.CoreCommandHandler[borrowbook.Command]
	returnBook  shell.CoreCommandHandler[returnbook.Command]
	importBooks shell.CoreCommandHandler[importbooks.Command]
	listBooks   shell.CoreQueryHandler[listbooks.Query, *catalog.BookIterator]
	clock       func() time.Time
}

// New creates a Library over the given catalog with a fresh Notifier.
func New(books *catalog.Catalog, opts ...Option) (*Library, error) {
	if books == nil {
		return nil, ErrNilCatalog
	}

	s := settings{clock: time.Now}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	publisher, err := notifier.NewNotifier(s.notifierOptions()...)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		catalog:  books,
		notifier: publisher,
		clock:    s.clock,
	}

	if err := lib.wireHandlers(s); err != nil {
		return nil, err
	}

	return lib, nil
}

// AddBook appends the title to the catalog and notifies every subscriber once.
// A subscriber failure is returned as an error wrapping notifier.ErrDeliveryFailed, the title stays in the catalog.
func (l *Library) AddBook(ctx context.Context, title string) error {
	_, err := l.addBook.Handle(ctx, addbook.BuildCommand(title, l.clock()))

	return err
}

// BorrowBook removes the first copy of the title and notifies every subscriber once.
// When the title is not in the catalog nothing changes, nobody is notified and the Outcome is Unavailable.
func (l *Library) BorrowBook(ctx context.Context, title string, user core.User) (Outcome, error) {
	result, err := l.borrowBook.Handle(ctx, borrowbook.BuildCommand(title, user, l.clock()))

	return Outcome{Unavailable: result.Unavailable, Message: result.Message()}, err
}

// ReturnBook appends the title to the catalog and notifies every subscriber once, whether or not it was borrowed.
func (l *Library) ReturnBook(ctx context.Context, title string, user core.User) error {
	_, err := l.returnBook.Handle(ctx, returnbook.BuildCommand(title, user, l.clock()))

	return err
}

// ImportBooks adapts raw book data and appends every title, without notifying.
// It returns the number of imported titles.
func (l *Library) ImportBooks(ctx context.Context, raw string, adapter bookdata.BookDataAdapter) (int, error) {
	result, err := l.importBooks.Handle(ctx, importbooks.BuildCommand(raw, adapter, l.clock()))
	if err != nil {
		return 0, err
	}

	event, ok := result.Envelope.DomainEvent.(core.BooksImportedToCatalog)
	if !ok {
		return 0, nil
	}

	return len(event.Titles), nil
}

// Books returns an iterator over a snapshot of the catalog taken now.
func (l *Library) Books(ctx context.Context) (*catalog.BookIterator, error) {
	return l.listBooks.Handle(ctx, listbooks.BuildQuery())
}

// Subscribe registers an observer for every future broadcast of this Library.
func (l *Library) Subscribe(observer notifier.Observer) error {
	return l.notifier.Subscribe(observer)
}

// Unsubscribe removes the first subscription of the observer, it is a no-op if absent.
func (l *Library) Unsubscribe(observer notifier.Observer) {
	l.notifier.Unsubscribe(observer)
}

// Notifier returns the notifier owned by this Library.
func (l *Library) Notifier() *notifier.Notifier {
	return l.notifier
}

// Catalog returns the catalog this Library operates on.
func (l *Library) Catalog() *catalog.Catalog {
	return l.catalog
}
