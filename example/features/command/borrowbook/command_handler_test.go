package borrowbook_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/features/command/borrowbook"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
	. "github.com/AntonStoeckl/library-patterns-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_RemovesFirstCopyAndNotifiesOnce(t *testing.T) {
	// arrange
	books := givenCatalog("Clean Code", "Design Patterns", "Clean Code")
	publisher, observer := givenNotifierWithObserver(t)
	handler := borrowbook.NewCommandHandler(books, publisher)

	// act
	result, err := handler.Handle(context.Background(), borrowbook.BuildCommand("Clean Code", givenUser(t, "Anna"), time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Unavailable)
	assert.True(t, result.Broadcast)
	assert.Equal(t, catalog.BookTitles{"Design Patterns", "Clean Code"}, books.Books())
	assert.Equal(t, []string{"Anna borrowed the book 'Clean Code'."}, observer.Messages())
}

func Test_CommandHandler_Handle_UnavailableBookChangesNothing(t *testing.T) {
	// arrange
	books := givenCatalog("Clean Code")
	publisher, observer := givenNotifierWithObserver(t)
	logger := NewContextualLoggerSpy(true)
	handler := borrowbook.NewCommandHandler(books, publisher, borrowbook.WithContextualLogging(logger))

	// act
	result, err := handler.Handle(context.Background(), borrowbook.BuildCommand("Missing", givenUser(t, "Anna"), time.Now()))

	// assert
	require.NoError(t, err, "an unavailable book is an outcome, not an error")
	assert.True(t, result.Unavailable)
	assert.False(t, result.Broadcast)
	assert.Equal(t, "Book 'Missing' is not available.", result.Message())
	assert.Equal(t, catalog.BookTitles{"Clean Code"}, books.Books())
	assert.Empty(t, observer.Messages())
	assert.True(t, logger.HasInfoLog(shell.LogMsgBookUnavailable))
}

func Test_CommandHandler_Handle_UnavailableBookWithBasicLogger(t *testing.T) {
	// arrange
	logHandler := NewLogHandlerSpy()
	publisher, _ := givenNotifierWithObserver(t)
	handler := borrowbook.NewCommandHandler(givenCatalog(), publisher, borrowbook.WithLogging(slog.New(logHandler)))

	// act
	_, err := handler.Handle(context.Background(), borrowbook.BuildCommand("Missing", givenUser(t, "Jan"), time.Now()))

	// assert
	require.NoError(t, err)
	assert.True(t, logHandler.HasLogWithAttr(shell.LogMsgBookUnavailable, shell.LogAttrBookTitle, "Missing"))
	assert.True(t, logHandler.HasLogWithAttr(shell.LogMsgBookUnavailable, shell.LogAttrUserName, "Jan"))
}

func Test_CommandHandler_Handle_LastCopyCanOnlyBeBorrowedOnce(t *testing.T) {
	// arrange
	books := givenCatalog("Clean Code")
	publisher, observer := givenNotifierWithObserver(t)
	handler := borrowbook.NewCommandHandler(books, publisher)
	anna := givenUser(t, "Anna")
	ctx := context.Background()

	const borrowers = 16
	var wg sync.WaitGroup
	var successes, unavailable atomic.Int32

	// act
	for range borrowers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := handler.Handle(ctx, borrowbook.BuildCommand("Clean Code", anna, time.Now()))
			if err != nil {
				return
			}

			if result.Unavailable {
				unavailable.Add(1)
			} else {
				successes.Add(1)
			}
		}()
	}

	wg.Wait()

	// assert
	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(borrowers-1), unavailable.Load())
	assert.Zero(t, books.Len())
	assert.Len(t, observer.Messages(), 1)
}

func Test_CommandHandler_Handle_MissingUser(t *testing.T) {
	// arrange
	books := givenCatalog("Clean Code")
	publisher, _ := givenNotifierWithObserver(t)
	handler := borrowbook.NewCommandHandler(books, publisher)

	// act
	_, err := handler.Handle(context.Background(), borrowbook.BuildCommand("Clean Code", nil, time.Now()))

	// assert
	assert.ErrorIs(t, err, borrowbook.ErrMissingUser)
	assert.Equal(t, 1, books.Len())
}

func Test_CommandHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	books := givenCatalog("Clean Code")
	publisher, observer := givenNotifierWithObserver(t)
	handler := borrowbook.NewCommandHandler(books, publisher)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand("Clean Code", givenUser(t, "Anna"), time.Now()))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, books.Len())
	assert.Empty(t, observer.Messages())
}

func givenCatalog(titles ...string) *catalog.Catalog {
	books := catalog.NewProcess().Catalog()
	for _, title := range titles {
		books.Add(title)
	}

	return books
}

func givenNotifierWithObserver(t *testing.T) (*notifier.Notifier, *ObserverSpy) {
	t.Helper()

	publisher, err := notifier.NewNotifier()
	require.NoError(t, err)

	observer := NewObserverSpy("observer", nil)
	require.NoError(t, publisher.Subscribe(observer))

	return publisher, observer
}
