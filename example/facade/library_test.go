package facade_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/facade"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
	. "github.com/AntonStoeckl/library-patterns-go/testutil/helper" //nolint:revive
)

func Test_Library_New_NilCatalog(t *testing.T) {
	lib, err := facade.New(nil)

	assert.ErrorIs(t, err, facade.ErrNilCatalog)
	assert.Nil(t, lib)
}

func Test_Library_New_NilClock(t *testing.T) {
	_, err := facade.New(catalog.NewProcess().Catalog(), facade.WithClock(nil))

	assert.ErrorIs(t, err, facade.ErrNilClock)
}

func Test_Library_AddBook_NotifiesOnce(t *testing.T) {
	// arrange
	lib, books := givenLibrary(t)
	observer := givenSubscriber(t, lib, "Anna")

	// act
	err := lib.AddBook(context.Background(), "Python for Beginners")

	// assert
	require.NoError(t, err)
	assert.True(t, books.Contains("Python for Beginners"))
	assert.Equal(t, []string{"Book 'Python for Beginners' has been added to the catalog."}, observer.Messages())
}

func Test_Library_BorrowBook_RemovesPresentTitleAndNotifiesOnce(t *testing.T) {
	// arrange
	lib, books := givenLibrary(t, "Clean Code")
	observer := givenSubscriber(t, lib, "Jan")
	anna := givenUser(t, core.StudentKind, "Anna")

	// act
	outcome, err := lib.BorrowBook(context.Background(), "Clean Code", anna)

	// assert
	require.NoError(t, err)
	assert.False(t, outcome.Unavailable)
	assert.Equal(t, "Anna borrowed the book 'Clean Code'.", outcome.Message)
	assert.False(t, books.Contains("Clean Code"))
	assert.Equal(t, []string{"Anna borrowed the book 'Clean Code'."}, observer.Messages())
}

func Test_Library_BorrowBook_MissingTitleChangesNothing(t *testing.T) {
	// arrange
	lib, books := givenLibrary(t, "Clean Code")
	observer := givenSubscriber(t, lib, "Jan")
	anna := givenUser(t, core.StudentKind, "Anna")

	// act
	outcome, err := lib.BorrowBook(context.Background(), "Missing", anna)

	// assert
	require.NoError(t, err)
	assert.True(t, outcome.Unavailable)
	assert.Equal(t, "Book 'Missing' is not available.", outcome.Message)
	assert.Equal(t, catalog.BookTitles{"Clean Code"}, books.Books())
	assert.Empty(t, observer.Messages())
}

func Test_Library_ReturnBook_ReAddsRegardlessOfPriorBorrow(t *testing.T) {
	// arrange
	lib, books := givenLibrary(t, "Clean Code")
	observer := givenSubscriber(t, lib, "Jan")
	anna := givenUser(t, core.StudentKind, "Anna")
	ctx := context.Background()

	// act
	_, err := lib.BorrowBook(ctx, "Clean Code", anna)
	require.NoError(t, err)
	err = lib.ReturnBook(ctx, "Clean Code", anna)
	require.NoError(t, err)
	err = lib.ReturnBook(ctx, "Clean Code", anna)
	require.NoError(t, err)

	// assert
	assert.Equal(t, catalog.BookTitles{"Clean Code", "Clean Code"}, books.Books())
	assert.Equal(t, []string{
		"Anna borrowed the book 'Clean Code'.",
		"Anna returned the book 'Clean Code'.",
		"Anna returned the book 'Clean Code'.",
	}, observer.Messages())
}

func Test_Library_Notifications_FollowSubscriptionOrder(t *testing.T) {
	// arrange
	lib, _ := givenLibrary(t)
	journal := NewDeliveryJournal()
	anna := NewObserverSpy("Anna", journal)
	jan := NewObserverSpy("Jan", journal)
	require.NoError(t, lib.Subscribe(anna))
	require.NoError(t, lib.Subscribe(jan))
	ctx := context.Background()

	// act
	require.NoError(t, lib.AddBook(ctx, "A"))
	lib.Unsubscribe(anna)
	require.NoError(t, lib.AddBook(ctx, "B"))

	// assert
	assert.Equal(t, []string{
		"Anna: Book 'A' has been added to the catalog.",
		"Jan: Book 'A' has been added to the catalog.",
		"Jan: Book 'B' has been added to the catalog.",
	}, journal.Entries())
}

func Test_Library_AddBook_FailingSubscriberIsReported(t *testing.T) {
	// arrange
	logger := NewContextualLoggerSpy(true)
	books := catalog.NewProcess().Catalog()
	lib, err := facade.New(books, facade.WithContextualLogger(logger))
	require.NoError(t, err)

	failing := NewFailingObserverSpy("Anna", nil, errors.New("inbox full"))
	working := NewObserverSpy("Jan", nil)
	require.NoError(t, lib.Subscribe(failing))
	require.NoError(t, lib.Subscribe(working))

	// act
	err = lib.AddBook(context.Background(), "Refactoring")

	// assert
	assert.ErrorIs(t, err, notifier.ErrDeliveryFailed)
	assert.True(t, books.Contains("Refactoring"))
	assert.Len(t, working.Messages(), 1)
	assert.True(t, logger.HasErrorLog("notification delivery failed"))
}

func Test_Library_Books_IteratesSnapshot(t *testing.T) {
	// arrange
	lib, _ := givenLibrary(t, "A", "B")

	// act
	first, err := lib.Books(context.Background())
	require.NoError(t, err)
	second, err := lib.Books(context.Background())
	require.NoError(t, err)
	require.NoError(t, lib.AddBook(context.Background(), "C"))

	// assert
	assert.Equal(t, []string{"A", "B"}, slices.Collect(first.All()))
	assert.Equal(t, []string{"A", "B"}, slices.Collect(second.All()))
}

func Test_Library_ImportBooks_DoesNotNotify(t *testing.T) {
	// arrange
	lib, books := givenLibrary(t)
	observer := givenSubscriber(t, lib, "Anna")

	// act
	count, err := lib.ImportBooks(context.Background(), "title\nRefactoring\nThe Pragmatic Programmer", bookdata.NewCSVAdapter())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, catalog.BookTitles{"Refactoring", "The Pragmatic Programmer"}, books.Books())
	assert.Empty(t, observer.Messages())
}

func Test_Library_WithClock_StampsEvents(t *testing.T) {
	// arrange
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	logger := NewContextualLoggerSpy(true)
	lib, err := facade.New(
		catalog.NewProcess().Catalog(),
		facade.WithClock(func() time.Time { return fixed }),
		facade.WithContextualLogger(logger),
		facade.WithObservability(nil, nil),
	)
	require.NoError(t, err)

	// act
	require.NoError(t, lib.AddBook(context.Background(), "Clean Code"))

	// assert
	records := logger.GetRecords()
	var payload string
	for _, record := range records {
		if record.Message == shell.LogMsgEventPublished {
			payload = record.Args[1].(string)
		}
	}
	assert.Contains(t, payload, "2024-01-02T03:04:05Z")
}

func Test_Library_WithObservability_InstrumentsEveryOperation(t *testing.T) {
	// arrange
	metrics := NewMetricsCollectorSpy(true)
	tracing := NewTracingCollectorSpy(true)
	lib, _ := givenLibrary(t, "Clean Code")
	observed, err := facade.New(lib.Catalog(), facade.WithObservability(metrics, tracing))
	require.NoError(t, err)
	anna := givenUser(t, core.TeacherKind, "Anna")
	ctx := context.Background()

	// act
	_, err = observed.ImportBooks(ctx, `[{"title": "Design Patterns"}]`, bookdata.NewJSONAdapter())
	require.NoError(t, err)
	require.NoError(t, observed.AddBook(ctx, "Python for Beginners"))
	_, err = observed.BorrowBook(ctx, "Missing", anna)
	require.NoError(t, err)
	_, err = observed.BorrowBook(ctx, "Clean Code", anna)
	require.NoError(t, err)
	require.NoError(t, observed.ReturnBook(ctx, "Clean Code", anna))
	_, err = observed.Books(ctx)
	require.NoError(t, err)

	// assert
	assert.Equal(t, 5, metrics.CountCounterRecordsForMetric(shell.CommandHandlerCallsMetric))
	assert.Equal(t, 1, metrics.CountCounterRecordsForMetric(shell.BookUnavailableMetric))
	assert.Equal(t, 1, metrics.CountCounterRecordsForMetric(shell.QueryHandlerCallsMetric))
	assert.True(t, metrics.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel(shell.LogAttrCommandType, "BorrowBook").
		WithStatus(shell.StatusUnavailable).
		Assert())
	size, ok := metrics.LastValueForMetric(shell.CatalogSizeMetric)
	assert.True(t, ok)
	assert.InDelta(t, 3.0, size, 0.0001)
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusSuccess))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameQueryHandle, shell.StatusSuccess))
}

func Test_Library_WriterObserverPrintsNotifications(t *testing.T) {
	// arrange
	lib, _ := givenLibrary(t)
	var out bytes.Buffer
	require.NoError(t, lib.Subscribe(notifier.NewWriterObserver("Anna", &out)))

	// act
	require.NoError(t, lib.AddBook(context.Background(), "Clean Code"))

	// assert
	assert.Equal(t, "Notification for Anna: Book 'Clean Code' has been added to the catalog.\n", out.String())
}

func givenLibrary(t *testing.T, titles ...string) (*facade.Library, *catalog.Catalog) {
	t.Helper()

	books := catalog.NewProcess().Catalog()
	for _, title := range titles {
		books.Add(title)
	}

	lib, err := facade.New(books)
	require.NoError(t, err)

	return lib, books
}

func givenSubscriber(t *testing.T, lib *facade.Library, name string) *ObserverSpy {
	t.Helper()

	observer := NewObserverSpy(name, nil)
	require.NoError(t, lib.Subscribe(observer))

	return observer
}

func givenUser(t *testing.T, kind core.UserKind, name string) core.User {
	t.Helper()

	user, err := core.CreateUser(kind, name)
	require.NoError(t, err)

	return user
}
