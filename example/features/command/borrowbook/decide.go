package borrowbook

import (
	"slices"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

const (
	failureReasonBookNotInCatalog = "book is not in the catalog"
	failureReasonBookJustBorrowed = "last copy was borrowed concurrently"
)

// state represents the part of the catalog relevant for this use case.
type state struct {
	bookIsAvailable bool
}

// Decide implements the business logic to determine whether a book copy can be borrowed.
// This is a pure function without side effects.
//
// Business Rules:
//
//	GIVEN: a catalog snapshot and a user
//	WHEN: BorrowBook command is received
//	THEN: BookBorrowedByUser event is generated
//	UNAVAILABLE: BorrowingBookFailed "book is not in the catalog" if no copy of the title is present
func Decide(books catalog.BookTitles, command Command) core.DecisionResult {
	s := project(books, command.Title)

	if !s.bookIsAvailable {
		return core.UnavailableDecision(
			core.BuildBorrowingBookFailed(command.Title, command.User, failureReasonBookNotInCatalog, command.OccurredAt),
		)
	}

	return core.SuccessDecision(
		core.BuildBookBorrowedByUser(command.Title, command.User, command.OccurredAt),
	)
}

// project builds the current state from the catalog snapshot.
func project(books catalog.BookTitles, title core.BookTitleString) state {
	return state{
		bookIsAvailable: slices.Contains(books, title),
	}
}

func concurrentlyBorrowed(command Command) core.DecisionResult {
	return core.UnavailableDecision(
		core.BuildBorrowingBookFailed(command.Title, command.User, failureReasonBookJustBorrowed, command.OccurredAt),
	)
}
