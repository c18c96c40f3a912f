package importbooks

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
)

// ErrRecordWithoutTitle is returned when an adapted record has no title field.
var ErrRecordWithoutTitle = errors.New("book record has no title")

// Decide implements the business logic of an import. This is a pure function without side effects.
//
// Business Rules:
//
//	GIVEN: adapted book records
//	WHEN: ImportBooks command is received
//	THEN: BooksImportedToCatalog event listing every title in source order is generated
//	ERROR: ErrRecordWithoutTitle if any record lacks a title, nothing is imported
func Decide(records bookdata.Records, command Command) (core.DecisionResult, error) {
	titles, missingAt := bookdata.Titles(records)
	if missingAt >= 0 {
		return core.DecisionResult{}, fmt.Errorf("%w: record %d", ErrRecordWithoutTitle, missingAt)
	}

	return core.SuccessDecision(
		core.BuildBooksImportedToCatalog(titles, command.Adapter.Format(), command.OccurredAt),
	), nil
}
