package addbook

import (
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

// Decide implements the business logic of adding a book copy.
//
// Business Rules:
//
//	GIVEN: any catalog
//	WHEN: AddBook command is received
//	THEN: BookAddedToCatalog event is generated
func Decide(command Command) core.DecisionResult {
	return core.SuccessDecision(
		core.BuildBookAddedToCatalog(command.Title, command.OccurredAt),
	)
}
