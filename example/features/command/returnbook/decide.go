package returnbook

import (
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

// Decide implements the business logic of returning a book copy.
//
// Business Rules:
//
//	GIVEN: any catalog and any user
//	WHEN: ReturnBook command is received
//	THEN: BookReturnedByUser event is generated
func Decide(command Command) core.DecisionResult {
	return core.SuccessDecision(
		core.BuildBookReturnedByUser(command.Title, command.User, command.OccurredAt),
	)
}
