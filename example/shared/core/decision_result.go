package core

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// SuccessDecision(event) or UnavailableDecision(event).
type DecisionResult struct {
	Outcome string // "success" or "unavailable"
	Event   DomainEvent
}

const (
	successOutcome     = "success"
	unavailableOutcome = "unavailable"
)

// SuccessDecision creates a DecisionResult indicating a state change whose event is broadcast.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Event:   event,
	}
}

// UnavailableDecision creates a DecisionResult indicating the requested book is not in the catalog.
// Nothing changes and nothing is broadcast, the event is only reported to the caller.
func UnavailableDecision(event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: unavailableOutcome,
		Event:   event,
	}
}

// HasEventToPublish returns true if the event should be broadcast to subscribers.
func (r DecisionResult) HasEventToPublish() bool {
	return r.Outcome == successOutcome
}

// IsUnavailable returns true if the requested book was not in the catalog.
func (r DecisionResult) IsUnavailable() bool {
	return r.Outcome == unavailableOutcome
}
