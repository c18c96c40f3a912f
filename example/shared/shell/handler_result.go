package shell

// HandlerResult represents the outcome of a command handler execution.
// It captures the business outcome without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Unavailable indicates that the requested book was not in the catalog.
	// This is a first-class business outcome, not an error condition.
	Unavailable bool

	// Envelope is the event that describes what happened, together with its metadata.
	Envelope EventEnvelope

	// Broadcast is true when the event message was handed to the subscribers.
	Broadcast bool
}

// NewSuccessResult creates a HandlerResult for a catalog mutation that was broadcast.
func NewSuccessResult(envelope EventEnvelope) HandlerResult {
	return HandlerResult{
		Envelope:  envelope,
		Broadcast: true,
	}
}

// NewSilentSuccessResult creates a HandlerResult for a catalog mutation that was not broadcast.
func NewSilentSuccessResult(envelope EventEnvelope) HandlerResult {
	return HandlerResult{
		Envelope: envelope,
	}
}

// NewUnavailableResult creates a HandlerResult for a borrow request of a missing title.
func NewUnavailableResult(envelope EventEnvelope) HandlerResult {
	return HandlerResult{
		Unavailable: true,
		Envelope:    envelope,
	}
}

// Message returns the notification text of the event, or an empty string if there is none.
func (r HandlerResult) Message() string {
	if r.Envelope.DomainEvent == nil {
		return ""
	}

	return r.Envelope.DomainEvent.Message()
}
