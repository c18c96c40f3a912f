package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

// EventEnvelope combines a domain event with its metadata.
type EventEnvelope struct {
	DomainEvent   core.DomainEvent
	EventMetadata EventMetadata
}

// BuildEventEnvelope creates a new EventEnvelope from domain event and metadata.
func BuildEventEnvelope(domainEvent core.DomainEvent, eventMetadata EventMetadata) EventEnvelope {
	return EventEnvelope{
		DomainEvent:   domainEvent,
		EventMetadata: eventMetadata,
	}
}

type eventEnvelopeJSON struct {
	EventType string        `json:"eventType"`
	Payload   any           `json:"payload"`
	Message   string        `json:"message"`
	Metadata  EventMetadata `json:"metadata"`
}

// EventEnvelopeJSON renders the envelope as a JSON document, used as log payload.
func EventEnvelopeJSON(envelope EventEnvelope) ([]byte, error) {
	if envelope.DomainEvent == nil {
		return nil, errors.Join(ErrMarshalingEventEnvelopeFailed, errors.New("envelope has no domain event"))
	}

	data, err := jsoniter.ConfigFastest.Marshal(eventEnvelopeJSON{
		EventType: envelope.DomainEvent.EventType(),
		Payload:   envelope.DomainEvent,
		Message:   envelope.DomainEvent.Message(),
		Metadata:  envelope.EventMetadata,
	})
	if err != nil {
		return nil, errors.Join(ErrMarshalingEventEnvelopeFailed, err)
	}

	return data, nil
}
