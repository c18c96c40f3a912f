package shell

import "errors"

var (
	// ErrMarshalingEventEnvelopeFailed is returned when an event envelope cannot be rendered as JSON.
	ErrMarshalingEventEnvelopeFailed = errors.New("marshaling event envelope failed")
)
