package helper

import (
	"sync"
)

// ObserverSpy records every message it receives.
// It optionally fails every delivery with the configured error.
type ObserverSpy struct {
	name     string
	failWith error
	messages []string
	journal  *DeliveryJournal
	mu       sync.Mutex
}

// DeliveryJournal records the order in which several observers were notified.
type DeliveryJournal struct {
	entries []string
	mu      sync.Mutex
}

// NewDeliveryJournal creates an empty DeliveryJournal.
func NewDeliveryJournal() *DeliveryJournal {
	return &DeliveryJournal{}
}

// Entries returns the delivered entries as "name: message", in delivery order.
func (j *DeliveryJournal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append([]string(nil), j.entries...)
}

func (j *DeliveryJournal) append(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, entry)
}

// NewObserverSpy creates an ObserverSpy. The journal may be nil.
func NewObserverSpy(name string, journal *DeliveryJournal) *ObserverSpy {
	return &ObserverSpy{name: name, journal: journal}
}

// NewFailingObserverSpy creates an ObserverSpy which records messages but returns failWith from every Update.
func NewFailingObserverSpy(name string, journal *DeliveryJournal, failWith error) *ObserverSpy {
	return &ObserverSpy{name: name, journal: journal, failWith: failWith}
}

// Update implements notifier.Observer.
func (o *ObserverSpy) Update(message string) error {
	o.mu.Lock()
	o.messages = append(o.messages, message)
	o.mu.Unlock()

	if o.journal != nil {
		o.journal.append(o.name + ": " + message)
	}

	return o.failWith
}

// Messages returns the received messages in order.
func (o *ObserverSpy) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.messages...)
}

// String returns the observer name.
func (o *ObserverSpy) String() string {
	return o.name
}
