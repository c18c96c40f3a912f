package notifier

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
)

const (
	logMsgDeliveryFailed = "notification delivery failed"
	logMsgNotified       = "notification sent"
	logAttrObserver      = "observer"
	logAttrPosition      = "position"
	logAttrError         = "error"
	logAttrSubscribers   = "subscribers"
	logAttrFailures      = "failures"
)

var (
	// ErrDeliveryFailed is joined into the error returned by Notify when at least one observer failed.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrNilObserver is returned when subscribing a nil observer.
	ErrNilObserver = errors.New("observer must not be nil")

	// ErrObserverNotComparable is returned when subscribing an observer whose dynamic type is not comparable,
	// since it could never be unsubscribed again.
	ErrObserverNotComparable = errors.New("observer must be comparable, use a pointer type")
)

// Observer receives broadcast messages.
type Observer interface {
	Update(message string) error
}

// Notifier holds an ordered list of observers. All methods are safe for concurrent use.
type Notifier struct {
	mu               sync.RWMutex
	subscribers      []Observer
	logger           catalog.Logger
	contextualLogger catalog.ContextualLogger
}

// Option defines a functional option for configuring a Notifier.
type Option func(*Notifier) error

// WithLogger sets the logger for delivery failures.
func WithLogger(logger catalog.Logger) Option {
	return func(n *Notifier) error {
		n.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger, it takes precedence over WithLogger.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(n *Notifier) error {
		n.contextualLogger = logger
		return nil
	}
}

// NewNotifier creates a Notifier without subscribers.
func NewNotifier(options ...Option) (*Notifier, error) {
	n := &Notifier{
		subscribers: make([]Observer, 0),
	}

	for _, option := range options {
		if err := option(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Subscribe appends the observer to the end of the subscriber list. Duplicates are allowed.
func (n *Notifier) Subscribe(observer Observer) error {
	if observer == nil {
		return ErrNilObserver
	}

	if !reflect.TypeOf(observer).Comparable() {
		return ErrObserverNotComparable
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers = append(n.subscribers, observer)

	return nil
}

// Unsubscribe removes the first subscription of the observer. It is a no-op if the observer is not subscribed.
// An observer holding an uncomparable value (e.g. a slice in an interface field) never matches and stays subscribed.
func (n *Notifier) Unsubscribe(observer Observer) {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	idx := slices.IndexFunc(n.subscribers, func(subscriber Observer) bool {
		return sameObserver(subscriber, observer)
	})
	if idx < 0 {
		return
	}

	n.subscribers = slices.Delete(n.subscribers, idx, idx+1)
}

// sameObserver compares two observers. A comparable static type can still hold an
// uncomparable dynamic value (e.g. a slice in an any field), such pairs are never the same.
func sameObserver(a, b Observer) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}

// Subscribers returns the number of current subscriptions.
func (n *Notifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.subscribers)
}

// Notify delivers the message to every subscriber in subscription order.
//
// The subscriber list is captured when Notify starts, so observers may subscribe or
// unsubscribe from within Update without affecting the current broadcast.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.mu.RLock()
	subscribers := slices.Clone(n.subscribers)
	n.mu.RUnlock()

	var failures []error

	for position, subscriber := range subscribers {
		if err := subscriber.Update(message); err != nil {
			n.logDeliveryFailed(ctx, position, subscriber, err)
			failures = append(failures, fmt.Errorf("observer %d (%v): %w", position, subscriber, err))
		}
	}

	n.logNotified(ctx, len(subscribers), len(failures))

	if len(failures) > 0 {
		return errors.Join(append([]error{ErrDeliveryFailed}, failures...)...)
	}

	return nil
}

func (n *Notifier) logDeliveryFailed(ctx context.Context, position int, subscriber Observer, err error) {
	args := []any{
		logAttrPosition, position,
		logAttrObserver, fmt.Sprintf("%v", subscriber),
		logAttrError, err.Error(),
	}

	if n.contextualLogger != nil {
		n.contextualLogger.ErrorContext(ctx, logMsgDeliveryFailed, args...)
	} else if n.logger != nil {
		n.logger.Error(logMsgDeliveryFailed, args...)
	}
}

func (n *Notifier) logNotified(ctx context.Context, subscribers int, failures int) {
	args := []any{
		logAttrSubscribers, subscribers,
		logAttrFailures, failures,
	}

	if n.contextualLogger != nil {
		n.contextualLogger.DebugContext(ctx, logMsgNotified, args...)
	} else if n.logger != nil {
		n.logger.Debug(logMsgNotified, args...)
	}
}
