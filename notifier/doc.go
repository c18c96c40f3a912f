// Package notifier broadcasts text messages to subscribed observers.
//
// Observers are notified synchronously, in subscription order. The notifier
// does not own its observers: the same observer may be subscribed to several
// notifiers, and may even be subscribed to the same notifier more than once, in
// which case it receives every message once per subscription.
//
// Delivery failures are isolated. When an observer returns an error, the
// remaining observers are still notified; Notify then returns all failures
// joined with ErrDeliveryFailed.
package notifier
