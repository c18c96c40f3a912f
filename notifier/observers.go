package notifier

import (
	"fmt"
	"io"
)

// WriterObserver prints every message it receives, addressed to its owner, to a writer.
type WriterObserver struct {
	name string
	out  io.Writer
}

// NewWriterObserver creates a WriterObserver for the named person.
func NewWriterObserver(name string, out io.Writer) *WriterObserver {
	return &WriterObserver{name: name, out: out}
}

// Update writes "Notification for NAME: MESSAGE" as one line.
func (o *WriterObserver) Update(message string) error {
	_, err := fmt.Fprintf(o.out, "Notification for %s: %s\n", o.name, message)

	return err
}

// Name returns the name of the person being notified.
func (o *WriterObserver) Name() string {
	return o.name
}

// String returns the name, used when reporting delivery failures.
func (o *WriterObserver) String() string {
	return o.name
}

// FuncObserver adapts a function to the Observer interface.
// It is a pointer type so that each instance has its own identity for Unsubscribe.
type FuncObserver struct {
	fn func(message string) error
}

// NewFuncObserver creates a FuncObserver.
func NewFuncObserver(fn func(message string) error) *FuncObserver {
	return &FuncObserver{fn: fn}
}

// Update calls the wrapped function.
func (o *FuncObserver) Update(message string) error {
	return o.fn(message)
}
