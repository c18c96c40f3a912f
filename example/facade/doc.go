// Package facade provides Library, the single entry point of the example.
//
// A Library composes catalog mutation with notification: it owns exactly one Notifier and
// routes every operation through the matching feature slice handler, optionally wrapped with
// observability. Callers never touch the handlers, the notifier construction or the event
// envelopes directly.
//
//	lib, err := facade.New(catalog.Shared())
//	...
//	_ = lib.Subscribe(notifier.NewWriterObserver("Anna", os.Stdout))
//	_ = lib.AddBook(ctx, "Python for Beginners")
//	outcome, err := lib.BorrowBook(ctx, "Clean Code", anna)
//
// ReturnBook appends the title unconditionally. It does not check that the user borrowed
// the book before, so returning a title that was never borrowed adds a new copy.
package facade
