// Package returnbook implements the Return Book to Catalog use case.
//
// Returning appends the title to the catalog and notifies the subscribers.
// It is not checked whether the user actually borrowed the book, so returning a title
// that was never borrowed adds a new copy.
package returnbook
