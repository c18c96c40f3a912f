// Package listbooks implements the List Books query: it returns a BookIterator over a
// snapshot of the catalog taken when the query is handled. Later catalog changes are
// not visible through an iterator that was already returned.
package listbooks
