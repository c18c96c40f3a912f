// Package addbook implements the Add Book to Catalog use case.
//
// Adding always succeeds: the title is appended to the catalog (duplicates are allowed,
// every call adds one more copy) and the subscribers are notified exactly once.
package addbook
