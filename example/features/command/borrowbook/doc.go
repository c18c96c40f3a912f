// Package borrowbook implements the Borrow Book from Catalog use case.
//
// A title that is in the catalog is removed (the first copy only) and the subscribers are
// notified. A title that is not in the catalog leaves the catalog unchanged, nobody is notified,
// and the handler reports the book as unavailable in its result. That outcome is not an error.
//
// The availability check and the removal happen atomically on the catalog, so two concurrent
// requests for the last copy never both succeed.
package borrowbook
