package catalog

import (
	"iter"
)

// BookIterator walks a snapshot of book titles forward, exactly once.
// It is not restartable: create a new BookIterator to iterate again.
type BookIterator struct {
	books    BookTitles
	position int
}

// NewBookIterator creates a BookIterator over the given snapshot.
// The snapshot is not copied, callers should pass Catalog.Books() which already is a copy.
func NewBookIterator(books BookTitles) *BookIterator {
	return &BookIterator{books: books}
}

// Next returns the next title and true, or the zero value and false once the snapshot is exhausted.
// After the first false every further call returns false as well.
func (it *BookIterator) Next() (BookTitle, bool) {
	if it.position >= len(it.books) {
		return "", false
	}

	book := it.books[it.position]
	it.position++

	return book, true
}

// Remaining returns how many titles have not been consumed yet.
func (it *BookIterator) Remaining() int {
	return len(it.books) - it.position
}

// All returns a range-over-func sequence that drains the iterator.
// Breaking out of the loop leaves the remaining titles for later calls to Next or All.
func (it *BookIterator) All() iter.Seq[BookTitle] {
	return func(yield func(BookTitle) bool) {
		for {
			book, ok := it.Next()
			if !ok {
				return
			}

			if !yield(book) {
				return
			}
		}
	}
}
