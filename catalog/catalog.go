package catalog

import (
	"slices"
	"sync"
)

// Catalog is the ordered collection of book titles.
//
// All methods are safe for concurrent use. It must only be obtained through a
// Process (or Shared), never copied after first use. A composite literal bypasses
// the single-instance check of Process and yields an unrelated catalog.
type Catalog struct {
	mu    sync.RWMutex
	books BookTitles
}

func newCatalog() *Catalog {
	return &Catalog{
		books: make(BookTitles, 0),
	}
}

// Add appends the title to the end of the catalog.
func (c *Catalog) Add(title BookTitle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = append(c.books, title)
}

// Books returns a snapshot of the current titles in insertion order.
// Later mutations of the catalog are not visible in the returned slice.
func (c *Catalog) Books() BookTitles {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.books)
}

// Contains reports whether at least one copy of the title is in the catalog.
func (c *Catalog) Contains(title BookTitle) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Contains(c.books, title)
}

// TakeFirst removes the first copy of the title and reports whether one was found.
// The membership test and the removal happen under the same lock.
func (c *Catalog) TakeFirst(title BookTitle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.Index(c.books, title)
	if idx < 0 {
		return false
	}

	c.books = slices.Delete(c.books, idx, idx+1)

	return true
}

// Len returns the number of copies currently in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.books)
}
