package catalog

import (
	"errors"
)

// ErrIllegalState is returned when a second catalog instance is constructed directly.
var ErrIllegalState = errors.New("catalog already constructed, use the accessor to obtain it")

// BookTitle is a type alias for string, representing a book in the catalog.
type BookTitle = string

// BookTitles is an alias type for a slice of BookTitle.
type BookTitles = []BookTitle
