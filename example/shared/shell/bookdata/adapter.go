package bookdata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when raw book data is malformed for the chosen encoding.
var ErrParse = errors.New("parsing book data failed")

// ErrUnsupportedFormat is returned by AdapterFor for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported book data format")

// TitleField is the field name every record is expected to carry.
const TitleField = "title"

// Record is one book entry, mapping field names to their text values.
type Record map[string]string

// Records is an ordered list of Record.
type Records = []Record

// Title returns the value of the title field and whether it is present.
func (r Record) Title() (string, bool) {
	title, ok := r[TitleField]
	return title, ok
}

// BookDataAdapter converts raw text in one specific encoding into records, preserving source order.
type BookDataAdapter interface {
	AdaptData(raw string) (Records, error)
	Format() string
}

// Supported format names.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// AdapterFor returns the adapter for a format name (case-insensitive).
func AdapterFor(format string) (BookDataAdapter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return NewJSONAdapter(), nil
	case FormatYAML, "yml":
		return NewYAMLAdapter(), nil
	case FormatCSV:
		return NewCSVAdapter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Titles extracts the title of every record, in order, and reports the index of the first record without one.
func Titles(records Records) ([]string, int) {
	titles := make([]string, 0, len(records))

	for i, record := range records {
		title, ok := record.Title()
		if !ok {
			return nil, i
		}

		titles = append(titles, title)
	}

	return titles, -1
}

func parseError(format string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrParse, format, cause)
}
