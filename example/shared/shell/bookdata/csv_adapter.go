package bookdata

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const byteOrderMark = "\ufeff"

// CSVAdapter reads comma-separated text whose first line is the header row, e.g. "title\nClean Code".
// Each following line becomes one record keyed by the header fields.
type CSVAdapter struct {
	comma rune
}

// CSVOption configures a CSVAdapter.
type CSVOption func(*CSVAdapter)

// WithComma sets the field delimiter, the default is ','.
func WithComma(comma rune) CSVOption {
	return func(a *CSVAdapter) {
		a.comma = comma
	}
}

// NewCSVAdapter creates a CSVAdapter.
func NewCSVAdapter(opts ...CSVOption) CSVAdapter {
	adapter := CSVAdapter{comma: ','}

	for _, opt := range opts {
		opt(&adapter)
	}

	return adapter
}

// Format returns FormatCSV.
func (CSVAdapter) Format() string {
	return FormatCSV
}

// AdaptData parses raw into records.
// Rows with a different number of fields than the header are rejected with ErrParse.
// Empty input has no header and yields no records. A leading UTF-8 byte order mark is ignored.
func (a CSVAdapter) AdaptData(raw string) (Records, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(raw, byteOrderMark)))
	reader.Comma = a.comma
	reader.FieldsPerRecord = 0
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Records{}, nil
	}

	if err != nil {
		return nil, parseError(FormatCSV, err)
	}

	records := make(Records, 0)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, parseError(FormatCSV, err)
		}

		record := make(Record, len(header))
		for i, field := range header {
			record[field] = row[i]
		}

		records = append(records, record)
	}

	return records, nil
}
