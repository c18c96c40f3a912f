package bookdata

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonNull = []byte("null")

// JSONAdapter reads a JSON array of objects, e.g. [{"title": "Clean Code"}].
type JSONAdapter struct {
	api jsoniter.API
}

// NewJSONAdapter creates a JSONAdapter.
func NewJSONAdapter() JSONAdapter {
	return JSONAdapter{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// Format returns FormatJSON.
func (a JSONAdapter) Format() string {
	return FormatJSON
}

// AdaptData parses raw into records. Non-string values are rendered as compact JSON text.
// Null fields are left out of the record, a null title is ErrParse.
func (a JSONAdapter) AdaptData(raw string) (Records, error) {
	api := a.api
	if api == nil {
		api = jsoniter.ConfigCompatibleWithStandardLibrary
	}

	var items []map[string]jsoniter.RawMessage
	if err := api.UnmarshalFromString(raw, &items); err != nil {
		return nil, parseError(FormatJSON, err)
	}

	if items == nil {
		return nil, parseError(FormatJSON, errors.New("document is not a list"))
	}

	records := make(Records, 0, len(items))

	for i, item := range items {
		if item == nil {
			return nil, parseError(FormatJSON, fmt.Errorf("item %d is not an object", i))
		}

		record := make(Record, len(item))

		for field, value := range item {
			if bytes.Equal(bytes.TrimSpace(value), jsonNull) {
				if field == TitleField {
					return nil, parseError(FormatJSON, fmt.Errorf("item %d has a null title", i))
				}

				continue
			}

			var text string
			if err := api.Unmarshal(value, &text); err != nil {
				text = string(value)
			}

			record[field] = text
		}

		records = append(records, record)
	}

	return records, nil
}
