package bookdata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// YAMLAdapter reads a YAML sequence of mappings, e.g. "- title: Clean Code".
type YAMLAdapter struct{}

// NewYAMLAdapter creates a YAMLAdapter.
func NewYAMLAdapter() YAMLAdapter {
	return YAMLAdapter{}
}

// Format returns FormatYAML.
func (YAMLAdapter) Format() string {
	return FormatYAML
}

// AdaptData parses raw into records. Scalar values keep their source text, so 1984 stays "1984".
// The input must hold exactly one document. Null fields are left out of the record, a null title is ErrParse.
func (YAMLAdapter) AdaptData(raw string) (Records, error) {
	decoder := yaml.NewDecoder(strings.NewReader(raw))

	var document yaml.Node
	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError(FormatYAML, errors.New("document is empty"))
		}

		return nil, parseError(FormatYAML, err)
	}

	var next yaml.Node
	if err := decoder.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, parseError(FormatYAML, err)
		}

		return nil, parseError(FormatYAML, errors.New("input holds more than one document"))
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) != 1 {
		return nil, parseError(FormatYAML, errors.New("document is empty"))
	}

	list := document.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, parseError(FormatYAML, errors.New("document is not a list"))
	}

	records := make(Records, 0, len(list.Content))

	for i, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, parseError(FormatYAML, fmt.Errorf("item %d is not a mapping", i))
		}

		record := make(Record, len(item.Content)/2)

		for j := 0; j+1 < len(item.Content); j += 2 {
			key, value := item.Content[j], item.Content[j+1]
			if value.Kind != yaml.ScalarNode {
				return nil, parseError(FormatYAML, fmt.Errorf("item %d field %q is not a scalar", i, key.Value))
			}

			if value.ShortTag() == nullTag {
				if key.Value == TitleField {
					return nil, parseError(FormatYAML, fmt.Errorf("item %d has a null title", i))
				}

				continue
			}

			record[key.Value] = value.Value
		}

		records = append(records, record)
	}

	return records, nil
}
