// Package bookdata converts raw book data in different text encodings into a
// uniform list of records, so the rest of the library only deals with titles.
//
// Every encoding has its own adapter behind the BookDataAdapter interface:
//   - JSONAdapter reads a JSON array of objects
//   - YAMLAdapter reads a YAML sequence of mappings
//   - CSVAdapter reads comma-separated text whose first line is the header
//
// All adapters report malformed input with an error wrapping ErrParse.
package bookdata
