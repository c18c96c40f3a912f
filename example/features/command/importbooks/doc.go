// Package importbooks implements the Import Books use case: raw book data in one of the
// supported encodings is adapted into records and every title is appended to the catalog.
//
// Imports are all-or-nothing. The data is parsed and every record is checked for a title
// before the first title is appended. Imported titles are not broadcast to subscribers.
package importbooks
