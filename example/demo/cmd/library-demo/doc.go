// Package main runs the library walkthrough: it imports book data, creates users, broadcasts a message,
// exercises the facade and finally prints the catalog.
//
// Usage:
//
//	go run ./example/demo/cmd/library-demo [-json-file books.json] [-csv-file books.csv] [-yaml-file books.yaml]
//	go run ./example/demo/cmd/library-demo -observability-enabled -log-level debug -log-format json
//
// Without data files the built-in sample data is imported.
package main
