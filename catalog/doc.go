// Package catalog provides the process-wide book catalog of the library:
// an ordered, in-memory collection of book titles.
//
// A book is identified by its title only. Two copies with the same title are
// indistinguishable, both are kept, and removal always takes the first match.
// Insertion order is preserved.
//
// The catalog is a single logical instance per process. Instead of a hidden
// global, the instance lives in an explicit Process value which constructs it
// lazily on first access and hands out the same instance afterward:
//
//	process := catalog.NewProcess()
//	books := process.Catalog()
//	books.Add("Clean Code")
//
//	same := process.Catalog() // same == books
//
// Trying to construct a second instance directly via Process.NewCatalog fails
// with ErrIllegalState. Tests create their own Process to stay isolated, while
// binaries can use Shared(), which is backed by a package-level Process.
//
// Reading the catalog is done with a BookIterator over a snapshot:
//
//	it := catalog.NewBookIterator(books.Books())
//	for title, ok := it.Next(); ok; title, ok = it.Next() {
//		fmt.Println(title)
//	}
//
// The observability interfaces in this package (Logger, ContextualLogger,
// MetricsCollector, TracingCollector) are dependency-free so that any backend
// can be plugged in; the oteladapters sub-package provides OpenTelemetry
// implementations.
package catalog
