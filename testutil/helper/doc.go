// Package helper provides test doubles shared by the tests of the library:
// spies for the catalog observability interfaces, a slog.Handler spy and an
// observer spy which records every notification it receives.
package helper
