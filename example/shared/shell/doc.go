// Package shell contains the imperative shell shared by all feature slices:
// command and query contracts, handler results, event envelopes, and the
// observability helpers used by handlers and the observable wrappers.
//
// The pure business decisions live in the core package, shell code only
// orchestrates catalog access, broadcasting and instrumentation around them.
package shell
