// Package observability defines the shared observation contract used by the
// client packages in this repository.
//
// Instrumented clients report every operation they perform through the
// Observer interface. Concrete observers live elsewhere:
//
//   - v1/metrics exposes a Prometheus-backed Observer
//   - v1/tracer exposes a span-per-operation Observer
//
// Multiple observers can be combined by fanning out in a small wrapper, or a
// single observer can be attached directly via a client's WithObserver method.
package observability
