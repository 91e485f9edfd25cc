package observability

import "time"

// OperationContext carries everything an observer needs to record a single
// client operation: what ran, against which resource, how long it took, and
// whether it failed.
type OperationContext struct {
	// Component identifies the package emitting the observation (e.g. "tidepool").
	Component string

	// Operation is the logical operation name (e.g. "query", "upsert").
	Operation string

	// Resource is the primary resource the operation acted on (e.g. namespace).
	Resource string

	// SubResource carries additional addressing context (e.g. service name).
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is the operation error, nil on success.
	Error error

	// Size is an operation-defined payload size (e.g. documents upserted,
	// results returned). Zero when not meaningful.
	Size int64

	// Metadata holds free-form extra attributes.
	Metadata map[string]interface{}
}

// Observer receives operation observations from instrumented clients.
// Implementations must be safe for concurrent use; clients may report
// operations from multiple goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// NoopObserver discards all observations. Useful as a default.
type NoopObserver struct{}

func (NoopObserver) ObserveOperation(OperationContext) {}
