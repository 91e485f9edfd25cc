package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// Observer is a Prometheus-backed implementation of observability.Observer.
// It records a counter and a latency histogram per client operation, plus a
// payload size histogram for operations that report one.
type Observer struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationSize     *prometheus.HistogramVec
}

// NewObserver creates an Observer and registers its collectors on the given
// Metrics instance.
func NewObserver(m *Metrics) *Observer {
	return &Observer{
		operationsTotal: m.CreateCounter(
			"client_operations_total",
			"Total number of client operations by outcome",
			[]string{"component", "operation", "status"},
		),
		operationDuration: m.CreateHistogram(
			"client_operation_duration_seconds",
			"Duration of client operations in seconds",
			[]string{"component", "operation"},
			prometheus.DefBuckets,
		),
		operationSize: m.CreateHistogram(
			"client_operation_size",
			"Operation-defined payload size (documents written, results returned)",
			[]string{"component", "operation"},
			prometheus.ExponentialBuckets(1, 4, 10),
		),
	}
}

// ObserveOperation records one client operation.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	o.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.operationSize.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}
}
