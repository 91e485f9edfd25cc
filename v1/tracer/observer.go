package tracer

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// Observer is a span-emitting implementation of observability.Observer.
// Every observed client operation becomes a client-kind span named
// "<component>.<operation>", backdated to the operation's start time so that
// span durations match the measured wall-clock time.
type Observer struct {
	tracer *Tracer
}

// NewObserver creates an Observer emitting spans through the given Tracer.
func NewObserver(t *Tracer) *Observer {
	return &Observer{tracer: t}
}

// ObserveOperation records one completed client operation as a span.
func (o *Observer) ObserveOperation(op observability.OperationContext) {
	end := time.Now()
	start := end.Add(-op.Duration)

	_, span := o.tracer.tracer.Tracer("").Start(context.Background(),
		op.Component+"."+op.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
	)

	attrs := map[string]interface{}{
		"component": op.Component,
		"operation": op.Operation,
	}
	if op.Resource != "" {
		attrs["resource"] = op.Resource
	}
	if op.SubResource != "" {
		attrs["sub_resource"] = op.SubResource
	}
	if op.Size > 0 {
		attrs["size"] = op.Size
	}
	for k, v := range op.Metadata {
		attrs[k] = v
	}
	o.tracer.SetAttributes(span, attrs)

	if op.Error != nil {
		o.tracer.RecordErrorOnSpan(span, op.Error)
	}

	span.End(traceSpan.WithTimestamp(end))
}
