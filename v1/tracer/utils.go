package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// RecordErrorOnSpan records an error on a span and sets its status to error.
// This marks the span as a failed operation for error tracing and monitoring.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "fetch-documents")
//	defer span.End()
//
//	data, err := fetchDocuments(ctx, namespace)
//	if err != nil {
//	    tracer.RecordErrorOnSpan(span, err)
//	    return nil, err
//	}
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new span with the given name and returns an updated
// context containing the span, along with the span itself.
//
// The created span becomes a child of any span that exists in the provided
// context. If no span exists in the context, a new root span is created.
// The returned span must be ended when the operation completes.
//
// Example:
//
//	func processRequest(ctx context.Context, req Request) (Response, error) {
//	    ctx, span := tracer.StartSpan(ctx, "process-request")
//	    defer span.End()
//
//	    result, err := performWork(ctx, req)
//	    if err != nil {
//	        tracer.RecordErrorOnSpan(span, err)
//	        return Response{}, err
//	    }
//
//	    return result, nil
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// SetAttributes adds one or more attributes to a span with support for
// different data types. Values can be strings, ints, int64s, float64s, or
// booleans. Other types are converted to strings using fmt.Sprint.
//
// Example:
//
//	tracer.SetAttributes(span, map[string]interface{}{
//	    "namespace":  "products",
//	    "top_k":      10,
//	    "hybrid":     true,
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier extracts the current trace context from a context object and
// returns it as a map that can be transmitted across service boundaries.
// The returned map contains W3C Trace Context headers ("traceparent" and,
// if present, "tracestate").
//
// Example:
//
//	traceHeaders := tracer.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//	    req.Header.Set(key, value)
//	}
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext extracts trace information from a carrier map and
// injects it into a context. This is the complement to GetCarrier and is
// typically used when receiving requests or messages from other services
// that include trace headers.
//
// Example:
//
//	headers := make(map[string]string)
//	for key, values := range r.Header {
//	    if len(values) > 0 {
//	        headers[key] = values[0]
//	    }
//	}
//	ctx := tracer.SetCarrierOnContext(r.Context(), headers)
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
