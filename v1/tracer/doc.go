// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// It offers a simplified interface for creating and managing trace spans,
// recording errors, and propagating trace context across service boundaries,
// with OTLP HTTP export when enabled. The package also ships a span-emitting
// implementation of observability.Observer, so every tidepool client
// operation can be recorded as a client-kind span without the client knowing
// about OpenTelemetry.
//
// # Basic Usage
//
//	import (
//		"context"
//
//		"github.com/tidepool-db/tidepool-go/v1/logger"
//		"github.com/tidepool-db/tidepool-go/v1/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "my-service",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"namespace": "products",
//	})
//
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return nil, err
//	}
//
// # Tracing Client Operations
//
//	client, err := tidepool.NewClient(cfg)
//	if err != nil {
//		// handle error
//	}
//	client.WithObserver(tracer.NewObserver(tracerClient))
//
// # Distributed Tracing Across Services
//
//	// In the sending service
//	traceHeaders := tracerClient.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//		req.Header.Set(key, value)
//	}
//
//	// In the receiving service
//	ctx := tracerClient.SetCarrierOnContext(r.Context(), headers)
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		fx.Provide(tracer.NewConfig),
//		// ... other modules
//	)
//	app.Run()
//
// # Configuration
//
// The tracer can be configured via environment variables:
//
//	TRACER_SERVICE_NAME=my-service
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//
// The OTLP endpoint follows the standard OTEL_EXPORTER_OTLP_* variables.
//
// # Thread Safety
//
// All methods on the Tracer type are safe for concurrent use by multiple
// goroutines.
package tracer
