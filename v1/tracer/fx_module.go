package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing for
// your application. This module registers the tracer client with the
// dependency injection system and sets up proper lifecycle management to
// ensure graceful shutdown of the tracer.
//
// The module:
//  1. Provides the tracer client through the NewClient constructor
//  2. Registers shutdown hooks to flush and release tracer resources on
//     application termination
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(tracer.NewConfig),
//	    // other modules...
//	)
//	app.Run()
//
// Dependencies required by this module:
// - A tracer.Config instance must be available in the dependency injection container
// - A tracer.Logger implementation for initialization and shutdown logs
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX
// lifecycle. The OnStop hook gracefully shuts down the tracer provider,
// flushing any pending spans to the exporter before the application
// terminates.
//
// This function is automatically invoked by the FXModule and normally doesn't
// need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer...", nil, nil)
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil, nil)
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
