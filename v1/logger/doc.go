// Package logger provides structured logging for the tidepool client modules.
//
// It wraps Uber's Zap logger behind a small message/error/fields API so that
// client packages can log without depending on Zap directly. Output is JSON
// on stderr with ISO8601 timestamps, and every entry carries the process id
// and configured service name as constant fields.
//
// # Direct Usage
//
//	import "github.com/tidepool-db/tidepool-go/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	log.Info("user logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
//	log.Error("upsert failed", err, map[string]interface{}{
//		"namespace": "products",
//	})
//
// # FX Module Integration
//
// For applications using Uber's fx, FXModule provides the logger and flushes
// buffered entries on shutdown:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfig),
//		// ... other modules
//	)
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_SERVICE_NAME=my-service  # Service name added to every entry
//
// # Thread Safety
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
