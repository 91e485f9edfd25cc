// Package metrics provides Prometheus-based monitoring for the tidepool
// client modules.
//
// It maintains an isolated Prometheus registry per Metrics instance, serves
// it over a /metrics HTTP endpoint, and applies a constant "service" label to
// every metric. The package also ships a Prometheus-backed implementation of
// observability.Observer, so client operations are counted and timed without
// the clients knowing anything about Prometheus.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "tidepool-client",
//		EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	client, err := tidepool.NewClient(cfg)
//	if err != nil {
//		// handle error
//	}
//	client.WithObserver(metrics.NewObserver(m))
//
// # Custom Metrics
//
// Application-specific metrics register through the factory methods:
//
//	ingested := m.CreateCounter("documents_ingested_total",
//		"Documents written to the store", []string{"namespace"})
//	ingested.WithLabelValues("products").Add(42)
//
// # FX Module Integration
//
//	app := fx.New(
//		metrics.FXModule,
//		fx.Provide(metrics.NewConfig),
//		// ... other modules
//	)
//
// The module provides *Metrics, binds NewObserver to observability.Observer,
// and manages the HTTP server lifecycle.
//
// # Configuration
//
// The metrics server can be configured via environment variables:
//
//	METRICS_ADDRESS=:9090
//	METRICS_SERVICE_NAME=tidepool-client
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//
// # Thread Safety
//
// All metric operations are safe for concurrent use by multiple goroutines.
package metrics
