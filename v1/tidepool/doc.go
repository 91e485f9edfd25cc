// Package tidepool provides typed Go clients for the Tidepool vector
// datastore, a namespaced vector-search system split into two HTTP services:
// a query service (similarity and full-text search, namespace inspection)
// and an ingest service (upsert, delete, compaction, write-side status).
//
// # Overview
//
// The package exposes two façades over the same request-construction and
// response-mapping core:
//
//   - Client — synchronous; every method blocks for the round trip
//   - AsyncClient — identical method set; each method returns a typed
//     handle immediately and performs the round trip on its own goroutine
//
// Both are constructed from the same Config:
//
//	cfg := tidepool.DefaultConfig().
//	    WithQueryURL("http://localhost:8080").
//	    WithIngestURL("http://localhost:8081").
//	    WithDefaultNamespace("docs")
//
//	client, err := tidepool.NewClient(cfg)
//
// # Namespaces
//
// Most operations are scoped to exactly one namespace. The effective
// namespace for a call is resolved as: explicit argument, then the
// configured default, and a configuration error when neither is present.
// ListNamespaces, Status and Health are namespace-independent.
//
// # Querying
//
// A query is described by a QueryRequest. Three modes exist: pure vector
// search, pure BM25 text search, and hybrid. When Mode is unset it is
// inferred from the supplied inputs (text only -> text, vector and text ->
// hybrid, otherwise vector). Hybrid ranking is combined either by score
// blending (Alpha in [0,1]) or by reciprocal-rank fusion (Fusion: "rrf",
// optional RRFK damping constant); the two strategies are mutually
// exclusive and requesting both fails before any network call.
//
//	resp, err := client.Query(ctx, tidepool.QueryRequest{
//	    Vector: embed("blue shoes"),
//	    Text:   "blue shoes",
//	    TopK:   10,
//	})
//
// Unset optional parameters are omitted from the wire payload entirely so
// server-side defaults apply uniformly. Result order is the server's rank
// order and scores are passed through unmodified; their orientation is
// metric-defined.
//
// # Errors
//
// Every failure is typed. Local precondition failures surface before any
// network call as ErrValidation or ErrConfiguration; server-signaled
// failures map by status code (ErrNotFound, ErrAuthorization, ErrConflict,
// ErrValidation for 400, ErrService for 5xx) carrying the server's message
// verbatim; network-level failures are ErrTransport. Branch with errors.Is
// or the Is* helpers, and read the HTTP status with StatusCode(err).
//
// The client never retries, never caches, and holds no state between calls.
//
// # Observability
//
// An Observer (see v1/observability) can be attached with WithObserver to
// receive one observation per operation; v1/metrics and v1/tracer provide
// Prometheus- and OpenTelemetry-backed implementations. A structured logger
// can be attached with WithLogger.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	app := fx.New(
//	    tidepool.FXModule,
//	    fx.Provide(tidepool.NewConfig),
//	    fx.Invoke(func(c *tidepool.Client) {
//	        // use the client
//	    }),
//	)
//
// which supplies *Client and *AsyncClient from the provided *Config, picks
// up an optional logger and observer from the container, and registers a
// lifecycle hook that closes the transport on shutdown.
package tidepool
