package tidepool

import (
	"context"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// Call is a handle for an in-flight asynchronous operation producing a T.
// Wait blocks until the round trip completes and returns exactly what the
// synchronous façade would have returned for the same call. Wait may be
// called any number of times; later calls return the memoized result.
type Call[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Wait blocks until the operation completes.
func (c *Call[T]) Wait() (T, error) {
	<-c.done
	return c.value, c.err
}

// Done returns a channel closed when the operation completes, for use in
// select statements alongside other events.
func (c *Call[T]) Done() <-chan struct{} { return c.done }

// AckCall is a handle for an in-flight operation that produces no payload.
type AckCall struct {
	done chan struct{}
	err  error
}

// Wait blocks until the operation completes.
func (c *AckCall) Wait() error {
	<-c.done
	return c.err
}

// Done returns a channel closed when the operation completes.
func (c *AckCall) Done() <-chan struct{} { return c.done }

func startCall[T any](fn func() (T, error)) *Call[T] {
	c := &Call[T]{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.value, c.err = fn()
	}()
	return c
}

func startAck(fn func() error) *AckCall {
	c := &AckCall{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.err = fn()
	}()
	return c
}

// AsyncClient is the asynchronous façade. It exposes the same method set as
// Client with identical semantics; the only difference is the concurrency
// contract: each method starts the round trip on its own goroutine and
// returns immediately with a typed handle, never blocking the caller during
// network I/O.
//
// Cancellation follows the context passed to each method: cancelling it
// aborts the in-flight request, and the handle's Wait surfaces the
// cancellation instead of swallowing it. No background work outlives a call.
type AsyncClient struct {
	sync *Client
}

// NewAsyncClient constructs an AsyncClient from Config.
func NewAsyncClient(cfg *Config) (*AsyncClient, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{sync: c}, nil
}

// NewAsyncClientWithTransport constructs an AsyncClient over a
// caller-supplied transport; see NewClientWithTransport.
func NewAsyncClientWithTransport(cfg *Config, doer Doer) (*AsyncClient, error) {
	c, err := NewClientWithTransport(cfg, doer)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{sync: c}, nil
}

// WithLogger attaches a logger. Returns the same instance for chaining.
func (a *AsyncClient) WithLogger(logger Logger) *AsyncClient {
	a.sync.WithLogger(logger)
	return a
}

// WithObserver attaches an observer. Returns the same instance for chaining.
func (a *AsyncClient) WithObserver(observer observability.Observer) *AsyncClient {
	a.sync.WithObserver(observer)
	return a
}

// Upsert writes a batch of documents into a namespace.
func (a *AsyncClient) Upsert(ctx context.Context, req UpsertRequest) *AckCall {
	return startAck(func() error { return a.sync.Upsert(ctx, req) })
}

// Query runs a single search.
func (a *AsyncClient) Query(ctx context.Context, req QueryRequest) *Call[*QueryResponse] {
	return startCall(func() (*QueryResponse, error) { return a.sync.Query(ctx, req) })
}

// QueryBatch runs several queries concurrently with bounded parallelism.
func (a *AsyncClient) QueryBatch(ctx context.Context, reqs ...QueryRequest) *Call[[]*QueryResponse] {
	return startCall(func() ([]*QueryResponse, error) { return a.sync.QueryBatch(ctx, reqs...) })
}

// Delete removes documents by id from a namespace.
func (a *AsyncClient) Delete(ctx context.Context, namespace string, ids []string) *AckCall {
	return startAck(func() error { return a.sync.Delete(ctx, namespace, ids) })
}

// GetNamespace fetches query-side metadata for one namespace.
func (a *AsyncClient) GetNamespace(ctx context.Context, namespace string) *Call[*NamespaceInfo] {
	return startCall(func() (*NamespaceInfo, error) { return a.sync.GetNamespace(ctx, namespace) })
}

// GetNamespaceStatus fetches ingest-side status for one namespace.
func (a *AsyncClient) GetNamespaceStatus(ctx context.Context, namespace string) *Call[*NamespaceStatus] {
	return startCall(func() (*NamespaceStatus, error) { return a.sync.GetNamespaceStatus(ctx, namespace) })
}

// ListNamespaces returns every namespace visible to the caller.
func (a *AsyncClient) ListNamespaces(ctx context.Context) *Call[[]NamespaceInfo] {
	return startCall(func() ([]NamespaceInfo, error) { return a.sync.ListNamespaces(ctx) })
}

// Status reports ingest-service-wide state.
func (a *AsyncClient) Status(ctx context.Context) *Call[*IngestStatus] {
	return startCall(func() (*IngestStatus, error) { return a.sync.Status(ctx) })
}

// Health probes one of the two services.
func (a *AsyncClient) Health(ctx context.Context, service string) *Call[*Health] {
	return startCall(func() (*Health, error) { return a.sync.Health(ctx, service) })
}

// Compact triggers a server-side compaction run for a namespace.
func (a *AsyncClient) Compact(ctx context.Context, namespace string) *AckCall {
	return startAck(func() error { return a.sync.Compact(ctx, namespace) })
}

// Close releases idle transport connections once all handles have completed.
func (a *AsyncClient) Close() error {
	return a.sync.Close()
}
