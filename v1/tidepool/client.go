package tidepool

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// Logger defines the logging surface the client accepts. The v1/logger
// package satisfies it; any implementation with the same shape works.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// UpsertRequest describes a batch write.
type UpsertRequest struct {
	// Namespace optionally overrides the client's default namespace.
	Namespace string

	// Documents is the batch to write. Must be non-empty.
	Documents []Document

	// DistanceMetric establishes the namespace metric on first write.
	// Optional; omitted from the payload when unset.
	DistanceMetric DistanceMetric
}

// Client is the synchronous façade over the query and ingest services.
//
// Every method runs to completion on the caller's goroutine: resolve the
// namespace, build and validate the payload, perform exactly one HTTP round
// trip, and decode the response into a typed model or a typed error. The
// client holds no cross-call state, so concurrent use from multiple
// goroutines is safe.
type Client struct {
	cfg      *Config
	query    endpoint
	ingest   endpoint
	owned    *http.Client
	logger   Logger
	observer observability.Observer
}

// NewClient constructs a Client from Config. It validates the config and
// sets up one HTTP transport shared by both service endpoints.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		cfg:    cfg,
		query:  newEndpoint(cfg.QueryURL, httpClient),
		ingest: newEndpoint(cfg.IngestURL, httpClient),
		owned:  httpClient,
	}, nil
}

// NewClientWithTransport constructs a Client over a caller-supplied
// transport. The caller keeps ownership of the transport; Close becomes a
// no-op. Intended for tests and for callers with instrumented transports.
func NewClientWithTransport(cfg *Config, doer Doer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:    cfg,
		query:  newEndpoint(cfg.QueryURL, doer),
		ingest: newEndpoint(cfg.IngestURL, doer),
	}, nil
}

// WithLogger attaches a logger. Returns the same instance for chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithObserver attaches an observer that is notified of every operation.
// Returns the same instance for chaining.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// Close releases idle transport connections. Safe to call once at end of
// lifetime; a no-op when the transport was caller-supplied.
func (c *Client) Close() error {
	if c.owned != nil {
		c.owned.CloseIdleConnections()
	}
	return nil
}

func (c *Client) resolve(explicit string) (string, error) {
	return resolveNamespace(explicit, c.cfg.DefaultNamespace)
}

func nsPath(pattern, namespace string) string {
	return fmt.Sprintf(pattern, url.PathEscape(namespace))
}

// Upsert writes a batch of documents into a namespace. All validation is
// local and happens before the network call.
func (c *Client) Upsert(ctx context.Context, req UpsertRequest) error {
	start := time.Now()
	namespace, err := c.doUpsert(ctx, req)
	c.observeOperation("upsert", namespace, "", time.Since(start), err, int64(len(req.Documents)), nil)
	return err
}

func (c *Client) doUpsert(ctx context.Context, req UpsertRequest) (string, error) {
	payload, err := buildUpsertPayload(req.Documents, req.DistanceMetric)
	if err != nil {
		return "", err
	}
	namespace, err := c.resolve(req.Namespace)
	if err != nil {
		return "", err
	}
	_, err = c.ingest.requestJSON(ctx, http.MethodPost, nsPath("/v1/vectors/%s", namespace), payload)
	return namespace, err
}

// Query runs a single search and returns results in server rank order.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	start := time.Now()
	resp, namespace, err := c.doQuery(ctx, req)
	size := int64(0)
	if resp != nil {
		size = int64(len(resp.Results))
	}
	c.observeOperation("query", namespace, "", time.Since(start), err, size, nil)
	return resp, err
}

func (c *Client) doQuery(ctx context.Context, req QueryRequest) (*QueryResponse, string, error) {
	payload, err := buildQueryPayload(req)
	if err != nil {
		return nil, "", err
	}
	namespace, err := c.resolve(req.Namespace)
	if err != nil {
		return nil, "", err
	}
	body, err := c.query.requestJSON(ctx, http.MethodPost, nsPath("/v1/vectors/%s", namespace), payload)
	if err != nil {
		return nil, namespace, err
	}
	resp, err := parseQueryResponse(body, namespace)
	return resp, namespace, err
}

// QueryBatch runs several queries concurrently with bounded parallelism and
// returns one response per request, in request order.
func (c *Client) QueryBatch(ctx context.Context, reqs ...QueryRequest) ([]*QueryResponse, error) {
	if len(reqs) == 0 {
		return nil, validationError("at least one query request is required")
	}
	return queryBatch(ctx, c, reqs)
}

// Delete removes documents by id from a namespace. An empty namespace falls
// back to the configured default.
func (c *Client) Delete(ctx context.Context, namespace string, ids []string) error {
	start := time.Now()
	resolved, err := c.doDelete(ctx, namespace, ids)
	c.observeOperation("delete", resolved, "", time.Since(start), err, int64(len(ids)), nil)
	return err
}

func (c *Client) doDelete(ctx context.Context, namespace string, ids []string) (string, error) {
	payload, err := buildDeletePayload(ids)
	if err != nil {
		return "", err
	}
	resolved, err := c.resolve(namespace)
	if err != nil {
		return "", err
	}
	_, err = c.ingest.requestJSON(ctx, http.MethodDelete, nsPath("/v1/vectors/%s", resolved), payload)
	return resolved, err
}

// GetNamespace fetches query-side metadata for one namespace.
func (c *Client) GetNamespace(ctx context.Context, namespace string) (*NamespaceInfo, error) {
	start := time.Now()
	info, resolved, err := c.doGetNamespace(ctx, namespace)
	c.observeOperation("get_namespace", resolved, "", time.Since(start), err, 0, nil)
	return info, err
}

func (c *Client) doGetNamespace(ctx context.Context, namespace string) (*NamespaceInfo, string, error) {
	resolved, err := c.resolve(namespace)
	if err != nil {
		return nil, "", err
	}
	body, err := c.query.requestJSON(ctx, http.MethodGet, nsPath("/v1/namespaces/%s", resolved), nil)
	if err != nil {
		return nil, resolved, err
	}
	info, err := parseNamespaceInfo(body)
	return info, resolved, err
}

// GetNamespaceStatus fetches ingest-side status for one namespace.
func (c *Client) GetNamespaceStatus(ctx context.Context, namespace string) (*NamespaceStatus, error) {
	start := time.Now()
	status, resolved, err := c.doGetNamespaceStatus(ctx, namespace)
	c.observeOperation("get_namespace_status", resolved, "", time.Since(start), err, 0, nil)
	return status, err
}

func (c *Client) doGetNamespaceStatus(ctx context.Context, namespace string) (*NamespaceStatus, string, error) {
	resolved, err := c.resolve(namespace)
	if err != nil {
		return nil, "", err
	}
	body, err := c.ingest.requestJSON(ctx, http.MethodGet, nsPath("/v1/namespaces/%s/status", resolved), nil)
	if err != nil {
		return nil, resolved, err
	}
	status, err := parseNamespaceStatus(body)
	return status, resolved, err
}

// ListNamespaces returns every namespace visible to the caller. Server-side
// allow-lists simply shrink the listing; the client does no filtering.
func (c *Client) ListNamespaces(ctx context.Context) ([]NamespaceInfo, error) {
	start := time.Now()
	infos, err := c.doListNamespaces(ctx)
	c.observeOperation("list_namespaces", "", "", time.Since(start), err, int64(len(infos)), nil)
	return infos, err
}

func (c *Client) doListNamespaces(ctx context.Context) ([]NamespaceInfo, error) {
	body, err := c.query.requestJSON(ctx, http.MethodGet, "/v1/namespaces", nil)
	if err != nil {
		return nil, err
	}
	return parseNamespaces(body)
}

// Status reports ingest-service-wide state. Not namespace-scoped.
func (c *Client) Status(ctx context.Context) (*IngestStatus, error) {
	start := time.Now()
	status, err := c.doStatus(ctx)
	c.observeOperation("status", "", "", time.Since(start), err, 0, nil)
	return status, err
}

func (c *Client) doStatus(ctx context.Context) (*IngestStatus, error) {
	body, err := c.ingest.requestJSON(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return nil, err
	}
	return parseIngestStatus(body)
}

// Health probes one of the two services. An unhealthy status in a 2xx body
// is reported as a service error.
func (c *Client) Health(ctx context.Context, service string) (*Health, error) {
	start := time.Now()
	health, err := c.doHealth(ctx, service)
	c.observeOperation("health", "", service, time.Since(start), err, 0, nil)
	return health, err
}

func (c *Client) doHealth(ctx context.Context, service string) (*Health, error) {
	var ep endpoint
	switch service {
	case ServiceQuery:
		ep = c.query
	case ServiceIngest:
		ep = c.ingest
	default:
		return nil, validationError("service must be %q or %q", ServiceQuery, ServiceIngest)
	}
	body, err := ep.requestJSON(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	return parseHealth(body)
}

// Compact triggers a server-side compaction run for a namespace and returns
// once the trigger is accepted; the run itself proceeds asynchronously on
// the server.
func (c *Client) Compact(ctx context.Context, namespace string) error {
	start := time.Now()
	resolved, err := c.doCompact(ctx, namespace)
	c.observeOperation("compact", resolved, "", time.Since(start), err, 0, nil)
	return err
}

func (c *Client) doCompact(ctx context.Context, namespace string) (string, error) {
	resolved, err := c.resolve(namespace)
	if err != nil {
		return "", err
	}
	_, err = c.ingest.requestJSON(ctx, http.MethodPost, nsPath("/v1/namespaces/%s/compact", resolved), nil)
	return resolved, err
}
