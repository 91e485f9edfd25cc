package tidepool

import "time"

// Vector is a dense embedding.
type Vector = []float32

// Attributes holds free-form, JSON-compatible metadata attached to a
// document. Values may be nil, bool, string, numbers, nested []any or
// map[string]any. Semantic legality of the keys is decided server-side.
type Attributes = map[string]any

// DistanceMetric selects the similarity function used by the index.
type DistanceMetric string

const (
	DistanceCosine     DistanceMetric = "cosine_distance"
	DistanceEuclidean  DistanceMetric = "euclidean_squared"
	DistanceDotProduct DistanceMetric = "dot_product"
)

// QueryMode selects which search path the query service takes.
type QueryMode string

const (
	// ModeVector is a pure nearest-neighbor search over the vector index.
	ModeVector QueryMode = "vector"

	// ModeText is a pure BM25 full-text search over indexed document text.
	ModeText QueryMode = "text"

	// ModeHybrid combines vector and text relevance into a single ranking.
	ModeHybrid QueryMode = "hybrid"
)

// FusionMode selects how hybrid rankings are combined.
type FusionMode string

const (
	// FusionBlend blends raw scores weighted by alpha.
	FusionBlend FusionMode = "blend"

	// FusionRRF applies reciprocal-rank fusion over the two ranked lists.
	FusionRRF FusionMode = "rrf"
)

// Document is a single vector record for upsert.
type Document struct {
	// ID uniquely identifies the document within its namespace.
	ID string `json:"id"`

	// Vector is the dense embedding. Its length must match the namespace's
	// established dimensionality; that check is enforced server-side.
	Vector Vector `json:"vector"`

	// Text, when set, is indexed for BM25 full-text search.
	Text string `json:"text,omitempty"`

	// Attributes is optional metadata stored with the document.
	Attributes Attributes `json:"attributes,omitempty"`
}

// VectorResult is a single query hit. Score orientation is metric-dependent
// and passed through exactly as the server returned it.
type VectorResult struct {
	ID         string     `json:"id"`
	Score      float64    `json:"score"`
	Vector     Vector     `json:"vector,omitempty"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// QueryResponse is the result of a single query, in server rank order.
type QueryResponse struct {
	// Results are returned in the order the server ranked them.
	Results []VectorResult `json:"results"`

	// Namespace is the namespace that was actually queried.
	Namespace string `json:"namespace"`
}

// NamespaceInfo describes a namespace as seen by the query service.
type NamespaceInfo struct {
	Namespace         string `json:"namespace"`
	ApproxCount       int64  `json:"approx_count"`
	Dimensions        int    `json:"dimensions"`
	PendingCompaction *bool  `json:"pending_compaction,omitempty"`
}

// NamespaceStatus reports ingest-side state for one namespace.
type NamespaceStatus struct {
	LastRun    *time.Time `json:"last_run,omitempty"`
	WALFiles   int64      `json:"wal_files"`
	WALEntries int64      `json:"wal_entries"`
	Segments   int64      `json:"segments"`
	TotalVecs  int64      `json:"total_vecs"`
	Dimensions int        `json:"dimensions"`
}

// IngestStatus reports ingest-service-wide state. It carries the same fields
// as NamespaceStatus but is not scoped to a namespace.
type IngestStatus struct {
	LastRun    *time.Time `json:"last_run,omitempty"`
	WALFiles   int64      `json:"wal_files"`
	WALEntries int64      `json:"wal_entries"`
	Segments   int64      `json:"segments"`
	TotalVecs  int64      `json:"total_vecs"`
	Dimensions int        `json:"dimensions"`
}

// Health is the decoded body of a service /health endpoint.
type Health struct {
	Status string `json:"status"`

	// Extra captures any additional fields the service reports.
	Extra map[string]any `json:"-"`
}

// Service names accepted by Health().
const (
	ServiceQuery  = "query"
	ServiceIngest = "ingest"
)
