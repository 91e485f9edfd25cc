package tidepool

import (
	"math"
)

// QueryRequest describes a single search. The zero value plus a Vector is a
// valid nearest-neighbor query with server-side defaults for everything else.
type QueryRequest struct {
	// Namespace optionally overrides the client's default namespace.
	Namespace string

	// Vector is the query embedding. Required for ModeVector and ModeHybrid.
	Vector Vector

	// Text is the full-text query. Required for ModeText and ModeHybrid.
	Text string

	// Mode selects the search path. When unset it is inferred: text-only
	// input implies ModeText, vector plus text implies ModeHybrid, and
	// vector-only input implies ModeVector.
	Mode QueryMode

	// TopK is the maximum number of results. Must be positive.
	TopK int

	// DistanceMetric overrides the metric for this query. Optional.
	DistanceMetric DistanceMetric

	// IncludeVectors requests the stored embeddings in each result.
	IncludeVectors bool

	// Filters restricts results by attribute predicates. Passed through as
	// given; the server decides semantic legality.
	Filters Attributes

	// EfSearch is an HNSW-style search breadth hint. Optional; whether it
	// applies depends on the namespace's index type, decided server-side.
	EfSearch int

	// NProbe is an IVF-style probe count hint. Optional, server-decided.
	NProbe int

	// Alpha is the blend weight between vector and text score for hybrid
	// score blending, in [0,1]. Mutually exclusive with Fusion=FusionRRF.
	Alpha *float64

	// Fusion selects reciprocal-rank fusion instead of score blending.
	Fusion FusionMode

	// RRFK is the RRF damping constant. Optional, only meaningful with
	// Fusion=FusionRRF.
	RRFK int
}

// queryPayload is the wire shape of a query. Unset optional fields are
// omitted entirely so server-side defaults apply uniformly.
type queryPayload struct {
	TopK           int            `json:"top_k"`
	IncludeVectors bool           `json:"include_vectors"`
	Mode           QueryMode      `json:"mode"`
	Vector         Vector         `json:"vector,omitempty"`
	Text           string         `json:"text,omitempty"`
	DistanceMetric DistanceMetric `json:"distance_metric,omitempty"`
	Filters        Attributes     `json:"filters,omitempty"`
	EfSearch       int            `json:"ef_search,omitempty"`
	NProbe         int            `json:"nprobe,omitempty"`
	Alpha          *float64       `json:"alpha,omitempty"`
	Fusion         FusionMode     `json:"fusion,omitempty"`
	RRFK           int            `json:"rrf_k,omitempty"`
}

// upsertPayload is the wire shape of an upsert batch.
type upsertPayload struct {
	Vectors        []Document     `json:"vectors"`
	DistanceMetric DistanceMetric `json:"distance_metric,omitempty"`
}

// deletePayload is the wire shape of a delete-by-ids call.
type deletePayload struct {
	IDs []string `json:"ids"`
}

// inferMode applies the mode defaulting rules: explicit mode wins, otherwise
// the combination of supplied inputs decides.
func inferMode(mode QueryMode, hasVector, hasText bool) (QueryMode, error) {
	switch mode {
	case "":
		if hasVector && hasText {
			return ModeHybrid, nil
		}
		if hasText {
			return ModeText, nil
		}
		return ModeVector, nil
	case ModeVector, ModeText, ModeHybrid:
		return mode, nil
	default:
		return "", validationError("mode must be one of: vector, text, hybrid")
	}
}

// buildQueryPayload validates a QueryRequest and assembles the wire payload.
// It is pure: all failures happen here, before any network round trip.
func buildQueryPayload(req QueryRequest) (*queryPayload, error) {
	if req.TopK <= 0 {
		return nil, validationError("top_k must be a positive integer")
	}
	if err := validatePositive("ef_search", req.EfSearch); err != nil {
		return nil, err
	}
	if err := validatePositive("nprobe", req.NProbe); err != nil {
		return nil, err
	}
	if err := validatePositive("rrf_k", req.RRFK); err != nil {
		return nil, err
	}
	if err := validateMetric(req.DistanceMetric); err != nil {
		return nil, err
	}
	if err := validateAttributes("filter", req.Filters); err != nil {
		return nil, err
	}

	hasVector := len(req.Vector) > 0
	hasText := trimmedText(req.Text) != ""

	mode, err := inferMode(req.Mode, hasVector, hasText)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeVector:
		if !hasVector {
			return nil, validationError("vector is required")
		}
	case ModeText:
		if !hasText {
			return nil, validationError("text is required")
		}
	case ModeHybrid:
		if !hasVector || !hasText {
			return nil, validationError("vector and text are required for hybrid")
		}
	}

	switch req.Fusion {
	case "", FusionBlend, FusionRRF:
	default:
		return nil, validationError("fusion must be one of: blend, rrf")
	}

	if req.Alpha != nil {
		a := *req.Alpha
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, validationError("alpha must be a finite number")
		}
		if a < 0 || a > 1 {
			return nil, validationError("alpha must be in [0,1], got %v", a)
		}
		// The two blend strategies are not composable.
		if req.Fusion == FusionRRF {
			return nil, validationError("cannot set both alpha and fusion=rrf")
		}
	}

	return &queryPayload{
		TopK:           req.TopK,
		IncludeVectors: req.IncludeVectors,
		Mode:           mode,
		Vector:         req.Vector,
		Text:           trimmedText(req.Text),
		DistanceMetric: req.DistanceMetric,
		Filters:        req.Filters,
		EfSearch:       req.EfSearch,
		NProbe:         req.NProbe,
		Alpha:          req.Alpha,
		Fusion:         req.Fusion,
		RRFK:           req.RRFK,
	}, nil
}

// buildUpsertPayload validates a batch of documents and assembles the wire
// payload. Dimensionality against the namespace is enforced server-side;
// locally we only require presence and intra-batch consistency.
func buildUpsertPayload(docs []Document, metric DistanceMetric) (*upsertPayload, error) {
	if len(docs) == 0 {
		return nil, validationError("vectors list cannot be empty")
	}
	if err := validateMetric(metric); err != nil {
		return nil, err
	}

	dims := 0
	for i, doc := range docs {
		if trimmedText(doc.ID) == "" {
			return nil, validationError("document [%d]: id must be a non-empty string", i)
		}
		if len(doc.Vector) == 0 {
			return nil, validationError("document %q: vector cannot be empty", doc.ID)
		}
		if dims == 0 {
			dims = len(doc.Vector)
		} else if len(doc.Vector) != dims {
			return nil, validationError("document %q: expected %d dimensions, got %d", doc.ID, dims, len(doc.Vector))
		}
		if err := validateAttributes("attribute", doc.Attributes); err != nil {
			return nil, err
		}
	}

	return &upsertPayload{Vectors: docs, DistanceMetric: metric}, nil
}

// buildDeletePayload validates the id list for a delete call.
func buildDeletePayload(ids []string) (*deletePayload, error) {
	if len(ids) == 0 {
		return nil, validationError("ids list cannot be empty")
	}
	for i, id := range ids {
		if trimmedText(id) == "" {
			return nil, validationError("id [%d]: must be a non-empty string", i)
		}
	}
	return &deletePayload{IDs: ids}, nil
}

func validatePositive(name string, value int) error {
	if value < 0 {
		return validationError("%s must be a positive integer", name)
	}
	return nil
}

func validateMetric(metric DistanceMetric) error {
	switch metric {
	case "", DistanceCosine, DistanceEuclidean, DistanceDotProduct:
		return nil
	default:
		return validationError("distance metric must be one of: cosine_distance, euclidean_squared, dot_product")
	}
}

// validateAttributes checks that every value is JSON-compatible: nil, bool,
// string, a number, or nested slices/maps thereof.
func validateAttributes(what string, attrs Attributes) error {
	for key, value := range attrs {
		if !isAttrValue(value) {
			return validationError("invalid %s value for key %q", what, key)
		}
	}
	return nil
}

func isAttrValue(value any) bool {
	switch v := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case []any:
		for _, item := range v {
			if !isAttrValue(item) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range v {
			if !isAttrValue(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
