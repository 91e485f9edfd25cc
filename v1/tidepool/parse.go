package tidepool

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// The services are tolerant producers: depending on version they emit
// slightly different key names for the same fields. The parsers in this file
// accept all known spellings and normalize into the public response models.

func serviceError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrService, fmt.Sprintf(format, args...))
}

// parseTimestamp accepts RFC3339 with or without a trailing "Z".
func parseTimestamp(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, serviceError("invalid timestamp %q", value)
	}
	return &ts, nil
}

// rawResult mirrors a single hit with all known score spellings.
type rawResult struct {
	ID         string     `json:"id"`
	Score      *float64   `json:"score"`
	Dist       *float64   `json:"dist"`
	Distance   *float64   `json:"distance"`
	Vector     Vector     `json:"vector"`
	Attributes Attributes `json:"attributes"`
}

func (r rawResult) toVectorResult() VectorResult {
	score := 0.0
	switch {
	case r.Score != nil:
		score = *r.Score
	case r.Dist != nil:
		score = *r.Dist
	case r.Distance != nil:
		score = *r.Distance
	}
	return VectorResult{
		ID:         r.ID,
		Score:      score,
		Vector:     r.Vector,
		Attributes: r.Attributes,
	}
}

// parseQueryResponse decodes a query body. The result list may arrive as a
// bare array or under "results"/"vectors"; the echoed namespace may be
// missing, in which case the resolved namespace is used.
func parseQueryResponse(body []byte, fallbackNamespace string) (*QueryResponse, error) {
	var bare []rawResult
	if err := json.Unmarshal(body, &bare); err == nil {
		results := make([]VectorResult, len(bare))
		for i, r := range bare {
			results[i] = r.toVectorResult()
		}
		return &QueryResponse{Results: results, Namespace: fallbackNamespace}, nil
	}

	var wrapped struct {
		Results   []rawResult `json:"results"`
		Vectors   []rawResult `json:"vectors"`
		Namespace string      `json:"namespace"`
		NS        string      `json:"ns"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, serviceError("invalid query response")
	}

	items := wrapped.Results
	if items == nil {
		items = wrapped.Vectors
	}
	if items == nil {
		return nil, serviceError("invalid query response")
	}

	namespace := fallbackNamespace
	if ns := strings.TrimSpace(wrapped.Namespace); ns != "" {
		namespace = ns
	} else if ns := strings.TrimSpace(wrapped.NS); ns != "" {
		namespace = ns
	}

	results := make([]VectorResult, len(items))
	for i, r := range items {
		results[i] = r.toVectorResult()
	}
	return &QueryResponse{Results: results, Namespace: namespace}, nil
}

// rawNamespaceInfo tolerates both snake_case and camelCase compaction flags.
type rawNamespaceInfo struct {
	Namespace         string `json:"namespace"`
	ApproxCount       int64  `json:"approx_count"`
	Dimensions        int    `json:"dimensions"`
	PendingCompaction *bool  `json:"pending_compaction"`
	PendingCamel      *bool  `json:"pendingCompaction"`
}

func (r rawNamespaceInfo) toNamespaceInfo() NamespaceInfo {
	pending := r.PendingCompaction
	if pending == nil {
		pending = r.PendingCamel
	}
	return NamespaceInfo{
		Namespace:         r.Namespace,
		ApproxCount:       r.ApproxCount,
		Dimensions:        r.Dimensions,
		PendingCompaction: pending,
	}
}

func parseNamespaceInfo(body []byte) (*NamespaceInfo, error) {
	var raw rawNamespaceInfo
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, serviceError("invalid namespace response")
	}
	info := raw.toNamespaceInfo()
	return &info, nil
}

// parseNamespaces decodes the namespace listing. Entries may be full info
// objects or bare names; bare names are lifted into NamespaceInfo so the
// caller always receives structured entries. The list itself may be a bare
// array or wrapped under "namespaces"/"namespace_list".
func parseNamespaces(body []byte) ([]NamespaceInfo, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		var wrapped struct {
			Namespaces    []json.RawMessage `json:"namespaces"`
			NamespaceList []json.RawMessage `json:"namespace_list"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, serviceError("invalid namespaces response")
		}
		entries = wrapped.Namespaces
		if entries == nil {
			entries = wrapped.NamespaceList
		}
		if entries == nil {
			return nil, serviceError("invalid namespaces response")
		}
	}

	infos := make([]NamespaceInfo, 0, len(entries))
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			infos = append(infos, NamespaceInfo{Namespace: name})
			continue
		}
		var raw rawNamespaceInfo
		if err := json.Unmarshal(entry, &raw); err != nil {
			return nil, serviceError("invalid namespaces response")
		}
		infos = append(infos, raw.toNamespaceInfo())
	}
	return infos, nil
}

// rawStatus is the shared wire shape of namespace status and ingest status.
type rawStatus struct {
	LastRun    string `json:"last_run"`
	WALFiles   int64  `json:"wal_files"`
	WALEntries int64  `json:"wal_entries"`
	Segments   int64  `json:"segments"`
	TotalVecs  int64  `json:"total_vecs"`
	Dimensions int    `json:"dimensions"`
}

func parseNamespaceStatus(body []byte) (*NamespaceStatus, error) {
	var raw rawStatus
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, serviceError("invalid namespace status response")
	}
	lastRun, err := parseTimestamp(raw.LastRun)
	if err != nil {
		return nil, err
	}
	return &NamespaceStatus{
		LastRun:    lastRun,
		WALFiles:   raw.WALFiles,
		WALEntries: raw.WALEntries,
		Segments:   raw.Segments,
		TotalVecs:  raw.TotalVecs,
		Dimensions: raw.Dimensions,
	}, nil
}

func parseIngestStatus(body []byte) (*IngestStatus, error) {
	var raw rawStatus
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, serviceError("invalid status response")
	}
	lastRun, err := parseTimestamp(raw.LastRun)
	if err != nil {
		return nil, err
	}
	return &IngestStatus{
		LastRun:    lastRun,
		WALFiles:   raw.WALFiles,
		WALEntries: raw.WALEntries,
		Segments:   raw.Segments,
		TotalVecs:  raw.TotalVecs,
		Dimensions: raw.Dimensions,
	}, nil
}

// parseHealth decodes a /health body and rejects unhealthy services.
func parseHealth(body []byte) (*Health, error) {
	var extra map[string]any
	if err := json.Unmarshal(body, &extra); err != nil {
		return nil, serviceError("invalid health response")
	}
	status, _ := extra["status"].(string)
	if status != "" && status != "healthy" {
		return nil, serviceError("service unhealthy: %s", status)
	}
	delete(extra, "status")
	return &Health{Status: status, Extra: extra}, nil
}
