package tidepool

import (
	"testing"
	"time"
)

func TestParseQueryResponse_WrappedResults(t *testing.T) {
	body := []byte(`{"results": [{"id": "a", "score": 0.9}], "namespace": "docs"}`)
	resp, err := parseQueryResponse(body, "fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != "a" {
		t.Fatalf("unexpected results: %#v", resp.Results)
	}
	if resp.Results[0].Score != 0.9 {
		t.Errorf("expected score 0.9, got %v", resp.Results[0].Score)
	}
	if resp.Namespace != "docs" {
		t.Errorf("expected echoed namespace, got %q", resp.Namespace)
	}
}

func TestParseQueryResponse_BareArray(t *testing.T) {
	body := []byte(`[{"id": "a", "dist": 0.4}, {"id": "b", "distance": 0.6}]`)
	resp, err := parseQueryResponse(body, "fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Score != 0.4 {
		t.Errorf("expected dist to map to score, got %v", resp.Results[0].Score)
	}
	if resp.Results[1].Score != 0.6 {
		t.Errorf("expected distance to map to score, got %v", resp.Results[1].Score)
	}
	if resp.Namespace != "fallback" {
		t.Errorf("expected fallback namespace, got %q", resp.Namespace)
	}
}

func TestParseQueryResponse_VectorsKeyAndNSAlias(t *testing.T) {
	body := []byte(`{"vectors": [{"id": "a", "score": 1.0}], "ns": "short"}`)
	resp, err := parseQueryResponse(body, "fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Namespace != "short" {
		t.Errorf("expected ns alias to be honored, got %q", resp.Namespace)
	}
}

func TestParseQueryResponse_EmptyWrappedList(t *testing.T) {
	resp, err := parseQueryResponse([]byte(`{"results": []}`), "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected no results, got %d", len(resp.Results))
	}
}

func TestParseQueryResponse_Invalid(t *testing.T) {
	_, err := parseQueryResponse([]byte(`{"unrelated": true}`), "docs")
	if !IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}

func TestParseQueryResponse_PreservesOrder(t *testing.T) {
	body := []byte(`{"results": [{"id": "c"}, {"id": "a"}, {"id": "b"}]}`)
	resp, err := parseQueryResponse(body, "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if resp.Results[i].ID != id {
			t.Fatalf("expected server order %v, got %#v", want, resp.Results)
		}
	}
}

func TestParseNamespaceInfo_CamelCaseCompaction(t *testing.T) {
	body := []byte(`{"namespace": "docs", "approx_count": 10, "dimensions": 128, "pendingCompaction": true}`)
	info, err := parseNamespaceInfo(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.PendingCompaction == nil || !*info.PendingCompaction {
		t.Errorf("expected camelCase pending flag to be honored: %#v", info)
	}
	if info.ApproxCount != 10 || info.Dimensions != 128 {
		t.Errorf("unexpected info: %#v", info)
	}
}

func TestParseNamespaceInfo_SnakeCaseWins(t *testing.T) {
	body := []byte(`{"namespace": "docs", "pending_compaction": false, "pendingCompaction": true}`)
	info, err := parseNamespaceInfo(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.PendingCompaction == nil || *info.PendingCompaction {
		t.Errorf("expected snake_case flag to win: %#v", info)
	}
}

func TestParseNamespaces_BareStrings(t *testing.T) {
	infos, err := parseNamespaces([]byte(`["a", "b"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 || infos[0].Namespace != "a" || infos[1].Namespace != "b" {
		t.Errorf("unexpected namespaces: %#v", infos)
	}
}

func TestParseNamespaces_WrappedObjects(t *testing.T) {
	body := []byte(`{"namespaces": [{"namespace": "a", "approx_count": 3}]}`)
	infos, err := parseNamespaces(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 1 || infos[0].ApproxCount != 3 {
		t.Errorf("unexpected namespaces: %#v", infos)
	}
}

func TestParseNamespaces_NamespaceListAlias(t *testing.T) {
	infos, err := parseNamespaces([]byte(`{"namespace_list": ["x"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 1 || infos[0].Namespace != "x" {
		t.Errorf("unexpected namespaces: %#v", infos)
	}
}

func TestParseNamespaces_Invalid(t *testing.T) {
	_, err := parseNamespaces([]byte(`{"other": 1}`))
	if !IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}

func TestParseNamespaceStatus_Full(t *testing.T) {
	body := []byte(`{"last_run": "2026-08-30T10:00:00Z", "wal_files": 2, "wal_entries": 100, "segments": 4, "total_vecs": 5000, "dimensions": 768}`)
	status, err := parseNamespaceStatus(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if status.LastRun == nil || !status.LastRun.Equal(want) {
		t.Errorf("unexpected last run: %v", status.LastRun)
	}
	if status.TotalVecs != 5000 || status.Dimensions != 768 {
		t.Errorf("unexpected status: %#v", status)
	}
}

func TestParseNamespaceStatus_MissingLastRun(t *testing.T) {
	status, err := parseNamespaceStatus([]byte(`{"wal_files": 1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.LastRun != nil {
		t.Errorf("expected nil last run, got %v", status.LastRun)
	}
}

func TestParseNamespaceStatus_BadTimestamp(t *testing.T) {
	_, err := parseNamespaceStatus([]byte(`{"last_run": "yesterday"}`))
	if !IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}

func TestParseHealth_Healthy(t *testing.T) {
	health, err := parseHealth([]byte(`{"status": "healthy", "version": "1.2.3"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected healthy, got %q", health.Status)
	}
	if health.Extra["version"] != "1.2.3" {
		t.Errorf("expected extra fields to survive: %#v", health.Extra)
	}
}

func TestParseHealth_Unhealthy(t *testing.T) {
	_, err := parseHealth([]byte(`{"status": "degraded"}`))
	if !IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}
