package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

func newTestObserver() (*Metrics, *Observer) {
	m := NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "test",
		EnableDefaultCollectors: false,
	})
	return m, NewObserver(m)
}

func TestObserveOperation_Success(t *testing.T) {
	_, obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "tidepool",
		Operation: "query",
		Duration:  25 * time.Millisecond,
		Size:      3,
	})

	count := testutil.ToFloat64(obs.operationsTotal.WithLabelValues("tidepool", "query", "success"))
	if count != 1 {
		t.Errorf("expected success count 1, got %v", count)
	}
	errCount := testutil.ToFloat64(obs.operationsTotal.WithLabelValues("tidepool", "query", "error"))
	if errCount != 0 {
		t.Errorf("expected error count 0, got %v", errCount)
	}
}

func TestObserveOperation_Error(t *testing.T) {
	_, obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "tidepool",
		Operation: "upsert",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	count := testutil.ToFloat64(obs.operationsTotal.WithLabelValues("tidepool", "upsert", "error"))
	if count != 1 {
		t.Errorf("expected error count 1, got %v", count)
	}
}

func TestObserveOperation_DurationRecorded(t *testing.T) {
	_, obs := newTestObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "tidepool",
		Operation: "query",
		Duration:  100 * time.Millisecond,
	})

	samples := testutil.CollectAndCount(obs.operationDuration)
	if samples != 1 {
		t.Errorf("expected 1 duration series, got %d", samples)
	}
}

func TestNewMetrics_RegistersOnOwnRegistry(t *testing.T) {
	m, _ := newTestObserver()

	counter := m.CreateCounter("extra_total", "extra counter", []string{"kind"})
	counter.WithLabelValues("a").Inc()

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := false
	for _, fam := range families {
		if fam.GetName() == "extra_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected extra_total to be registered on the instance registry")
	}
}
