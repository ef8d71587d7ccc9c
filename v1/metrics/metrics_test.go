package metrics

import (
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/stratal/objstore/v1/observability"
)

func gatherMetric(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestObserver_CountsByStatus(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "objstore",
		Operation: "list_objects_v2",
		Duration:  25 * time.Millisecond,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "objstore",
		Operation: "list_objects_v2",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	mf := gatherMetric(t, m, "objstore_operations_total")
	if mf == nil {
		t.Fatal("objstore_operations_total not registered")
	}
	counts := map[string]float64{}
	for _, metric := range mf.GetMetric() {
		counts[labelValue(metric, "status")] = metric.GetCounter().GetValue()
	}
	if counts["success"] != 1 {
		t.Errorf("success count = %v, want 1", counts["success"])
	}
	if counts["error"] != 1 {
		t.Errorf("error count = %v, want 1", counts["error"])
	}
}

func TestObserver_RecordsDurationAndBytes(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "objstore",
		Operation: "complete_multipart_upload",
		Duration:  40 * time.Millisecond,
		Size:      1024,
	})

	hist := gatherMetric(t, m, "objstore_operation_duration_seconds")
	if hist == nil {
		t.Fatal("duration histogram not registered")
	}
	if got := hist.GetMetric()[0].GetHistogram().GetSampleCount(); got != 1 {
		t.Errorf("histogram sample count = %d, want 1", got)
	}

	bytes := gatherMetric(t, m, "objstore_operation_bytes_total")
	if bytes == nil {
		t.Fatal("bytes counter not registered")
	}
	if got := bytes.GetMetric()[0].GetCounter().GetValue(); got != 1024 {
		t.Errorf("bytes total = %v, want 1024", got)
	}
}

func TestObserver_SkipsBytesWhenZero(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "objstore",
		Operation: "bucket_exists",
		Duration:  time.Millisecond,
	})

	mf := gatherMetric(t, m, "objstore_operation_bytes_total")
	if mf != nil && len(mf.GetMetric()) != 0 {
		t.Errorf("bytes counter should have no series, got %d", len(mf.GetMetric()))
	}
}

func TestMetrics_ServiceLabel(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "media-ingest"})
	NewObserver(m).ObserveOperation(observability.OperationContext{
		Component: "objstore",
		Operation: "list_buckets",
	})

	mf := gatherMetric(t, m, "objstore_operations_total")
	if mf == nil {
		t.Fatal("objstore_operations_total not registered")
	}
	if got := labelValue(mf.GetMetric()[0], "service"); got != "media-ingest" {
		t.Errorf("service label = %q, want %q", got, "media-ingest")
	}
}

func TestCreateCounter_Registers(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	c := m.CreateCounter("custom_events_total", "Custom events", []string{"kind"})
	c.WithLabelValues("upload").Add(3)

	mf := gatherMetric(t, m, "custom_events_total")
	if mf == nil {
		t.Fatal("custom counter not registered")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 3 {
		t.Errorf("counter value = %v, want 3", got)
	}
}
