package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusMetricsRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	recorder.Observe(context.Background(), "schedule", true, 2*time.Millisecond)
	recorder.Observe(context.Background(), "schedule", true, 3*time.Millisecond)
	recorder.Observe(context.Background(), "schedule", false, time.Millisecond)
	recorder.Observe(context.Background(), "", true, time.Millisecond)

	if got := testutil.ToFloat64(recorder.operationsTotal.WithLabelValues("schedule", entryStatusSuccess)); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.operationsTotal.WithLabelValues("schedule", entryStatusError)); got != 1 {
		t.Fatalf("expected 1 error, got %v", got)
	}
	if n := testutil.CollectAndCount(recorder.operationsTotal); n != 2 {
		t.Fatalf("expected 2 counter series, got %d", n)
	}
	if n := testutil.CollectAndCount(recorder.operationDuration); n != 1 {
		t.Fatalf("expected 1 histogram series, got %d", n)
	}
}

func TestPrometheusMetricsRecorderReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("first recorder: %v", err)
	}
	second, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("second recorder: %v", err)
	}
	first.Observe(context.Background(), "count_animals", true, time.Millisecond)
	second.Observe(context.Background(), "count_animals", true, time.Millisecond)

	if got := testutil.ToFloat64(first.operationsTotal.WithLabelValues("count_animals", entryStatusSuccess)); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestPrometheusMetricsRecorderRequiresRegisterer(t *testing.T) {
	if _, err := NewPrometheusMetricsRecorder(nil); err == nil {
		t.Fatalf("expected error for nil registerer")
	}
}

func TestServiceWithPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	svc := newSeededService(t, WithMetricsRecorder(recorder))

	if _, err := svc.CountAnimals(context.Background()); err != nil {
		t.Fatalf("count animals: %v", err)
	}
	if _, err := svc.CountResidents(context.Background(), "unicorns"); err == nil {
		t.Fatalf("expected not found")
	}

	expected := `
# HELP zoocore_service_operations_total Total number of zoo service operations by outcome
# TYPE zoocore_service_operations_total counter
zoocore_service_operations_total{operation="count_animals",status="success"} 1
zoocore_service_operations_total{operation="count_residents",status="error"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "zoocore_service_operations_total"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}
