package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "zoocore"

// PrometheusMetricsRecorder exports service operation counts and latencies as
// Prometheus collectors.
type PrometheusMetricsRecorder struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewPrometheusMetricsRecorder creates the collectors and registers them on reg.
// Collectors already registered on reg by an earlier recorder are reused.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	if reg == nil {
		return nil, fmt.Errorf("prometheus registerer required")
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "service",
		Name:      "operations_total",
		Help:      "Total number of zoo service operations by outcome",
	}, []string{"operation", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "service",
		Name:      "operation_duration_seconds",
		Help:      "Duration of zoo service operations",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"operation"})

	var err error
	if operations, err = registerOrReuse(reg, operations); err != nil {
		return nil, fmt.Errorf("register operations counter: %w", err)
	}
	if duration, err = registerOrReuse(reg, duration); err != nil {
		return nil, fmt.Errorf("register duration histogram: %w", err)
	}
	return &PrometheusMetricsRecorder{
		operationsTotal:   operations,
		operationDuration: duration,
	}, nil
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records a service operation outcome.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.operationsTotal.WithLabelValues(operation, statusLabel(success)).Inc()
	r.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
