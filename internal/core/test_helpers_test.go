package core

import (
	"context"
	"testing"
	"time"
)

const (
	lionsID     = "0938aa23-f153-4937-9f88-4858b24d6bce"
	giraffesID  = "01422318-ca2d-46b8-b66c-3e9e188244ed"
	otterID     = "533bebf3-6bbe-41d8-9cdf-46f7d13b62ae"
	nigelID     = "c5b83cb3-a451-49e2-ac45-ff3f54fbe7e1"
	burlID      = "0e7b460e-acf4-4e17-bcb3-ee472265db83"
	stephanieID = "9e7d4524-363c-416a-8759-8aa7e50c0992"
)

func newSeededService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	svc, err := NewSeededService(NewDefaultRulesEngine(), opts...)
	if err != nil {
		t.Fatalf("new seeded service: %v", err)
	}
	return svc
}

type captureAuditRecorder struct {
	entries []AuditEntry
}

func (c *captureAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	c.entries = append(c.entries, entry)
}

func (c *captureAuditRecorder) has(op string, status AuditStatus, predicate func(AuditEntry) bool) bool {
	for _, entry := range c.entries {
		if entry.Operation == op && entry.Status == status {
			if predicate == nil || predicate(entry) {
				return true
			}
		}
	}
	return false
}

type metricsCall struct {
	op       string
	success  bool
	duration time.Duration
}

type captureMetricsRecorder struct {
	calls []metricsCall
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, duration time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success, duration: duration})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

type captureTracer struct {
	started []string
	ended   []spanRecord
}

type spanRecord struct {
	op  string
	err error
}

func (c *captureTracer) Start(ctx context.Context, op string) (context.Context, TraceSpan) {
	c.started = append(c.started, op)
	return ctx, &captureSpan{tracer: c, op: op}
}

func (c *captureTracer) has(op string, success bool) bool {
	for _, record := range c.ended {
		if record.op != op {
			continue
		}
		if success == (record.err == nil) {
			return true
		}
	}
	return false
}

type captureSpan struct {
	tracer *captureTracer
	op     string
}

func (s *captureSpan) End(err error) {
	s.tracer.ended = append(s.tracer.ended, spanRecord{op: s.op, err: err})
}

type logRecord struct {
	level string
	msg   string
}

type captureLogger struct {
	records []logRecord
}

func (l *captureLogger) Debug(msg string, _ ...any) { l.add("debug", msg) }
func (l *captureLogger) Info(msg string, _ ...any)  { l.add("info", msg) }
func (l *captureLogger) Warn(msg string, _ ...any)  { l.add("warn", msg) }
func (l *captureLogger) Error(msg string, _ ...any) { l.add("error", msg) }

func (l *captureLogger) add(level, msg string) {
	l.records = append(l.records, logRecord{level: level, msg: msg})
}

func (l *captureLogger) count(level string) int {
	n := 0
	for _, r := range l.records {
		if r.level == level {
			n++
		}
	}
	return n
}

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}
