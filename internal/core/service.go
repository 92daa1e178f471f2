package core

import (
	"context"
	"fmt"

	"zoocore/internal/infra/persistence/memory"
	"zoocore/internal/seed"
)

// Service exposes the zoo queries and mutations over a transactional store.
type Service struct {
	store   PersistentStore
	clock   Clock
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
	tracer  Tracer
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...ServiceOption) *Service {
	cfg := defaultServiceOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Service{
		store:   store,
		clock:   cfg.clock,
		logger:  cfg.logger,
		audit:   cfg.audit,
		metrics: cfg.metrics,
		tracer:  cfg.tracer,
	}
}

// NewInMemoryService creates a service over an empty in-memory store with the given rules engine.
func NewInMemoryService(engine *RulesEngine, opts ...ServiceOption) *Service {
	return NewService(memory.NewStore(engine), opts...)
}

// NewSeededService creates a service whose in-memory store holds the embedded zoo dataset.
func NewSeededService(engine *RulesEngine, opts ...ServiceOption) (*Service, error) {
	snapshot, err := seed.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	store := memory.NewStore(engine)
	store.ImportState(snapshot)
	return NewService(store, opts...), nil
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore {
	return s.store
}

// observe wraps an operation in a trace span and a metrics observation.
func (s *Service) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	started := s.clock.Now()
	err := fn(ctx)
	s.metrics.Observe(ctx, operation, err == nil, s.clock.Now().Sub(started))
	span.End(err)
	if err != nil {
		s.logger.Debug("zoo operation failed", "operation", operation, "error", err)
	} else {
		s.logger.Debug("zoo operation completed", "operation", operation)
	}
	return err
}

func (s *Service) view(ctx context.Context, operation string, fn func(TransactionView) error) error {
	return s.observe(ctx, operation, func(ctx context.Context) error {
		return s.store.View(ctx, fn)
	})
}

// mutate runs fn in a store transaction and audits the outcome.
func (s *Service) mutate(ctx context.Context, operation string, entity EntityType, entityID string, fn func(Transaction) error) (Result, error) {
	var res Result
	err := s.observe(ctx, operation, func(ctx context.Context) error {
		var err error
		res, err = s.store.RunInTransaction(ctx, fn)
		return err
	})

	entry := AuditEntry{
		Operation:  operation,
		Entity:     entity,
		EntityID:   entityID,
		Status:     AuditStatusSuccess,
		Violations: res.Violations,
		Timestamp:  s.clock.Now(),
	}
	if err != nil {
		entry.Status = AuditStatusError
		entry.Error = err.Error()
		s.logger.Error("zoo mutation rejected", "operation", operation, "error", err)
	} else if len(res.Violations) > 0 {
		s.logger.Warn("zoo mutation committed with violations", "operation", operation, "violations", len(res.Violations))
	}
	s.audit.Record(ctx, entry)
	return res, err
}
