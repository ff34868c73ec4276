package persistence

import (
	"context"
	"time"

	"authkit/internal/domain/repository"
	"authkit/internal/domain/service"
)

const metricsComponent = "store"

type instrumentedStore[T any] struct {
	inner   repository.DocumentStore[T]
	metrics service.MetricsRecorder
}

type instrumentedQueryStore[T any] struct {
	*instrumentedStore[T]
	querier repository.FieldQuerier[T]
}

// Instrument records outcome and latency of every call on store. The result still
// implements repository.FieldQuerier when store does.
func Instrument[T any](store repository.DocumentStore[T], metrics service.MetricsRecorder) repository.DocumentStore[T] {
	base := &instrumentedStore[T]{inner: store, metrics: metrics}
	if querier, ok := store.(repository.FieldQuerier[T]); ok {
		return &instrumentedQueryStore[T]{instrumentedStore: base, querier: querier}
	}

	return base
}

func (s *instrumentedStore[T]) Collection() string {
	return s.inner.Collection()
}

func (s *instrumentedStore[T]) ListAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	records, err := s.inner.ListAll(ctx)
	s.record("list_all", start, err)

	return records, err
}

func (s *instrumentedStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	start := time.Now()
	record, err := s.inner.GetByID(ctx, id)
	s.record("get_by_id", start, err)

	return record, err
}

func (s *instrumentedStore[T]) Create(ctx context.Context, id string, record *T) error {
	start := time.Now()
	err := s.inner.Create(ctx, id, record)
	s.record("create", start, err)

	return err
}

func (s *instrumentedStore[T]) Update(ctx context.Context, id string, fields repository.Fields) error {
	start := time.Now()
	err := s.inner.Update(ctx, id, fields)
	s.record("update", start, err)

	return err
}

func (s *instrumentedStore[T]) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, id)
	s.record("delete", start, err)

	return err
}

func (s *instrumentedQueryStore[T]) FindFirstByField(ctx context.Context, field string, value any) (*T, error) {
	start := time.Now()
	record, err := s.querier.FindFirstByField(ctx, field, value)
	s.record("find_by_field", start, err)

	return record, err
}

func (s *instrumentedStore[T]) record(operation string, start time.Time, err error) {
	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeFailure
	}
	s.metrics.RecordBackendCall(metricsComponent, operation, outcome, time.Since(start))
}
