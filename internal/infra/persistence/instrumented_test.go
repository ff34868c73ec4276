package persistence

import (
	"context"
	"testing"
	"time"

	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	"authkit/internal/domain/service"
	"authkit/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string `json:"name"`
}

type call struct {
	component string
	operation string
	outcome   string
}

type recorderStub struct {
	calls []call
}

func (r *recorderStub) RecordBackendCall(component, operation, outcome string, _ time.Duration) {
	r.calls = append(r.calls, call{component: component, operation: operation, outcome: outcome})
}

func (r *recorderStub) RecordAuthTransition(string) {}

type queryingStore struct {
	repository.DocumentStore[record]
	found *record
}

func (s *queryingStore) FindFirstByField(context.Context, string, any) (*record, error) {
	return s.found, nil
}

func TestInstrument_RecordsOutcomes(t *testing.T) {
	recorder := &recorderStub{}
	store := Instrument[record](memory.NewDocumentStore[record]("records"), recorder)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "r1", &record{Name: "one"}))
	_, err := store.GetByID(ctx, "r1")
	require.NoError(t, err)
	err = store.Update(ctx, "missing", repository.Fields{"name": "x"})
	require.Error(t, err)
	var storeErr *domainerrors.StoreError
	assert.ErrorAs(t, err, &storeErr)

	assert.Equal(t, []call{
		{component: "store", operation: "create", outcome: service.OutcomeSuccess},
		{component: "store", operation: "get_by_id", outcome: service.OutcomeSuccess},
		{component: "store", operation: "update", outcome: service.OutcomeFailure},
	}, recorder.calls)
	assert.Equal(t, "records", store.Collection())
}

func TestInstrument_FieldQuerierCapability(t *testing.T) {
	recorder := &recorderStub{}

	plain := Instrument[record](memory.NewDocumentStore[record]("records"), recorder)
	_, ok := plain.(repository.FieldQuerier[record])
	assert.False(t, ok, "memory store does not query by field")

	inner := &queryingStore{DocumentStore: memory.NewDocumentStore[record]("records"), found: &record{Name: "hit"}}
	wrapped := Instrument[record](inner, recorder)
	querier, ok := wrapped.(repository.FieldQuerier[record])
	require.True(t, ok)

	got, err := querier.FindFirstByField(context.Background(), "name", "hit")
	require.NoError(t, err)
	assert.Equal(t, "hit", got.Name)
	assert.Equal(t, []call{{component: "store", operation: "find_by_field", outcome: service.OutcomeSuccess}}, recorder.calls)
}
