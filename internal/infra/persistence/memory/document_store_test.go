package memory

import (
	"context"
	"testing"
	"time"

	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Title     string    `json:"title"`
	Body      *string   `json:"body"`
	Pinned    bool      `json:"pinned"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func requireStoreOp(t *testing.T, err error, op string) *domainerrors.StoreError {
	t.Helper()

	var storeErr *domainerrors.StoreError
	require.True(t, errors.As(err, &storeErr), "expected StoreError, got %v", err)
	assert.Equal(t, op, storeErr.Op())

	return storeErr
}

func TestDocumentStore_CreateAndGet(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()

	body := "hello"
	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first", Body: &body}))

	got, err := store.GetByID(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
	require.NotNil(t, got.Body)
	assert.Equal(t, "hello", *got.Body)
	assert.Equal(t, "notes", store.Collection())
}

func TestDocumentStore_GetMissingReturnsNil(t *testing.T) {
	store := NewDocumentStore[note]("notes")

	got, err := store.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDocumentStore_CreateOverwrites(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()

	body := "hello"
	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first", Body: &body, Pinned: true}))
	require.NoError(t, store.Create(ctx, "n1", &note{Title: "second"}))

	got, err := store.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, &note{Title: "second"}, got)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDocumentStore_UpdateMergesOnlySuppliedFields(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()

	body := "hello"
	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first", Body: &body}))

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Update(ctx, "n1", repository.Fields{"pinned": true, "updatedAt": now}))

	got, err := store.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "hello", *got.Body)
	assert.True(t, got.Pinned)
	assert.True(t, now.Equal(got.UpdatedAt))
}

func TestDocumentStore_UpdateMissingFails(t *testing.T) {
	store := NewDocumentStore[note]("notes")

	err := store.Update(context.Background(), "missing", repository.Fields{"pinned": true})

	storeErr := requireStoreOp(t, err, domainerrors.StoreOpUpdate)
	assert.ErrorIs(t, storeErr, domainerrors.ErrDocumentNotFound)
	assert.Contains(t, err.Error(), "Failed to update document")
}

func TestDocumentStore_UpdateRejectsMistypedField(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first"}))

	err := store.Update(ctx, "n1", repository.Fields{"pinned": "yes"})
	requireStoreOp(t, err, domainerrors.StoreOpUpdate)

	got, err := store.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.False(t, got.Pinned)
}

func TestDocumentStore_DeleteIsIdempotent(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first"}))
	require.NoError(t, store.Delete(ctx, "n1"))
	require.NoError(t, store.Delete(ctx, "n1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	got, err := store.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDocumentStore_ListAll(t *testing.T) {
	store := NewDocumentStore[note]("notes")
	ctx := context.Background()

	empty, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.Create(ctx, "n1", &note{Title: "first"}))
	require.NoError(t, store.Create(ctx, "n2", &note{Title: "second"}))
	require.NoError(t, store.Create(ctx, "n3", &note{Title: "third"}))
	require.NoError(t, store.Delete(ctx, "n2"))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[1].Title)
}

func TestDocumentStore_CreateNilRecord(t *testing.T) {
	store := NewDocumentStore[note]("notes")

	err := store.Create(context.Background(), "n1", nil)

	requireStoreOp(t, err, domainerrors.StoreOpCreate)
}
