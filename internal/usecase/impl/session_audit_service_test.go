package impl

import (
	"context"
	"testing"
	"time"

	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/service"
	"authkit/internal/infra/persistence/memory"
	mockRepo "authkit/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedIn(id, uid string, at time.Time) *service.SessionEvent {
	return &service.SessionEvent{
		EventID:    id,
		Type:       service.SessionEventSignedIn,
		UID:        uid,
		Email:      uid + "@b.co",
		OccurredAt: at,
	}
}

func TestSessionAuditService_Record(t *testing.T) {
	store := mockRepo.NewMockDocumentStore[entity.SessionRecord](t)
	srv := newSessionAuditService(store, testLogger(), func() time.Time { return fixedNow })
	ctx := context.Background()
	occurred := fixedNow.Add(-time.Second)

	store.EXPECT().Create(ctx, "E1", &entity.SessionRecord{
		EventID:    "E1",
		Type:       service.SessionEventSignedIn,
		UID:        "U1",
		Email:      "U1@b.co",
		OccurredAt: occurred,
		ReceivedAt: fixedNow,
		RequestID:  "req-1",
	}).Return(nil)

	require.NoError(t, srv.Record(ctx, signedIn("E1", "U1", occurred), "req-1"))
}

func TestSessionAuditService_Record_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		event *service.SessionEvent
	}{
		{name: "nil event", event: nil},
		{name: "missing id", event: &service.SessionEvent{Type: service.SessionEventSignedIn, UID: "U1"}},
		{name: "missing uid", event: &service.SessionEvent{EventID: "E1", Type: service.SessionEventSignedOut}},
		{name: "unknown type", event: &service.SessionEvent{EventID: "E1", Type: "refreshed", UID: "U1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mockRepo.NewMockDocumentStore[entity.SessionRecord](t)
			srv := newSessionAuditService(store, testLogger(), time.Now)

			err := srv.Record(context.Background(), tt.event, "")

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSessionAuditService_Record_StoreFailure(t *testing.T) {
	store := mockRepo.NewMockDocumentStore[entity.SessionRecord](t)
	srv := newSessionAuditService(store, testLogger(), time.Now)
	storeErr := domainerrors.NewStoreError(domainerrors.StoreOpCreate, "sessionEvents", errors.New("unavailable"))

	store.EXPECT().Create(mock.Anything, "E1", mock.Anything).Return(storeErr)

	err := srv.Record(context.Background(), signedIn("E1", "U1", fixedNow), "")

	var target *domainerrors.StoreError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, domainerrors.StoreOpCreate, target.Op())
}

func TestSessionAuditService_RecordIsIdempotent(t *testing.T) {
	store := memory.NewDocumentStore[entity.SessionRecord]("sessionEvents")
	srv := newSessionAuditService(store, testLogger(), func() time.Time { return fixedNow })
	ctx := context.Background()

	event := signedIn("E1", "U1", fixedNow)
	require.NoError(t, srv.Record(ctx, event, ""))
	require.NoError(t, srv.Record(ctx, event, ""))

	records, err := srv.ListForUser(ctx, "U1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSessionAuditService_ListForUser(t *testing.T) {
	store := memory.NewDocumentStore[entity.SessionRecord]("sessionEvents")
	srv := newSessionAuditService(store, testLogger(), func() time.Time { return fixedNow })
	ctx := context.Background()

	require.NoError(t, srv.Record(ctx, signedIn("E2", "U1", fixedNow.Add(time.Minute)), ""))
	require.NoError(t, srv.Record(ctx, signedIn("E1", "U1", fixedNow), ""))
	require.NoError(t, srv.Record(ctx, signedIn("E3", "U2", fixedNow), ""))

	records, err := srv.ListForUser(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "E1", records[0].EventID)
	assert.Equal(t, "E2", records[1].EventID)

	_, err = srv.ListForUser(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
