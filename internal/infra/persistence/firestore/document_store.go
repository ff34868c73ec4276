// Package firestore implements repository.DocumentStore on Cloud Firestore.
package firestore

import (
	"context"

	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DocumentStore maps one Firestore collection onto documents of shape T.
// T is encoded with its `firestore` struct tags.
type DocumentStore[T any] struct {
	client     *firestore.Client
	collection string
}

var (
	_ repository.DocumentStore[struct{}] = (*DocumentStore[struct{}])(nil)
	_ repository.FieldQuerier[struct{}]  = (*DocumentStore[struct{}])(nil)
)

// NewDocumentStore binds a store to the named collection.
func NewDocumentStore[T any](client *firestore.Client, collection string) *DocumentStore[T] {
	return &DocumentStore[T]{client: client, collection: collection}
}

func (s *DocumentStore[T]) Collection() string {
	return s.collection
}

func (s *DocumentStore[T]) ListAll(ctx context.Context) ([]T, error) {
	snapshots, err := s.client.Collection(s.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpListAll, err)
	}

	records, err := decodeAll[T](snapshots)
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpListAll, err)
	}

	return records, nil
}

func (s *DocumentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	snapshot, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, s.fail(domainerrors.StoreOpGetByID, err)
	}

	record := new(T)
	if err := snapshot.DataTo(record); err != nil {
		return nil, s.fail(domainerrors.StoreOpGetByID, errors.Wrapf(err, "decode %s", id))
	}

	return record, nil
}

func (s *DocumentStore[T]) Create(ctx context.Context, id string, record *T) error {
	if record == nil {
		return s.fail(domainerrors.StoreOpCreate, errors.New("record is nil"))
	}

	if _, err := s.client.Collection(s.collection).Doc(id).Set(ctx, record); err != nil {
		return s.fail(domainerrors.StoreOpCreate, err)
	}

	return nil
}

func (s *DocumentStore[T]) Update(ctx context.Context, id string, fields repository.Fields) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Update(ctx, toUpdates(fields)); err != nil {
		if isNotFound(err) {
			err = errors.Wrapf(domainerrors.ErrDocumentNotFound, "%s/%s: %v", s.collection, id, err)
		}

		return s.fail(domainerrors.StoreOpUpdate, err)
	}

	return nil
}

// Delete relies on Firestore treating deletes of missing documents as successful.
func (s *DocumentStore[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx); err != nil {
		return s.fail(domainerrors.StoreOpDelete, err)
	}

	return nil
}

func (s *DocumentStore[T]) FindFirstByField(ctx context.Context, field string, value any) (*T, error) {
	snapshots, err := s.client.Collection(s.collection).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpFindByField, err)
	}
	if len(snapshots) == 0 {
		return nil, nil
	}

	record := new(T)
	if err := snapshots[0].DataTo(record); err != nil {
		return nil, s.fail(domainerrors.StoreOpFindByField, errors.Wrapf(err, "decode %s", snapshots[0].Ref.ID))
	}

	return record, nil
}

func (s *DocumentStore[T]) fail(op string, err error) error {
	return domainerrors.NewStoreError(op, s.collection, err)
}

// Update with an empty slice is rejected by Firestore; callers always send at least lastLogin.
func toUpdates(fields repository.Fields) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields))
	for _, key := range fields.Keys() {
		updates = append(updates, firestore.Update{Path: key, Value: fields[key]})
	}

	return updates
}

func decodeAll[T any](snapshots []*firestore.DocumentSnapshot) ([]T, error) {
	records := make([]T, 0, len(snapshots))
	for _, snapshot := range snapshots {
		var record T
		if err := snapshot.DataTo(&record); err != nil {
			return nil, errors.Wrapf(err, "decode %s", snapshot.Ref.ID)
		}
		records = append(records, record)
	}

	return records, nil
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}
