// Package mongo implements repository.DocumentStore on MongoDB.
// The document id is stored as _id; T is encoded with its `bson` struct tags.
package mongo

import (
	"context"

	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const idField = "_id"

type DocumentStore[T any] struct {
	coll *mongo.Collection
}

var (
	_ repository.DocumentStore[struct{}] = (*DocumentStore[struct{}])(nil)
	_ repository.FieldQuerier[struct{}]  = (*DocumentStore[struct{}])(nil)
)

func NewDocumentStore[T any](db *mongo.Database, collection string) *DocumentStore[T] {
	return &DocumentStore[T]{coll: db.Collection(collection)}
}

func (s *DocumentStore[T]) Collection() string {
	return s.coll.Name()
}

func (s *DocumentStore[T]) ListAll(ctx context.Context) ([]T, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpListAll, err)
	}

	records := make([]T, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, s.fail(domainerrors.StoreOpListAll, err)
	}

	return records, nil
}

func (s *DocumentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	record, err := s.findOne(ctx, bson.M{idField: id})
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpGetByID, err)
	}

	return record, nil
}

func (s *DocumentStore[T]) Create(ctx context.Context, id string, record *T) error {
	if record == nil {
		return s.fail(domainerrors.StoreOpCreate, errors.New("record is nil"))
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{idField: id}, record, options.Replace().SetUpsert(true))
	if err != nil {
		return s.fail(domainerrors.StoreOpCreate, err)
	}

	return nil
}

func (s *DocumentStore[T]) Update(ctx context.Context, id string, fields repository.Fields) error {
	filter := bson.M{idField: id}

	// An empty $set is rejected by the server, so an empty update only checks existence.
	if len(fields) == 0 {
		n, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return s.fail(domainerrors.StoreOpUpdate, err)
		}
		if n == 0 {
			return s.fail(domainerrors.StoreOpUpdate, s.notFound(id))
		}

		return nil
	}

	result, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": toSet(fields)})
	if err != nil {
		return s.fail(domainerrors.StoreOpUpdate, err)
	}
	if result.MatchedCount == 0 {
		return s.fail(domainerrors.StoreOpUpdate, s.notFound(id))
	}

	return nil
}

func (s *DocumentStore[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{idField: id}); err != nil {
		return s.fail(domainerrors.StoreOpDelete, err)
	}

	return nil
}

func (s *DocumentStore[T]) FindFirstByField(ctx context.Context, field string, value any) (*T, error) {
	record, err := s.findOne(ctx, bson.M{field: value})
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpFindByField, err)
	}

	return record, nil
}

func (s *DocumentStore[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	record := new(T)
	if err := s.coll.FindOne(ctx, filter).Decode(record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, err
	}

	return record, nil
}

func (s *DocumentStore[T]) notFound(id string) error {
	return errors.Wrapf(domainerrors.ErrDocumentNotFound, "%s/%s", s.coll.Name(), id)
}

func (s *DocumentStore[T]) fail(op string, err error) error {
	return domainerrors.NewStoreError(op, s.coll.Name(), err)
}

func toSet(fields repository.Fields) bson.D {
	set := make(bson.D, 0, len(fields))
	for _, key := range fields.Keys() {
		set = append(set, bson.E{Key: key, Value: fields[key]})
	}

	return set
}
