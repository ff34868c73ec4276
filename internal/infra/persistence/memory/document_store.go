// Package memory is a DocumentStore kept in process memory. Documents are held in their
// JSON form, so T's json tags must match the stored field names used in updates.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"

	"github.com/pkg/errors"
)

// DocumentStore implements repository.DocumentStore[T] over a map.
type DocumentStore[T any] struct {
	mu         sync.RWMutex
	collection string
	order      []string
	documents  map[string]map[string]json.RawMessage
}

// NewDocumentStore creates an empty collection.
func NewDocumentStore[T any](collection string) *DocumentStore[T] {
	return &DocumentStore[T]{
		collection: collection,
		documents:  make(map[string]map[string]json.RawMessage),
	}
}

var _ repository.DocumentStore[struct{}] = (*DocumentStore[struct{}])(nil)

func (s *DocumentStore[T]) Collection() string {
	return s.collection
}

// ListAll returns documents in insertion order.
func (s *DocumentStore[T]) ListAll(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0, len(s.order))
	for _, id := range s.order {
		record, err := decode[T](s.documents[id])
		if err != nil {
			return nil, s.fail(domainerrors.StoreOpListAll, errors.Wrapf(err, "decode %s", id))
		}
		records = append(records, *record)
	}

	return records, nil
}

func (s *DocumentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, nil
	}

	record, err := decode[T](doc)
	if err != nil {
		return nil, s.fail(domainerrors.StoreOpGetByID, errors.Wrapf(err, "decode %s", id))
	}

	return record, nil
}

func (s *DocumentStore[T]) Create(ctx context.Context, id string, record *T) error {
	if record == nil {
		return s.fail(domainerrors.StoreOpCreate, errors.New("record is nil"))
	}

	doc, err := encode(record)
	if err != nil {
		return s.fail(domainerrors.StoreOpCreate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.documents[id]; !exists {
		s.order = append(s.order, id)
	}
	s.documents[id] = doc

	return nil
}

func (s *DocumentStore[T]) Update(ctx context.Context, id string, fields repository.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return s.fail(domainerrors.StoreOpUpdate, errors.Wrapf(domainerrors.ErrDocumentNotFound, "%s/%s", s.collection, id))
	}

	merged := make(map[string]json.RawMessage, len(doc)+len(fields))
	for k, v := range doc {
		merged[k] = v
	}
	for _, key := range fields.Keys() {
		raw, err := json.Marshal(fields[key])
		if err != nil {
			return s.fail(domainerrors.StoreOpUpdate, errors.Wrapf(err, "encode field %s", key))
		}
		merged[key] = raw
	}

	// Reject updates that no longer decode into T instead of storing a corrupt document.
	if _, err := decode[T](merged); err != nil {
		return s.fail(domainerrors.StoreOpUpdate, err)
	}
	s.documents[id] = merged

	return nil
}

func (s *DocumentStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return nil
	}
	delete(s.documents, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

func (s *DocumentStore[T]) fail(op string, err error) error {
	return domainerrors.NewStoreError(op, s.collection, err)
}

func encode[T any](record *T) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "encode record")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "record is not a JSON object")
	}

	return doc, nil
}

func decode[T any](doc map[string]json.RawMessage) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	record := new(T)
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}

	return record, nil
}
