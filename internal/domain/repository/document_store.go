// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"sort"
)

// Fields is a partial document keyed by stored field name.
type Fields map[string]any

// Keys returns the field names in a stable order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy.
func (f Fields) Clone() Fields {
	cloned := make(Fields, len(f))
	for k, v := range f {
		cloned[k] = v
	}

	return cloned
}

// DocumentStore is the CRUD contract over one named collection whose documents have shape T.
// Every failure is a *domainerrors.StoreError naming the failed operation.
type DocumentStore[T any] interface {
	// Collection returns the collection name.
	Collection() string

	// ListAll fetches the whole collection. Order is backend-defined.
	ListAll(ctx context.Context) ([]T, error)

	// GetByID fetches one document; a missing document yields nil and no error.
	GetByID(ctx context.Context, id string) (*T, error)

	// Create writes the document at id, replacing any previous content.
	Create(ctx context.Context, id string, record *T) error

	// Update merges the supplied fields into an existing document and fails if it is absent.
	Update(ctx context.Context, id string, fields Fields) error

	// Delete removes the document. Deleting a missing document succeeds.
	Delete(ctx context.Context, id string) error
}

// FieldQuerier is implemented by stores that can look a document up by field value
// without reading the whole collection.
type FieldQuerier[T any] interface {
	// FindFirstByField returns the first document whose field equals value, or nil.
	FindFirstByField(ctx context.Context, field string, value any) (*T, error)
}

// Closer is implemented by stores that hold a client connection.
type Closer interface {
	Close() error
}
