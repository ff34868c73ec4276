// Package persistence selects and wires the document stores behind profiles and session records.
package persistence

import (
	"context"
	"log/slog"

	"authkit/config"
	"authkit/internal/domain/entity"
	"authkit/internal/domain/repository"
	"authkit/internal/domain/service"
	"authkit/internal/infra/persistence/firestore"
	"authkit/internal/infra/persistence/memory"
	"authkit/internal/infra/persistence/mongo"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// Params holds dependencies for the store backend, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App           `optional:"true"`
	Metrics     service.MetricsRecorder `optional:"true"`
}

// Backend is the connection named by store.provider, shared by every collection of the process.
type Backend struct {
	provider  string
	firestore *gcfirestore.Client
	mongo     *mongodriver.Database
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// NewBackend connects to the configured store and closes the connection on stop
func NewBackend(params Params) (*Backend, error) {
	cfg := params.Config.Store
	if cfg == nil {
		cfg = &config.StoreConfig{Provider: config.StoreProviderMemory}
	}

	backend := &Backend{
		provider: cfg.Provider,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}

	switch cfg.Provider {
	case config.StoreProviderFirestore:
		client, err := firestore.NewClient(params.Ctx, params.FirebaseApp, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		backend.firestore = client

	case config.StoreProviderMongo:
		client, db, err := mongo.Connect(params.Ctx, cfg.Mongo, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Disconnect(ctx)
			},
		})
		backend.mongo = db

	case config.StoreProviderMemory:
		params.Logger.Warn("Using in-memory document store; documents are lost on restart")

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}

	params.Logger.Info("Document store ready", slog.String("provider", cfg.Provider))

	return backend, nil
}

func openStore[T any](b *Backend, collection string) repository.DocumentStore[T] {
	var store repository.DocumentStore[T]

	switch b.provider {
	case config.StoreProviderFirestore:
		store = firestore.NewDocumentStore[T](b.firestore, collection)
	case config.StoreProviderMongo:
		store = mongo.NewDocumentStore[T](b.mongo, collection)
	default:
		store = memory.NewDocumentStore[T](collection)
	}

	b.logger.Debug("Opened collection", slog.String("collection", collection))

	if b.metrics != nil {
		return Instrument(store, b.metrics)
	}

	return store
}

// NewProfileStore opens the profile collection
func NewProfileStore(b *Backend, cfg *config.Config) repository.DocumentStore[entity.Profile] {
	return openStore[entity.Profile](b, cfg.Store.ProfileCollection)
}

// NewSessionRecordStore opens the collection the session worker writes to
func NewSessionRecordStore(b *Backend, cfg *config.Config) repository.DocumentStore[entity.SessionRecord] {
	return openStore[entity.SessionRecord](b, cfg.Store.SessionEventCollection)
}
