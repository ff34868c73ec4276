package mongo

import (
	"context"
	"log/slog"

	"authkit/config"
	"authkit/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the client and pings the primary.
func Connect(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, nil, errors.New("mongo store requires store.mongo.uri")
	}
	if cfg.Database == "" {
		return nil, nil, errors.New("mongo store requires store.mongo.database")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	logger.Info("MongoDB client connected", slog.String("database", cfg.Database))

	return client, client.Database(cfg.Database), nil
}
