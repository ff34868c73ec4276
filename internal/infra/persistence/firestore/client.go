package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
)

// NewClient opens the Firestore client of the shared Firebase app.
func NewClient(ctx context.Context, app *firebase.App, logger *slog.Logger) (*firestore.Client, error) {
	if app == nil {
		return nil, errors.New("firestore store requires the firebase section in config")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	logger.Info("Firestore client initialized")

	return client, nil
}
