// Package firebaseapp initialises the Firebase app shared by the identity gateway and the Firestore store.
package firebaseapp

import (
	"context"
	"log/slog"

	"authkit/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// New returns nil when the firebase section is not configured; consumers that need it report the error.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.String("projectId", cfg.Firebase.ProjectID))

	return app, nil
}
