// Package identity selects and wires the identity gateway.
package identity

import (
	"context"
	"log/slog"

	"authkit/config"
	"authkit/internal/domain/service"
	"authkit/internal/infra/identity/firebaseauth"
	"authkit/internal/infra/identity/memoryauth"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type closableGateway interface {
	service.IdentityGateway
	Close() error
}

// GatewayParams holds dependencies for the IdentityGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App           `optional:"true"`
	Metrics     service.MetricsRecorder `optional:"true"`
}

// NewGateway creates the IdentityGateway named by identity.provider
func NewGateway(params GatewayParams) (service.IdentityGateway, error) {
	provider := config.IdentityProviderMemory
	if params.Config.Identity != nil && params.Config.Identity.Provider != "" {
		provider = params.Config.Identity.Provider
	}

	var gateway closableGateway

	switch provider {
	case config.IdentityProviderFirebase:
		fb, err := firebaseauth.New(params.Ctx, params.FirebaseApp, params.Config.Firebase, params.Logger)
		if err != nil {
			return nil, err
		}
		gateway = fb

	case config.IdentityProviderMemory:
		params.Logger.Warn("Using in-memory identity gateway; accounts are lost on restart")
		gateway = memoryauth.New(params.Logger)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}

	params.Logger.Info("Identity gateway ready", slog.String("provider", provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gateway.Close()
		},
	})

	if params.Metrics != nil {
		return Instrument(gateway, params.Metrics), nil
	}

	return gateway, nil
}
