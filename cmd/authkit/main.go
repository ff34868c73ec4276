package main

import (
	"context"
	"log/slog"
	"os"

	"authkit/config"
	"authkit/internal/delivery"
	"authkit/internal/delivery/http"
	"authkit/internal/delivery/http/middleware"
	"authkit/internal/delivery/http/router/handler"
	"authkit/internal/infra/firebaseapp"
	"authkit/internal/infra/identity"
	logs "authkit/internal/infra/log"
	"authkit/internal/infra/metrics"
	"authkit/internal/infra/persistence"
	"authkit/internal/infra/pubsub"
	"authkit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			// The relay has no consumers; invoking it registers its lifecycle hooks.
			func(*impl.SessionEventRelay) {},
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseapp.New,
		metrics.New,
		metrics.AsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewBackend,
			persistence.NewProfileStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewGateway,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewAuthStateBridge,
			impl.NewSessionEventRelay,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewAuthGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
