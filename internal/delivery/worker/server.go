// Package worker is the delivery of the session worker, the Pub/Sub push target for session events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"authkit/config"
	"authkit/internal/delivery"
	"authkit/internal/delivery/http/middleware"
	"authkit/internal/delivery/http/router/handler"
	workerhandler "authkit/internal/delivery/worker/handler"
	"authkit/internal/domain/lifecycle"
	"authkit/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	PushHandler     *workerhandler.PushHandler
	ErrorMiddleware *middleware.ErrorMiddleware
	RequestID       *middleware.RequestIDMiddleware
	Metrics         *metrics.Collector `optional:"true"`
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(echomiddleware.Recover())
	e.Use(params.RequestID.Process)
	e.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		Filters: []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))

	e.GET("/health", handler.HealthCheck)

	if cfg := params.Cfg.Metrics; cfg != nil && cfg.Enabled && params.Metrics != nil {
		e.GET(cfg.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)
	e.GET("/sessions/:uid", params.PushHandler.History)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
