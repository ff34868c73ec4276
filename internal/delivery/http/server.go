package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"authkit/config"
	"authkit/internal/delivery"
	"authkit/internal/delivery/http/middleware"
	"authkit/internal/delivery/http/router"
	"authkit/internal/delivery/http/validator"
	"authkit/internal/domain/lifecycle"
	"authkit/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	RouterParams    router.RouterParams
	ErrorMiddleware *middleware.ErrorMiddleware
	RequestID       *middleware.RequestIDMiddleware
	Metrics         *metrics.Collector `optional:"true"`
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server and registers its shutdown hook.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := newEcho(params)

	server := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: server.stop,
	})

	return server, nil
}

func newEcho(params HTTPParams) *echo.Echo {
	cfg := params.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(params.RequestID.Process)
	e.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		WithRequestID: false,
		Filters:       []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	if cfg.Metrics != nil && cfg.Metrics.Enabled && params.Metrics != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
