// Package pubsub publishes session events to a message queue.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"authkit/config"
	"authkit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const metricsComponent = "pubsub"

// noopPublisher drops events when Pub/Sub is not configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type instrumentedPublisher struct {
	service.EventPublisher
	metrics service.MetricsRecorder
}

func (p *instrumentedPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	start := time.Now()
	err := p.EventPublisher.PublishSessionEvent(ctx, event)

	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeFailure
	}
	p.metrics.RecordBackendCall(metricsComponent, "publish_"+event.Type, outcome, time.Since(start))

	return err
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// NewEventPublisher creates the EventPublisher named by pubsub.provider and closes it on stop
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	if params.Metrics != nil {
		return &instrumentedPublisher{EventPublisher: publisher, metrics: params.Metrics}, nil
	}

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, session events are not published")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing session events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
