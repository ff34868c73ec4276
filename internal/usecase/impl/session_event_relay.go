package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/lifecycle"
	"authkit/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const relayQueueSize = 64

// SessionEventRelay publishes signed_in / signed_out events whenever the signed-in account changes.
type SessionEventRelay struct {
	gateway   service.IdentityGateway
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	lifeMu      sync.Mutex
	unsubscribe service.Unsubscribe
	wg          sync.WaitGroup

	mu     sync.Mutex
	events chan *service.SessionEvent
	primed bool
	last   *entity.Identity
}

// SessionEventRelayParams holds dependencies for the relay, injected by Fx
type SessionEventRelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Gateway   service.IdentityGateway
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSessionEventRelay creates the relay and runs it for the lifetime of the application.
func NewSessionEventRelay(params SessionEventRelayParams) *SessionEventRelay {
	relay := newSessionEventRelay(params.Gateway, params.Publisher, params.Logger, time.Now)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			relay.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			relay.Stop()

			return nil
		},
	})

	return relay
}

func newSessionEventRelay(
	gateway service.IdentityGateway,
	publisher service.EventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) *SessionEventRelay {
	return &SessionEventRelay{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Start subscribes to the gateway and starts the publishing worker.
func (r *SessionEventRelay) Start() {
	r.lifeMu.Lock()
	defer r.lifeMu.Unlock()

	if r.unsubscribe != nil {
		return
	}

	events := make(chan *service.SessionEvent, relayQueueSize)
	r.mu.Lock()
	r.events = events
	r.primed = false
	r.last = nil
	r.mu.Unlock()

	r.wg.Add(1)
	go r.publishLoop(events)

	r.unsubscribe = r.gateway.OnAuthStateChanged(r.onAuthStateChanged)
}

// Stop unsubscribes and waits for queued events to be published.
func (r *SessionEventRelay) Stop() {
	r.lifeMu.Lock()
	defer r.lifeMu.Unlock()

	if r.unsubscribe == nil {
		return
	}
	r.unsubscribe()
	r.unsubscribe = nil

	r.mu.Lock()
	events := r.events
	r.events = nil
	r.mu.Unlock()

	close(events)
	r.wg.Wait()
}

func (r *SessionEventRelay) onAuthStateChanged(identity *entity.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.events == nil {
		return
	}

	// The first notification reports the session that existed before the relay started.
	if !r.primed {
		r.primed = true
		r.last = identity.Clone()

		return
	}

	previous := r.last
	r.last = identity.Clone()

	if previous != nil && (identity == nil || identity.UID != previous.UID) {
		r.enqueue(service.SessionEventSignedOut, previous)
	}
	if identity != nil && (previous == nil || identity.UID != previous.UID) {
		r.enqueue(service.SessionEventSignedIn, identity)
	}
}

func (r *SessionEventRelay) enqueue(eventType string, identity *entity.Identity) {
	event := &service.SessionEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UID:        identity.UID,
		Email:      identity.Email,
		OccurredAt: r.now().UTC(),
	}

	select {
	case r.events <- event:
	default:
		r.logger.Warn("Session event queue full, dropping event",
			slog.String("type", eventType),
			slog.String("uid", identity.UID),
		)
	}
}

func (r *SessionEventRelay) publishLoop(events <-chan *service.SessionEvent) {
	defer r.wg.Done()

	for event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		if err := r.publisher.PublishSessionEvent(ctx, event); err != nil {
			r.logger.Error("Failed to publish session event",
				slog.String("event_id", event.EventID),
				slog.String("type", event.Type),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}
