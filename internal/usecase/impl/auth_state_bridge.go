package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/domain/entity"
	"authkit/internal/domain/service"
	"authkit/internal/usecase"

	"go.uber.org/fx"
)

// AuthStateBridgeParams holds dependencies for the auth state bridge, injected by Fx
type AuthStateBridgeParams struct {
	fx.In

	Lc      fx.Lifecycle
	Gateway service.IdentityGateway
	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// authStateBridge mirrors the gateway's session into a process-wide AuthState.
type authStateBridge struct {
	gateway service.IdentityGateway
	metrics service.MetricsRecorder
	logger  *slog.Logger

	mu      sync.RWMutex
	state   entity.AuthState
	changed chan struct{}

	subMu       sync.Mutex
	unsubscribe service.Unsubscribe
}

// NewAuthStateBridge creates the bridge and ties its subscription to the application lifecycle.
func NewAuthStateBridge(params AuthStateBridgeParams) usecase.AuthUsecase {
	bridge := newAuthStateBridge(params.Gateway, params.Logger, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			bridge.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			bridge.Stop()

			return nil
		},
	})

	return bridge
}

func newAuthStateBridge(gateway service.IdentityGateway, logger *slog.Logger, metrics service.MetricsRecorder) *authStateBridge {
	return &authStateBridge{
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
		state:   entity.InitialAuthState(),
		changed: make(chan struct{}),
	}
}

// Start subscribes to the gateway. It is a no-op while already subscribed.
func (b *authStateBridge) Start() {
	b.subMu.Lock()
	defer b.subMu.Unlock()

	if b.unsubscribe != nil {
		return
	}
	b.unsubscribe = b.gateway.OnAuthStateChanged(b.onAuthStateChanged)
	b.logger.Info("Auth state bridge subscribed")
}

// Stop releases the subscription. The last state is kept.
func (b *authStateBridge) Stop() {
	b.subMu.Lock()
	defer b.subMu.Unlock()

	if b.unsubscribe == nil {
		return
	}
	b.unsubscribe()
	b.unsubscribe = nil
	b.logger.Info("Auth state bridge unsubscribed")
}

func (b *authStateBridge) onAuthStateChanged(identity *entity.Identity) {
	b.mu.Lock()
	b.state = entity.AuthState{Identity: identity.Clone(), Loading: false}
	close(b.changed)
	b.changed = make(chan struct{})
	status := b.state.Status()
	b.mu.Unlock()

	attrs := []any{slog.String("status", string(status))}
	if identity != nil {
		attrs = append(attrs, slog.String("uid", identity.UID))
	}
	b.logger.Info("Auth state changed", attrs...)

	if b.metrics != nil {
		b.metrics.RecordAuthTransition(string(status))
	}
}

func (b *authStateBridge) State() entity.AuthState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return entity.AuthState{Identity: b.state.Identity.Clone(), Loading: b.state.Loading}
}

func (b *authStateBridge) Changed() <-chan struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.changed
}

func (b *authStateBridge) AwaitResolved(ctx context.Context) (entity.AuthState, error) {
	for {
		b.mu.RLock()
		state := b.state
		changed := b.changed
		b.mu.RUnlock()

		if !state.Loading {
			return entity.AuthState{Identity: state.Identity.Clone()}, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return entity.InitialAuthState(), ctx.Err()
		}
	}
}

func (b *authStateBridge) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := b.gateway.Login(ctx, email, password)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Login failed", slog.Any("error", err))

		return nil, err
	}

	return identity, nil
}

func (b *authStateBridge) Register(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := b.gateway.Register(ctx, email, password)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Registration failed", slog.Any("error", err))

		return nil, err
	}

	return identity, nil
}

func (b *authStateBridge) Logout(ctx context.Context) error {
	if err := b.gateway.Logout(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Logout failed", slog.Any("error", err))

		return err
	}

	return nil
}
