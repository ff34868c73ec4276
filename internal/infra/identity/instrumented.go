package identity

import (
	"context"
	"time"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/service"
)

const metricsComponent = "identity"

type instrumentedGateway struct {
	service.IdentityGateway
	metrics service.MetricsRecorder
}

// Instrument records the outcome and latency of every backend round trip made by gateway.
func Instrument(gateway service.IdentityGateway, metrics service.MetricsRecorder) service.IdentityGateway {
	return &instrumentedGateway{IdentityGateway: gateway, metrics: metrics}
}

func (g *instrumentedGateway) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	start := time.Now()
	identity, err := g.IdentityGateway.Login(ctx, email, password)
	g.record("login", start, err)

	return identity, err
}

func (g *instrumentedGateway) Register(ctx context.Context, email, password string) (*entity.Identity, error) {
	start := time.Now()
	identity, err := g.IdentityGateway.Register(ctx, email, password)
	g.record("register", start, err)

	return identity, err
}

func (g *instrumentedGateway) Logout(ctx context.Context) error {
	start := time.Now()
	err := g.IdentityGateway.Logout(ctx)
	g.record("logout", start, err)

	return err
}

func (g *instrumentedGateway) record(operation string, start time.Time, err error) {
	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeFailure
	}
	g.metrics.RecordBackendCall(metricsComponent, operation, outcome, time.Since(start))
}
