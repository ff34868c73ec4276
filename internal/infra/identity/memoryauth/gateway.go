// Package memoryauth is an in-process identity gateway. It keeps accounts in memory,
// reports failures with the same backend codes as the hosted provider, and backs local
// development and tests.
package memoryauth

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/service"
	"authkit/internal/infra/identity/session"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type account struct {
	identity     *entity.Identity
	passwordHash []byte
	disabled     bool
}

// Gateway implements service.IdentityGateway without a backend.
type Gateway struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by lower-cased email
	cost     int
	session  *session.Store
	logger   *slog.Logger
}

// Option customises a Gateway.
type Option func(*Gateway)

// WithBcryptCost sets the hashing cost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(g *Gateway) {
		g.cost = cost
	}
}

// New creates an empty gateway.
func New(logger *slog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		accounts: make(map[string]*account),
		cost:     bcrypt.DefaultCost,
		session:  session.NewStore(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

var _ service.IdentityGateway = (*Gateway)(nil)

// AddAccount seeds an account, e.g. one already linked to federated providers.
func (g *Gateway) AddAccount(identity *entity.Identity, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := strings.ToLower(identity.Email)
	if _, exists := g.accounts[key]; exists {
		return domainerrors.NewBackendError(domainerrors.CodeEmailAlreadyInUse, "EMAIL_EXISTS")
	}
	g.accounts[key] = &account{identity: identity.Clone(), passwordHash: hash}

	return nil
}

// Disable marks an account as disabled; later logins fail with auth/user-disabled.
func (g *Gateway) Disable(email string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if acc, ok := g.accounts[strings.ToLower(email)]; ok {
		acc.disabled = true
	}
}

func (g *Gateway) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := g.verify(email, password)
	if err != nil {
		g.logger.Warn("Login rejected", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.NewAuthError(domainerrors.AuthOpLogin, err)
	}

	g.session.SignIn(identity)
	g.logger.Debug("Signed in", slog.String("uid", identity.UID))

	return identity, nil
}

func (g *Gateway) verify(email, password string) (*entity.Identity, error) {
	if !validEmail(email) {
		return nil, domainerrors.NewBackendError(domainerrors.CodeInvalidEmail, "INVALID_EMAIL")
	}

	g.mu.Lock()
	acc, ok := g.accounts[strings.ToLower(email)]
	g.mu.Unlock()

	if !ok {
		return nil, domainerrors.NewBackendError(domainerrors.CodeUserNotFound, "EMAIL_NOT_FOUND")
	}
	if acc.disabled {
		return nil, domainerrors.NewBackendError(domainerrors.CodeUserDisabled, "USER_DISABLED")
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, domainerrors.NewBackendError(domainerrors.CodeWrongPassword, "INVALID_PASSWORD")
	}

	return acc.identity.Clone(), nil
}

func (g *Gateway) Register(ctx context.Context, email, password string) (*entity.Identity, error) {
	if !validEmail(email) {
		return nil, domainerrors.NewAuthError(domainerrors.AuthOpRegister,
			domainerrors.NewBackendError(domainerrors.CodeInvalidEmail, "INVALID_EMAIL"))
	}
	if len(password) < minPasswordLength {
		return nil, domainerrors.NewAuthError(domainerrors.AuthOpRegister,
			domainerrors.NewBackendError(domainerrors.CodeWeakPassword, "Password should be at least 6 characters"))
	}

	identity := &entity.Identity{
		UID:         uuid.NewString(),
		Email:       email,
		ProviderIDs: []string{entity.ProviderPassword},
	}
	if err := g.AddAccount(identity, password); err != nil {
		g.logger.Warn("Registration rejected", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.NewAuthError(domainerrors.AuthOpRegister, err)
	}

	g.session.SignIn(identity)
	g.logger.Info("Registered account", slog.String("uid", identity.UID))

	return identity.Clone(), nil
}

func (g *Gateway) Logout(ctx context.Context) error {
	if previous := g.session.SignOut(); previous != nil {
		g.logger.Debug("Signed out", slog.String("uid", previous.UID))
	}

	return nil
}

func (g *Gateway) CurrentIdentity() *entity.Identity {
	return g.session.Current()
}

func (g *Gateway) OnAuthStateChanged(listener service.AuthStateListener) service.Unsubscribe {
	return g.session.Subscribe(listener)
}

// Close stops notification delivery.
func (g *Gateway) Close() error {
	g.session.Close()

	return nil
}

func validEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")

	return ok && local != "" && domain != ""
}
