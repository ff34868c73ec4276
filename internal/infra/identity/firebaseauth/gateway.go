// Package firebaseauth implements the identity gateway on Firebase Authentication.
// Password sign-in and sign-up go through the Identity Toolkit API; identity details and
// token revocation go through the Firebase Admin SDK.
package firebaseauth

import (
	"context"
	"log/slog"

	"authkit/config"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/service"
	"authkit/internal/infra/identity/session"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// userDirectory is the subset of the Admin Auth client the gateway uses.
type userDirectory interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Gateway implements service.IdentityGateway against Firebase.
type Gateway struct {
	passwords      passwordAuthenticator
	users          userDirectory
	revokeOnLogout bool
	session        *session.Store
	logger         *slog.Logger
}

var _ service.IdentityGateway = (*Gateway)(nil)

// New creates a Firebase gateway from an initialised Firebase app.
func New(ctx context.Context, app *firebase.App, cfg *config.FirebaseConfig, logger *slog.Logger) (*Gateway, error) {
	if app == nil || cfg == nil {
		return nil, errors.New("firebase configuration is required for the firebase identity provider")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("firebase.apiKey is required for password sign-in")
	}

	toolkit, err := newToolkitClient(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	users, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newGateway(toolkit, users, cfg.RevokeOnLogout, logger), nil
}

func newGateway(passwords passwordAuthenticator, users userDirectory, revokeOnLogout bool, logger *slog.Logger) *Gateway {
	return &Gateway{
		passwords:      passwords,
		users:          users,
		revokeOnLogout: revokeOnLogout,
		session:        session.NewStore(),
		logger:         logger,
	}
}

func (g *Gateway) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	uid, err := g.passwords.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, g.fail(domainerrors.AuthOpLogin, err)
	}

	identity, err := g.lookup(ctx, uid)
	if err != nil {
		return nil, g.fail(domainerrors.AuthOpLogin, err)
	}

	g.session.SignIn(identity)
	g.logger.Info("Signed in", slog.String("uid", uid))

	return identity, nil
}

func (g *Gateway) Register(ctx context.Context, email, password string) (*entity.Identity, error) {
	uid, err := g.passwords.SignUp(ctx, email, password)
	if err != nil {
		return nil, g.fail(domainerrors.AuthOpRegister, err)
	}

	identity, err := g.lookup(ctx, uid)
	if err != nil {
		return nil, g.fail(domainerrors.AuthOpRegister, err)
	}

	g.session.SignIn(identity)
	g.logger.Info("Registered account", slog.String("uid", uid))

	return identity, nil
}

func (g *Gateway) Logout(ctx context.Context) error {
	current := g.session.Current()
	if current != nil && g.revokeOnLogout {
		if err := g.users.RevokeRefreshTokens(ctx, current.UID); err != nil {
			return g.fail(domainerrors.AuthOpLogout, err)
		}
	}

	if previous := g.session.SignOut(); previous != nil {
		g.logger.Info("Signed out", slog.String("uid", previous.UID))
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

func (g *Gateway) lookup(ctx context.Context, uid string) (*entity.Identity, error) {
	record, err := g.users.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load user %s", uid)
	}

	return identityFromRecord(record), nil
}

func (g *Gateway) fail(op string, err error) error {
	authErr := domainerrors.NewAuthError(op, toBackendError(err))
	g.logger.Warn("Identity backend call failed",
		slog.String("op", op),
		slog.String("code", authErr.BackendCode()),
		slog.Any("error", err),
	)

	return authErr
}

func identityFromRecord(record *auth.UserRecord) *entity.Identity {
	identity := &entity.Identity{ProviderIDs: []string{}}
	if record.UserInfo != nil {
		identity.UID = record.UID
		identity.Email = record.Email
		identity.PhoneNumber = record.PhoneNumber
		identity.DisplayName = record.DisplayName
		identity.PhotoURL = record.PhotoURL
	}

	for _, info := range record.ProviderUserInfo {
		if info != nil && info.ProviderID != "" {
			identity.ProviderIDs = append(identity.ProviderIDs, info.ProviderID)
		}
	}

	return identity
}
