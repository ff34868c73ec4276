// Package service defines the contracts of the external collaborators the application depends on.
package service

import (
	"context"

	"authkit/internal/domain/entity"
)

// AuthStateListener receives the identity after every session change; nil means signed out.
type AuthStateListener func(identity *entity.Identity)

// Unsubscribe releases a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// IdentityGateway is the capability set of the identity backend.
// Every failing operation returns a *domainerrors.AuthError; nothing is retried.
type IdentityGateway interface {
	// Login verifies the credentials and starts a session.
	Login(ctx context.Context, email, password string) (*entity.Identity, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, email, password string) (*entity.Identity, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// CurrentIdentity reads the cached session without contacting the backend.
	CurrentIdentity() *entity.Identity

	// OnAuthStateChanged registers a listener. It is called once with the current identity
	// and then on every sign-in or sign-out, in order, from a single dispatcher goroutine.
	OnAuthStateChanged(listener AuthStateListener) Unsubscribe
}
