package usecase

import (
	"context"

	"authkit/internal/domain/entity"
)

// AuthUsecase exposes the process-wide auth state and the session operations.
// Login, Register and Logout never modify the state directly; it changes only
// when the identity backend reports a session change.
type AuthUsecase interface {
	// State returns a consistent snapshot.
	State() entity.AuthState

	// Changed returns a channel that is closed on the next state transition.
	Changed() <-chan struct{}

	// AwaitResolved blocks until the state has left Loading or ctx is done.
	AwaitResolved(ctx context.Context) (entity.AuthState, error)

	Login(ctx context.Context, email, password string) (*entity.Identity, error)
	Register(ctx context.Context, email, password string) (*entity.Identity, error)
	Logout(ctx context.Context) error
}
