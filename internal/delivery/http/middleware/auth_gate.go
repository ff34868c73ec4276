package middleware

import (
	deliverycontext "authkit/internal/delivery/context"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthGate admits requests only once the auth state has resolved to a signed-in identity.
type AuthGate struct {
	auth usecase.AuthUsecase
}

func NewAuthGate(auth usecase.AuthUsecase) *AuthGate {
	return &AuthGate{auth: auth}
}

// Require answers 503 while the state is loading and 401 when nobody is signed in.
func (g *AuthGate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := g.auth.State()

		switch {
		case state.Loading:
			return domainerrors.ErrAuthStateLoading
		case state.Identity == nil:
			return domainerrors.ErrNotAuthenticated
		}

		deliverycontext.SetIdentity(c, state.Identity)

		return next(c)
	}
}
