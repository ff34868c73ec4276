// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/delivery/http/response"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	"authkit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Navigation targets reported by the root gate.
const (
	RouteSignedIn  = "(tabs)"
	RouteSignedOut = "(auth)"
)

// CredentialsRequest is the body of login requests.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of register requests. Profile fields are optional.
type RegisterRequest struct {
	CredentialsRequest

	Username    *string `json:"username,omitempty" validate:"omitempty,min=1"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,e164"`
	PhotoURL    *string `json:"photoURL,omitempty" validate:"omitempty,url"`
}

func (r *RegisterRequest) extra() *entity.ProfileExtra {
	return &entity.ProfileExtra{
		Username:    r.Username,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DisplayName: r.DisplayName,
		PhoneNumber: entity.NullableOf(r.PhoneNumber),
		PhotoURL:    entity.NullableOf(r.PhotoURL),
	}
}

// AuthStateResponse is the root navigation gate's view of the session.
type AuthStateResponse struct {
	Status   entity.AuthStatus `json:"status"`
	Loading  bool              `json:"loading"`
	Identity *entity.Identity  `json:"identity"`
	Route    string            `json:"route"`
}

// AuthHandler serves the login, register and logout screens and the root gate.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, profiles usecase.ProfileUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		profiles: profiles,
		logger:   logger,
	}
}

func requireCredentials(email, password string) error {
	if email == "" || password == "" {
		return domainerrors.ErrMissingCredentials
	}

	return nil
}

// Login signs in and refreshes the profile's lastLogin.
func (h *AuthHandler) Login(c echo.Context) error {
	var input CredentialsRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid login input")
	}
	if err := requireCredentials(input.Email, input.Password); err != nil {
		return err
	}

	ctx := c.Request().Context()
	identity, err := h.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	// The session is established even when the profile cannot be touched.
	if err := h.profiles.UpdateProfile(ctx, identity.UID, repository.Fields{}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to refresh lastLogin",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	}

	return response.Success(c, http.StatusOK, identity, "Login successful")
}

// Register creates the account, then its profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var input RegisterRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid registration input")
	}
	if err := requireCredentials(input.Email, input.Password); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	identity, err := h.auth.Register(ctx, input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profiles.CreateFromIdentity(ctx, identity, input.extra())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"identity": identity,
		"profile":  profile,
	}, "Registration successful")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// State reports where the root navigator should send the user; route is empty while loading.
func (h *AuthHandler) State(c echo.Context) error {
	state := h.auth.State()

	body := AuthStateResponse{
		Status:   state.Status(),
		Loading:  state.Loading,
		Identity: state.Identity,
	}
	switch body.Status {
	case entity.AuthStatusAuthenticated:
		body.Route = RouteSignedIn
	case entity.AuthStatusUnauthenticated:
		body.Route = RouteSignedOut
	}

	return response.Success(c, http.StatusOK, body, "")
}
