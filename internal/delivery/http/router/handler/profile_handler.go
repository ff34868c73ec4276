package handler

import (
	"net/http"
	"time"

	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/delivery/http/response"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	"authkit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchRequest binds the profile search query.
type SearchRequest struct {
	Email string `query:"email" validate:"required"`
}

// ProfileHandler serves the profile views. Every route sits behind the auth gate.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profiles.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// Me returns the profile of the signed-in identity.
func (h *ProfileHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	return h.get(c, identity.UID)
}

func (h *ProfileHandler) Get(c echo.Context) error {
	return h.get(c, c.Param("id"))
}

func (h *ProfileHandler) get(c echo.Context, id string) error {
	profile, err := h.profiles.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if profile == nil {
		return domainerrors.ErrProfileNotFound.WithDetails(id)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Search finds a profile by exact email.
func (h *ProfileHandler) Search(c echo.Context) error {
	var input SearchRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid search query")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	profile, err := h.profiles.FindByEmail(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if profile == nil {
		return domainerrors.ErrProfileNotFound.WithDetails(input.Email)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// privilegedProfileFields cannot be changed through the HTTP surface.
var privilegedProfileFields = []string{entity.ProfileFieldIsStaff, entity.ProfileFieldIsSuperuser}

// Update merges the JSON object body into the signed-in identity's own profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	id := c.Param("id")
	if id != identity.UID {
		return domainerrors.ErrProfileForbidden.WithDetails(id)
	}

	var fields map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object")
	}

	for _, key := range privilegedProfileFields {
		if _, ok := fields[key]; ok {
			return domainerrors.ErrProfileForbidden.WithDetails(key + " cannot be changed")
		}
	}

	update, err := decodeTimestamps(fields)
	if err != nil {
		return err
	}

	if err := h.profiles.UpdateProfile(c.Request().Context(), id, update); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profiles.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// decodeTimestamps turns RFC 3339 strings of timestamp fields into time.Time so every store persists a timestamp.
func decodeTimestamps(fields map[string]any) (repository.Fields, error) {
	update := repository.Fields(fields)
	for _, key := range []string{entity.ProfileFieldDateJoined, entity.ProfileFieldLastLogin} {
		raw, ok := update[key]
		if !ok {
			continue
		}

		text, isString := raw.(string)
		if !isString {
			return nil, domainerrors.ErrValidationFailed.WithDetails(key + " must be an RFC 3339 timestamp")
		}
		parsed, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(key + " must be an RFC 3339 timestamp")
		}
		update[key] = parsed
	}

	return update, nil
}
