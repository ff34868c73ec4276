// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	"authkit/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	store  repository.DocumentStore[entity.Profile]
	logger *slog.Logger
	now    func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	store repository.DocumentStore[entity.Profile],
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return newProfileService(store, logger, time.Now)
}

func newProfileService(store repository.DocumentStore[entity.Profile], logger *slog.Logger, now func() time.Time) *profileService {
	return &profileService{
		store:  store,
		logger: logger,
		now:    now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFromIdentity persists a profile keyed by the identity's UID.
func (srv *profileService) CreateFromIdentity(
	ctx context.Context,
	identity *entity.Identity,
	extra *entity.ProfileExtra,
) (*entity.Profile, error) {
	if identity == nil || identity.UID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identity with a uid is required")
	}

	profile := srv.profileFromIdentity(identity)
	extra.ApplyTo(profile)

	if err := srv.store.Create(ctx, identity.UID, profile); err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile created", slog.String("uid", identity.UID), slog.String("authProvider", profile.AuthProvider))

	return profile, nil
}

func (srv *profileService) profileFromIdentity(identity *entity.Identity) *entity.Profile {
	now := srv.now()

	profile := &entity.Profile{
		Email:        identity.Email,
		Username:     entity.EmailLocalPart(identity.Email),
		PhoneNumber:  entity.NullableString(identity.PhoneNumber),
		AuthProvider: entity.ProviderPassword,
		DateJoined:   now,
		LastLogin:    now,
		IsActive:     true,
		DisplayName:  identity.DisplayName,
		PhotoURL:     entity.NullableString(identity.PhotoURL),
	}

	if len(identity.ProviderIDs) > 0 && identity.ProviderIDs[0] != "" {
		profile.AuthProvider = identity.ProviderIDs[0]
	}
	if identity.HasProvider(entity.ProviderGoogle) {
		profile.GoogleID = entity.NullableString(identity.UID)
	}
	if identity.HasProvider(entity.ProviderFacebook) {
		profile.FacebookID = entity.NullableString(identity.UID)
	}

	return profile
}

// UpdateProfile rejects unknown field names and mistyped values before touching the store.
func (srv *profileService) UpdateProfile(ctx context.Context, id string, fields repository.Fields) error {
	if err := checkProfileFields(fields); err != nil {
		return err
	}

	update := fields.Clone()
	if _, ok := update[entity.ProfileFieldLastLogin]; !ok {
		update[entity.ProfileFieldLastLogin] = srv.now()
	}

	if err := srv.store.Update(ctx, id, update); err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.String("uid", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Profile updated", slog.String("uid", id), slog.Any("fields", update.Keys()))

	return nil
}

// FindByEmail queries by field when the store supports it and scans the collection otherwise.
func (srv *profileService) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if querier, ok := srv.store.(repository.FieldQuerier[entity.Profile]); ok {
		profile, err := querier.FindFirstByField(ctx, entity.ProfileFieldEmail, email)
		if err != nil {
			return nil, srv.findByEmailFailed(err)
		}

		return profile, nil
	}

	profiles, err := srv.store.ListAll(ctx)
	if err != nil {
		return nil, srv.findByEmailFailed(err)
	}

	for i := range profiles {
		if profiles[i].Email == email {
			return &profiles[i], nil
		}
	}

	return nil, nil
}

func (srv *profileService) findByEmailFailed(err error) error {
	return domainerrors.NewStoreError(domainerrors.StoreOpFindByEmail, srv.store.Collection(), err)
}

// GetProfile returns nil when the profile does not exist.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := srv.store.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (srv *profileService) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := srv.store.ListAll(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profiles, nil
}
