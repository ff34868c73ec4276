// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/repository"
)

// ProfileUsecase manages the profile documents of the "users" collection.
// Every store failure surfaces as a *domainerrors.StoreError.
type ProfileUsecase interface {
	// CreateFromIdentity builds a profile from defaults, then the identity, then extra, and stores it under identity.UID.
	CreateFromIdentity(ctx context.Context, identity *entity.Identity, extra *entity.ProfileExtra) (*entity.Profile, error)

	// UpdateProfile merges fields into the stored profile, stamping lastLogin unless fields sets it.
	UpdateProfile(ctx context.Context, id string, fields repository.Fields) error

	// FindByEmail returns the first profile whose email matches exactly, or nil.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
	ListProfiles(ctx context.Context) ([]entity.Profile, error)
}
