package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks provider names and that every selected provider has the section it needs.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	usesFirebase := cfg.Identity.Provider == IdentityProviderFirebase || cfg.Store.Provider == StoreProviderFirestore
	if usesFirebase && cfg.Firebase == nil {
		return errors.New("firebase section is required by identity.provider=firebase and store.provider=firestore")
	}
	if cfg.Identity.Provider == IdentityProviderFirebase && cfg.Firebase.APIKey == "" {
		return errors.New("firebase.apiKey is required by identity.provider=firebase")
	}
	if cfg.Store.Provider == StoreProviderMongo && (cfg.Store.Mongo == nil || cfg.Store.Mongo.URI == "") {
		return errors.New("store.mongo.uri is required by store.provider=mongo")
	}

	return nil
}
