package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "memory defaults",
			cfg:  &Config{},
		},
		{
			name: "firebase everywhere",
			cfg: &Config{
				Firebase: &FirebaseConfig{ProjectID: "demo", APIKey: "key"},
				Identity: &IdentityConfig{Provider: IdentityProviderFirebase},
				Store:    &StoreConfig{Provider: StoreProviderFirestore},
			},
		},
		{
			name:    "unknown identity provider",
			cfg:     &Config{Identity: &IdentityConfig{Provider: "ldap"}},
			wantErr: "oneof",
		},
		{
			name:    "unknown pubsub provider",
			cfg:     &Config{PubSub: &PubSubConfig{Provider: "kafka"}},
			wantErr: "oneof",
		},
		{
			name:    "firestore without firebase",
			cfg:     &Config{Store: &StoreConfig{Provider: StoreProviderFirestore}},
			wantErr: "firebase section is required",
		},
		{
			name: "firebase identity without api key",
			cfg: &Config{
				Firebase: &FirebaseConfig{ProjectID: "demo"},
				Identity: &IdentityConfig{Provider: IdentityProviderFirebase},
			},
			wantErr: "firebase.apiKey",
		},
		{
			name:    "mongo without uri",
			cfg:     &Config{Store: &StoreConfig{Provider: StoreProviderMongo}},
			wantErr: "store.mongo.uri",
		},
		{
			name:    "metrics path must be absolute",
			cfg:     &Config{Metrics: &MetricsConfig{Enabled: true, Path: "metrics"}},
			wantErr: "startswith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyDefaults(tt.cfg)

			err := Validate(tt.cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
