package config

import (
	"strings"
	"time"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultProfileCollection  = "users"
	defaultSessionCollection  = "sessionEvents"
	defaultMetricsPath        = "/metrics"
)

// EnvLocal is the env.env value for a developer machine.
const EnvLocal = "local"

// Identity, store and pubsub provider names.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderMemory   = "memory"

	StoreProviderFirestore = "firestore"
	StoreProviderMongo     = "mongo"
	StoreProviderMemory    = "memory"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project used by the firebase identity provider and the firestore store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Store *StoreConfig `json:"store" yaml:"store"`

	// PubSub configuration for session event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project credentials
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Web API key used for password sign-in through the Identity Toolkit API
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Revoke the user's refresh tokens on logout instead of only dropping the local session
	RevokeOnLogout bool `json:"revokeOnLogout" yaml:"revokeOnLogout"`
}

// IdentityConfig selects the identity gateway implementation
type IdentityConfig struct {
	// Provider type: "firebase" or "memory"
	Provider string `json:"provider" yaml:"provider" validate:"oneof=firebase memory"`
}

// StoreConfig selects the document store backing profiles
type StoreConfig struct {
	// Provider type: "firestore", "mongo" or "memory"
	Provider string `json:"provider" yaml:"provider" validate:"oneof=firestore mongo memory"`

	// Collection holding profile documents
	ProfileCollection string `json:"profileCollection" yaml:"profileCollection" validate:"required"`

	// Collection the session worker records received session events in
	SessionEventCollection string `json:"sessionEventCollection" yaml:"sessionEventCollection" validate:"required"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`
}

// MongoConfig defines the MongoDB connection for the mongo store provider
type MongoConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig controls the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path" validate:"omitempty,startswith=/"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the service can rely on them being present.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityProviderMemory
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = StoreProviderMemory
	}
	if cfg.Store.ProfileCollection == "" {
		cfg.Store.ProfileCollection = defaultProfileCollection
	}
	if cfg.Store.SessionEventCollection == "" {
		cfg.Store.SessionEventCollection = defaultSessionCollection
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}
