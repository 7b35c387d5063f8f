// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backends accepted by [Storage.Backend].
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Defaults applied after all sources are merged.
const (
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
	DefaultRedisPrefix     = "content-keeper"
	DefaultLogLevel        = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-content-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the API token.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the local collection store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote GraphQL endpoint and its timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIToken is sent as "Authorization: Bearer <token>" on every request.
	// Optional; the content API may be open.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile overrides the log destination. Empty means a "logs" file next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the collection store backends.
type Storage struct {
	// Backend is one of memory, sqlite, postgres or redis.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the sqlite and postgres backends.
type DB struct {
	// DSN is a file path for sqlite or a connection URL for postgres.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	// URL in redis://[user:pass@]host:port/db form.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`

	// Prefix namespaces the collection keys.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Adapter holds configuration of the remote content API.
type Adapter struct {
	// GraphQLEndpoint is the absolute URL of the GraphQL API.
	// Env: ADAPTER_GRAPHQL_ENDPOINT
	GraphQLEndpoint string `env:"GRAPHQL_ENDPOINT"`

	// RequestTimeout bounds a single remote call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the refresh worker reloads every
	// collection from the server.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It returns the positional arguments left after flag parsing so the caller
// can dispatch commands on them.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
