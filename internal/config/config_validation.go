// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendMemory
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = DefaultRedisPrefix
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Defaults must be applied first.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.GraphQLEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: graphql endpoint %q must be an absolute http(s) url",
			ErrInvalidAdapterConfigs, cfg.Adapter.GraphQLEndpoint)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a database uri", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendRedis:
		if cfg.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: redis backend needs a url", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if _, err = zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
