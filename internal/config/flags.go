package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args and returns the remaining
// positional arguments.
//
// Flags:
//
//	-e graphql endpoint url
//	-t request timeout (e.g., "15s")
//	-token api token
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-storage storage backend (memory, sqlite, postgres, redis)
//	-d database DSN
//	-redis-url redis url
//	-redis-prefix redis key prefix
//	-refresh-interval refresh worker interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var endpoint string
	var requestTimeout time.Duration
	var apiToken string
	var logLevel string
	var logFile string
	var backend string
	var databaseDSN string
	var redisURL string
	var redisPrefix string
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("content-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&endpoint, "e", "", "GraphQL endpoint URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&apiToken, "token", "", "API token")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&backend, "storage", "", "Storage backend: memory, sqlite, postgres, redis")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&redisPrefix, "redis-prefix", "", "Redis key prefix")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIToken: apiToken,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				URL:    redisURL,
				Prefix: redisPrefix,
			},
		},
		Adapter: Adapter{
			GraphQLEndpoint: endpoint,
			RequestTimeout:  requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
