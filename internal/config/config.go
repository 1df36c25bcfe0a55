// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the bookmark
// merger. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Merger holds the knobs of the initial bookmark merge.
	Merger Merger `envPrefix:"MERGER_"`

	// Storage holds configuration for the SQL persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound integrations: the remote update
	// source and the favicon fetcher.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted (e.g. "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Merger configures the reconciliation of a remote bookmark tree into the
// local one. It is passed explicitly into the merger; nothing in the merge
// reads global state.
type Merger struct {
	// MaxDepth caps the depth of the remote forest. Remote nodes at this
	// depth are kept as childless leaves.
	// Env: MERGER_MAX_DEPTH
	MaxDepth int `env:"MAX_DEPTH"`

	// CacheGUID identifies this client. It seeds the suffixes of positions
	// generated for local-only bookmarks.
	// Env: MERGER_CACHE_GUID
	CacheGUID string `env:"CACHE_GUID"`

	// ReuploadLegacyBookmarks marks remote entities committed in the legacy
	// format (no full title) for re-commit after the merge.
	// Env: MERGER_REUPLOAD_LEGACY_BOOKMARKS
	ReuploadLegacyBookmarks bool `env:"REUPLOAD_LEGACY_BOOKMARKS"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name, a file path for SQLite or a connection
	// URL for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	// UpdatesFile is a JSON file holding the remote update list.
	// Env: ADAPTER_UPDATES_FILE
	UpdatesFile string `env:"UPDATES_FILE"`

	// UpdatesURL is the base URL of a server exposing
	// GET /api/bookmarks/updates. Used when UpdatesFile is empty.
	// Env: ADAPTER_UPDATES_URL
	UpdatesURL string `env:"UPDATES_URL"`

	// RequestTimeout bounds every outbound HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FaviconWorkers is the number of goroutines downloading favicons.
	// Zero disables favicon downloads.
	// Env: WORKERS_FAVICON_WORKERS
	FaviconWorkers int `env:"FAVICON_WORKERS"`

	// FaviconQueueSize bounds the number of pending favicon requests.
	// Requests beyond it are dropped.
	// Env: WORKERS_FAVICON_QUEUE_SIZE
	FaviconQueueSize int `env:"FAVICON_QUEUE_SIZE"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Merger: Merger{
			MaxDepth: DefaultMaxDepth,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "bookmarks.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			FaviconWorkers:   2,
			FaviconQueueSize: 256,
		},
	}
}

const (
	// DefaultMaxDepth is the default depth cap of the remote forest.
	DefaultMaxDepth = 200

	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
