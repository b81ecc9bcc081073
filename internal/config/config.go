// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Adapter modes select the credential verifier used by the client.
const (
	AdapterModeDemo = "demo"
	AdapterModeHTTP = "http"
)

// Vault backends select where the client keeps its session slot.
const (
	VaultBackendSQLite = "sqlite"
	VaultBackendMemory = "memory"
	VaultBackendRedis  = "redis"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Server    Server    `envPrefix:"SERVER_"`
	Adapter   Adapter   `envPrefix:"ADAPTER_"`
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// set via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens on the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SeedDemoAccounts provisions the demo accounts at server start.
	// Env: APP_SEED_DEMO_ACCOUNTS
	SeedDemoAccounts bool `env:"SEED_DEMO_ACCOUNTS"`

	// SignInLatency is the simulated network latency of the demo verifier.
	// Env: APP_SIGN_IN_LATENCY
	SignInLatency time.Duration `env:"SIGN_IN_LATENCY"`

	// Version is exposed via /api/version/ and the TUI build info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings of both binaries.
type Storage struct {
	// DB is the server-side PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Vault is the client-side secure key-value slot.
	Vault Vault `envPrefix:"VAULT_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Vault holds settings of the client session slot.
type Vault struct {
	// Backend is one of "sqlite", "memory", "redis".
	// Env: STORAGE_VAULT_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the SQLite database file.
	// Env: STORAGE_VAULT_DSN
	DSN string `env:"DSN"`

	// RedisAddress is the host:port of the redis backend.
	// Env: STORAGE_VAULT_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword authenticates against redis; optional.
	// Env: STORAGE_VAULT_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// KeyPrefix namespaces redis keys.
	// Env: STORAGE_VAULT_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`

	// Key is the secret the vault encryption key is derived from.
	// Env: STORAGE_VAULT_KEY
	Key string `env:"KEY"`
}

// Server holds listener settings of the auth server.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's credential verifier settings.
type Adapter struct {
	// Mode is "demo" (fixed account table) or "http" (auth server).
	// Env: ADAPTER_MODE
	Mode string `env:"MODE"`

	// HTTPAddress is the auth server base address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Telemetry holds OTLP trace export settings of the server. Tracing is off
// when OTLPEndpoint is empty.
type Telemetry struct {
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// Env: TELEMETRY_OTLP_INSECURE
	OTLPInsecure bool `env:"OTLP_INSECURE"`

	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "yuhu-auth",
			TokenDuration: 24 * time.Hour,
			SignInLatency: 500 * time.Millisecond,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Storage: Storage{
			Vault: Vault{
				Backend:   VaultBackendSQLite,
				DSN:       "yuhu-vault.db",
				KeyPrefix: "yuhu:",
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			Mode:           AdapterModeDemo,
			RequestTimeout: 10 * time.Second,
		},
		Telemetry: Telemetry{
			ServiceName: "yuhu-auth",
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(commandLineArgs())
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
