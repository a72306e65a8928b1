// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied when neither a flag nor an environment variable sets a
// value.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenDuration  = 24 * time.Hour
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level runtime configuration of the exchange
// CLI.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds assertion and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound token endpoint client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// PayloadPath is the path of the integration JSON file.
	// Env: PAYLOAD. Flags: -payload, -c.
	PayloadPath string `env:"PAYLOAD"`

	// ShowVersion asks the CLI to print build info and exit.
	ShowVersion bool
}

// App holds application-level settings.
type App struct {
	// TokenDuration is how long a signed assertion stays valid after the
	// integration file is validated (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound HTTP client.
type Adapter struct {
	// RequestTimeout bounds a single exchange request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the runtime configuration.
// args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withDefaults().
		build()
}
