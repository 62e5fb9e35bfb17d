// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the complete runtime configuration of the server.
type StructuredConfig struct {
	// App holds token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path of a JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App configures credential issuing and verification.
type App struct {
	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	// CookieName is the cookie that carries the token.
	CookieName string `env:"COOKIE_NAME"`
	LogLevel   string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB configures the PostgreSQL connection pool.
type DB struct {
	DSN             string        `env:"DATABASE_URI"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Server configures the HTTP listener and its middleware.
type Server struct {
	HTTPAddress     string        `env:"ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	// RateLimit is the number of requests allowed per client IP per minute.
	RateLimit      int      `env:"RATE_LIMIT"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig builds the configuration from environment variables,
// command-line flags and an optional JSON file, then applies defaults and
// validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "myantech-erp",
			TokenDuration: 24 * time.Hour,
			CookieName:    "token",
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:     ":4000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       120,
			AllowedOrigins:  []string{"*"},
		},
	}
}
