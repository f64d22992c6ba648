// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through their
constructors.
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers selectable through STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the Webtoon API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the repository implementation ("postgres" or "memory").
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL). Required when StoreDriver is "postgres".
	DatabaseURL string `env:"DATABASE_URL"`

	// Key-Value Cache (Redis). Caching is disabled when empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Cross-Origin Resource Sharing. When empty, development allows every
	// origin and every other environment allows none.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field constraints the env tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New(`config: DATABASE_URL is required when STORE_DRIVER is "postgres"`)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// CacheEnabled reports whether a Redis URL was supplied.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// AllowedOrigins returns the effective CORS origin list.
//
// An explicit CORS_ALLOWED_ORIGINS always wins. Otherwise development falls back
// to the wildcard and every other environment to no cross-origin access.
func (c *Config) AllowedOrigins() []string {
	if len(c.CORSAllowedOrigins) > 0 {
		return c.CORSAllowedOrigins
	}
	if c.IsDevelopment() {
		return []string{"*"}
	}
	return nil
}
