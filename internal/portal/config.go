// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package portal is the terminal dashboard over the Webtoon Reader API.

It exposes a fixed set of views (home, browse, add, stats, chapters). Each view
pulls what it needs from a [Source], which is either the live API [Client] or
the read-only [Demo] fixture.
*/
package portal

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the dashboard settings.
type Config struct {
	// APIURL is the base URL of the API including the /api prefix.
	APIURL string `env:"WEBTOON_API_URL" envDefault:"http://localhost:8000/api"`

	// Timeout bounds every API round trip.
	Timeout time.Duration `env:"WEBTOON_TIMEOUT" envDefault:"10s"`
}

// LoadConfig parses the dashboard settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("portal: failed to parse environment variables: %w", err)
	}
	if cfg.APIURL == "" {
		return Config{}, errors.New("portal: WEBTOON_API_URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return Config{}, errors.New("portal: WEBTOON_TIMEOUT must be positive")
	}
	return cfg, nil
}
