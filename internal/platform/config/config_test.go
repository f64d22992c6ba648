// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults with the in-memory store selected.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

/*
TestLoad_PostgresRequiresDSN verifies the cross-field check on DATABASE_URL.
*/
func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_UnknownDriver rejects unsupported store drivers.
*/
func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestAllowedOrigins_EnvironmentGated verifies CORS is closed outside development.
*/
func TestAllowedOrigins_EnvironmentGated(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AllowedOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://reader.example.com,https://admin.example.com")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://reader.example.com", "https://admin.example.com"}, cfg.AllowedOrigins())
}
