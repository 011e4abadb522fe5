package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/ticket_storefront/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_HOST", "DB_PORT", "REDIS_HOST", "REDIS_PORT", "CHECKOUT_RETENTION", "LOG_FORMAT", "PROFILE_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := config.Load("does-not-exist.env")

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CheckoutRetention)
	assert.Equal(t, 30*time.Minute, cfg.ProfileIdleTime)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CHECKOUT_RETENTION", "15m")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PROFILE_SECRET", "s3cret")
	t.Setenv("PROFILE_IDLE_TIMEOUT", "5m")

	cfg := config.Load("does-not-exist.env")

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CheckoutRetention)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, "s3cret", cfg.ProfileSecret)
	assert.Equal(t, 5*time.Minute, cfg.ProfileIdleTime)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("CHECKOUT_RETENTION", "soon")

	cfg := config.Load("does-not-exist.env")

	assert.Equal(t, time.Hour, cfg.CheckoutRetention)
}
