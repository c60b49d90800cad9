package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BOOKING_LOCK_TTL", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.BookingLockTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BOOKING_LOCK_TTL", "2s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://agenda.studio.com, ,https://admin.studio.com")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.BookingLockTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://agenda.studio.com", "https://admin.studio.com"}, cfg.CORSOrigins)
}
