package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"WEB_PORT", "API_URL", "MEDIA_URL", "SESSION_BACKEND",
		"ALERT_POLL_INTERVAL", "SHOP_TIMEZONE", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "https://barberrock.es", cfg.APIURL)
	assert.Equal(t, cfg.APIURL, cfg.MediaURL)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 30*time.Second, cfg.AlertPollInterval)
	assert.Equal(t, "Europe/Madrid", cfg.ShopTimezone)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "http://api.local:8000/")
	t.Setenv("MEDIA_URL", "http://media.local/")
	t.Setenv("SESSION_BACKEND", "REDIS")
	t.Setenv("ALERT_POLL_INTERVAL", "5s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.es, https://b.es,")

	cfg := Load()

	assert.Equal(t, "http://api.local:8000", cfg.APIURL)
	assert.Equal(t, "http://media.local", cfg.MediaURL)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 5*time.Second, cfg.AlertPollInterval)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, []string{"https://a.es", "https://b.es"}, cfg.CORSOrigins)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.APITimeout)
}
