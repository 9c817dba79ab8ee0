package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CATALOG_TIMEOUT", "")

	cfg := New()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 100, cfg.RateLimitPerMin)
	assert.Empty(t, cfg.GetAllowedOrigins())
	assert.Nil(t, cfg.GetTrustedProxies())
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("ENABLE_RATE_LIMIT", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg := New()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.GetAllowedOrigins())
	assert.False(t, cfg.EnableRateLimit)
	assert.Equal(t, 100, cfg.RateLimitPerMin)
}
