package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "RATE_RPS", "JWT_ACCESS_TTL", "CORS_ORIGINS", "WEBHOOK_SECRET", "APP_MIGRATE", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 20, cfg.RateRPS)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.WebhookSecret)
	assert.False(t, cfg.Migrate)
	assert.False(t, cfg.TrustProxy)
	assert.False(t, cfg.IsProd())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("RATE_RPS", "5")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	t.Setenv("SUPABASE_URL", "https://xyz.supabase.co/")
	t.Setenv("APP_MIGRATE", "true")
	t.Setenv("TRUST_PROXY", "1")

	cfg := FromEnv()

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 5, cfg.RateRPS)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.WebhookSecret)
	assert.Equal(t, "https://xyz.supabase.co", cfg.SupabaseURL)
	assert.True(t, cfg.Migrate)
	assert.True(t, cfg.TrustProxy)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_RPS", "lots")
	t.Setenv("JWT_REFRESH_TTL", "-5m")

	cfg := FromEnv()

	assert.Equal(t, 20, cfg.RateRPS)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
}

func TestDefaultSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")
	assert.Equal(t, []string{"JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"}, FromEnv().DefaultSecrets())

	t.Setenv("JWT_ACCESS_SECRET", "a-real-one")
	assert.Equal(t, []string{"JWT_REFRESH_SECRET"}, FromEnv().DefaultSecrets())

	t.Setenv("JWT_REFRESH_SECRET", "another-real-one")
	assert.Empty(t, FromEnv().DefaultSecrets())
}
