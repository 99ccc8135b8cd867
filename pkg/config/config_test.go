package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, FixtureSourceStatic, cfg.FixtureSource)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "campushub_session", cfg.Session.CookieName)
	assert.Equal(t, 20, cfg.Notifications.InboxSize)
	assert.Equal(t, 30*time.Minute, cfg.Exports.SignedURLTTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FIXTURE_SOURCE", " Postgres ")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("PAGE_CACHE_TTL", "not-a-duration")
	t.Setenv("NOTIFICATION_INBOX_SIZE", "-3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, FixtureSourcePostgres, cfg.FixtureSource)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.PageCache.TTL)
	assert.Equal(t, 20, cfg.Notifications.InboxSize)
}
