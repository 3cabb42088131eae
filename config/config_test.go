package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "", cfg.CatalogFile)
	assert.Equal(t, 1024, cfg.SessionCapacity)
	assert.Equal(t, "hub_session", cfg.SessionCookie)
	assert.False(t, cfg.SecureCookies)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Prod(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"APP_ENV":          "PROD",
		"CATALOG_FILE":     " /etc/hub/catalog.json ",
		"SESSION_CAPACITY": "16",
		"SESSION_COOKIE":   "sid",
		"LOG_LEVEL":        "DEBUG",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "/etc/hub/catalog.json", cfg.CatalogFile)
	assert.Equal(t, 16, cfg.SessionCapacity)
	assert.Equal(t, "sid", cfg.SessionCookie)
	assert.True(t, cfg.SecureCookies, "prod defaults to secure cookies")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_SecureCookieOverride(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"APP_ENV": "prod", "SECURE_COOKIES": "false"}))
	require.NoError(t, err)
	assert.False(t, cfg.SecureCookies)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown env", map[string]string{"APP_ENV": "staging"}},
		{"capacity not a number", map[string]string{"SESSION_CAPACITY": "lots"}},
		{"capacity zero", map[string]string{"SESSION_CAPACITY": "0"}},
		{"secure cookies not bool", map[string]string{"SECURE_COOKIES": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestApplyLogLevel(t *testing.T) {
	t.Cleanup(func() { GetLogger().SetLevel(logrus.InfoLevel) })

	require.NoError(t, ApplyLogLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())

	assert.Error(t, ApplyLogLevel("loud"))
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
}
