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

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8000", cfg.Storefront.BaseURL)
	assert.Empty(t, cfg.Storefront.Token)
	assert.Equal(t, 10*time.Second, cfg.Storefront.Timeout)
	assert.Equal(t, "no-reply@meraki.local", cfg.SMTP.From)
	assert.False(t, cfg.SecureCookies)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("STOREFRONT_API_URL", "https://api.meraki.co")
	t.Setenv("STOREFRONT_API_TOKEN", "token-abc")
	t.Setenv("STOREFRONT_API_TIMEOUT", "3s")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://api.meraki.co", cfg.Storefront.BaseURL)
	assert.Equal(t, "token-abc", cfg.Storefront.Token)
	assert.Equal(t, 3*time.Second, cfg.Storefront.Timeout)
	assert.True(t, cfg.SecureCookies)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "not a url")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("STOREFRONT_API_TIMEOUT", "pronto")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Storefront.Timeout)
}
