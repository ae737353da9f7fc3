package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Mailsmith", cfg.SMTP.FromName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, int64(0), cfg.Upload.MaxImageBytes)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SMTP_HOST", "smtp.test.local")
	t.Setenv("SMTP_FROM_EMAIL", "noreply@test.local")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UPLOAD_MAX_IMAGE_BYTES", "1048576")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "smtp.test.local", cfg.SMTP.Host)
	assert.Equal(t, "noreply@test.local", cfg.SMTP.FromEmail)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxImageBytes)
	assert.True(t, cfg.IsDevelopment())
}
