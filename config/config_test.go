package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("ACTIVITIES_FILE", "")
	t.Setenv("ENFORCE_CAPACITY", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("EMAIL_FROM_ADDRESS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Empty(t, cfg.ActivitiesFile)
	assert.False(t, cfg.EnforceCapacity)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, "activities@mergington.edu", cfg.Email.FromAddress)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("ACTIVITIES_FILE", "/etc/activities.yaml")
	t.Setenv("ENFORCE_CAPACITY", "true")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.Equal(t, "/etc/activities.yaml", cfg.ActivitiesFile)
	assert.True(t, cfg.EnforceCapacity)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestBoolEnv(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "on"} {
		t.Setenv("SOME_FLAG", v)
		assert.True(t, boolEnv("SOME_FLAG"), v)
	}
	for _, v := range []string{"", "0", "false", "off", "banana"} {
		t.Setenv("SOME_FLAG", v)
		assert.False(t, boolEnv("SOME_FLAG"), v)
	}
}
