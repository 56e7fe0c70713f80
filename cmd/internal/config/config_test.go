package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	settings := Load()

	assert.Equal(t, "database.db", settings.DatabasePath)
	assert.Equal(t, "/api/v1", settings.APIPrefix)
	assert.Equal(t, "8080", settings.Port)
	assert.Equal(t, 60, settings.JWTExpirationMin)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("API_PREFIX", "/api/v2")
	t.Setenv("JWT_EXPIRATION_MIN", "120")

	settings := Load()

	assert.Equal(t, "/tmp/test.db", settings.DatabasePath)
	assert.Equal(t, "/api/v2", settings.APIPrefix)
	assert.Equal(t, 120, settings.JWTExpirationMin)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MIN", "sixty")

	settings := Load()
	assert.Equal(t, 60, settings.JWTExpirationMin)
}
