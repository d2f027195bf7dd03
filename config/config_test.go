package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("DEFAULT_PAGE_SIZE", "")
	t.Setenv("MOCK_API_PORT", "")

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", env.API_BASE_URL)
	assert.Equal(t, 30, env.HTTP_TIMEOUT_SECONDS)
	assert.Equal(t, 10, env.DEFAULT_PAGE_SIZE)
	assert.Equal(t, 8080, env.MOCK_API_PORT)
	assert.Empty(t, env.REDIS_URL)
}

func TestGetReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_REFRESH_SCHEDULE", "@every 15m")

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", env.API_BASE_URL)
	assert.Equal(t, 5, env.HTTP_TIMEOUT_SECONDS)
	assert.Equal(t, 25, env.DEFAULT_PAGE_SIZE)
	assert.Equal(t, "redis://localhost:6379/0", env.REDIS_URL)
	assert.Equal(t, "@every 15m", env.CACHE_REFRESH_SCHEDULE)
}

func TestGetIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "not a number")
	t.Setenv("DEFAULT_PAGE_SIZE", "-3")

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 30, env.HTTP_TIMEOUT_SECONDS)
	assert.Equal(t, 10, env.DEFAULT_PAGE_SIZE)
}
