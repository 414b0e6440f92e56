package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"5s", 5 * time.Second},
		{"2m", 2 * time.Minute},
		{"5", 5 * time.Second},
		{"120", 120 * time.Second},
		{" 10 ", 10 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	for _, bad := range []string{"", "abc", "5 seconds"} {
		_, err := parseDuration(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveDevDefaults(t *testing.T) {
	cfg := Config{}
	cfg.App.Env = "dev"
	cfg.DB.DevURL = "ws://localhost:8000/rpc"

	require.NoError(t, resolve(&cfg))
	assert.Equal(t, "ws://localhost:8000/rpc", cfg.DB.Endpoint)
}

func TestResolveProdRequiresURL(t *testing.T) {
	cfg := Config{}
	cfg.App.Env = "prod"
	cfg.DB.DevURL = "ws://localhost:8000/rpc"

	err := resolve(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SURREALDB_URL")
}

func TestResolveProdUsesProductionURL(t *testing.T) {
	cfg := Config{}
	cfg.App.Env = "production"
	cfg.DB.URL = "wss://db.example.com/rpc"
	cfg.DB.DevURL = "ws://localhost:8000/rpc"

	require.NoError(t, resolve(&cfg))
	assert.Equal(t, "wss://db.example.com/rpc", cfg.DB.Endpoint)
	assert.True(t, cfg.App.IsProd())
}

func TestResolveRejectsSharedEndpoint(t *testing.T) {
	cfg := Config{}
	cfg.App.Env = "dev"
	cfg.DB.URL = "ws://localhost:8000/rpc"
	cfg.DB.DevURL = "ws://localhost:8000/rpc"

	err := resolve(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same database")
}

func TestIsProd(t *testing.T) {
	for env, want := range map[string]bool{
		"prod":       true,
		"production": true,
		"dev":        false,
		"staging":    false,
		"":           false,
	} {
		assert.Equal(t, want, AppConfig{Env: env}.IsProd(), "env %q", env)
	}
}
