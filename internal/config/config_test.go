package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "raucher.db", cfg.SQLitePath)
	assert.Equal(t, 300.0, cfg.SessionSeconds)
	assert.Equal(t, 20, cfg.HighscoreLimit)
	assert.False(t, cfg.UsePostgres())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/raucher")
	t.Setenv("SESSION_SECONDS", "90.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 90.5, cfg.SessionSeconds)
	assert.True(t, cfg.UsePostgres())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-an-int"},
		{"port range", "PORT", "70000"},
		{"zero session", "SESSION_SECONDS", "0"},
		{"negative limit", "HIGHSCORE_LIMIT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
