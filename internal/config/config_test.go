package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("USERSYSTEM_EXEC_LOG", "")
		t.Setenv("USERSYSTEM_LOG_LEVEL", "")

		cfg := Load()

		require.NotNil(t, cfg.App)
		assert.True(t, cfg.Logging.ExecutionLog)
		assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("USERSYSTEM_EXEC_LOG", "false")
		t.Setenv("USERSYSTEM_LOG_LEVEL", "debug")

		cfg := Load()

		assert.False(t, cfg.Logging.ExecutionLog)
		assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("USERSYSTEM_EXEC_LOG", "maybe")
		t.Setenv("USERSYSTEM_LOG_LEVEL", "loud")

		cfg := Load()

		assert.True(t, cfg.Logging.ExecutionLog)
		assert.Equal(t, slog.LevelInfo, cfg.Logging.Level)
	})

	t.Run("app identity is not configurable", func(t *testing.T) {
		t.Setenv("USERSYSTEM_APP_NAME", "Other")

		info := Load().App.Info()

		assert.Equal(t, "UserSystem", info.AppName)
		assert.Equal(t, "1.0.0", info.Version)
	})
}

func TestAppConfig_Info(t *testing.T) {
	cfg := NewAppConfig()

	info := cfg.Info()
	info.AppName = "changed"

	assert.Equal(t, Info{AppName: "UserSystem", Version: "1.0.0"}, cfg.Info())
}
