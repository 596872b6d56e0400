package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     *AppConfig
	Logging LoggingConfig
}

type LoggingConfig struct {
	// ExecutionLog toggles the "[LOG] Executing ..." notices.
	ExecutionLog bool
	Level        slog.Level
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: NewAppConfig(),
		Logging: LoggingConfig{
			ExecutionLog: getEnvBool("USERSYSTEM_EXEC_LOG", true),
			Level:        getEnvLevel("USERSYSTEM_LOG_LEVEL", slog.LevelInfo),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(getEnv(key, defaultValue.String())))); err != nil {
		return defaultValue
	}
	return level
}
