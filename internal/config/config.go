// Package config loads process-wide startup configuration from the
// environment. There is no runtime reload.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the settings for the exercise tracker server.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string. Required.
	DatabaseURL string
	// Port is the HTTP listen port.
	Port int
	// WebDir is the directory holding the static landing page.
	WebDir string
	// LogLevel is the minimum level emitted by the logger.
	LogLevel string
}

// ErrDatabaseURLRequired is returned when DATABASE_URL is unset.
var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")

// Load reads configuration from the environment, applying defaults for
// everything except the database connection string.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", 3000)
	v.SetDefault("web_dir", "web")
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()
	for _, key := range []string{"database_url", "port", "web_dir", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		DatabaseURL: v.GetString("database_url"),
		Port:        v.GetInt("port"),
		WebDir:      v.GetString("web_dir"),
		LogLevel:    v.GetString("log_level"),
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}
	return cfg, nil
}
