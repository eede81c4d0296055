package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           int     `env:"PORT" envDefault:"8080"`
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string  `env:"LOG_FORMAT" envDefault:"text"`
	DatabaseURL    string  `env:"DATABASE_URL"` // empty selects SQLite
	SQLitePath     string  `env:"SQLITE_PATH" envDefault:"raucher.db"`
	SessionSeconds float64 `env:"SESSION_SECONDS" envDefault:"300"`
	HighscoreLimit int     `env:"HIGHSCORE_LIMIT" envDefault:"20"`
	LevelFile      string  `env:"LEVEL_FILE"` // empty uses the embedded level
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.SessionSeconds <= 0 {
		return errors.New("SESSION_SECONDS must be positive")
	}
	if c.HighscoreLimit <= 0 {
		return errors.New("HIGHSCORE_LIMIT must be positive")
	}
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		return errors.New("either DATABASE_URL or SQLITE_PATH is required")
	}
	return nil
}

// UsePostgres reports whether highscores go to PostgreSQL.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}
