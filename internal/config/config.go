package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application settings, loaded from the environment with
// an optional .env file for local development.
type Config struct {
	Port        string `env:"USERSTATS_PORT" envDefault:"8080"`
	DBPath      string `env:"USERSTATS_DB_PATH" envDefault:"userstats.db"`
	LogLevel    string `env:"USERSTATS_LOG_LEVEL" envDefault:"info"`
	StatsAPIKey string `env:"USERSTATS_STATS_API_KEY"`
	StatsAPIURL string `env:"USERSTATS_STATS_API_URL"`
}

// Load reads the optional .env file and parses the environment. A missing
// .env file is not an error; a malformed environment is.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
