package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/tick-data-service/pkg/questdb"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	QuestDB  questdb.Config `envPrefix:"QUESTDB_"`
	TBT      TBTConfig      `envPrefix:"TBT_"`
	Bhavcopy BhavcopyConfig `envPrefix:"BHAVCOPY_"`
	Engine   EngineConfig   `envPrefix:"ENGINE_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"tick-data-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// TBTConfig locates the tick-by-tick dump directories on disk.
type TBTConfig struct {
	Dir string `env:"DIR" envDefault:"data/tbt"`
}

// BhavcopyConfig locates the end-of-day reference files on disk.
type BhavcopyConfig struct {
	Dir string `env:"DIR" envDefault:"data/bhavcopy"`
}

// EngineConfig represents the aggregation engine configuration.
type EngineConfig struct {
	// StrictTicks makes the engine fail on malformed ticks instead of
	// dropping them.
	StrictTicks bool `env:"STRICT_TICKS" envDefault:"false"`
	// DefaultFrequencySeconds is the resample bucket width used when a
	// caller does not pick one.
	DefaultFrequencySeconds int64 `env:"DEFAULT_FREQUENCY_SECONDS" envDefault:"60"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
