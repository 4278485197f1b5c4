package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// BatchConfig configures the nfldb loader. Variables carry the NFLDB_ prefix.
type BatchConfig struct {
	Driver     string `envconfig:"DRIVER" default:"sqlite"`
	DSN        string `envconfig:"DSN" default:"nfl_database.db"`
	TeamsCSV   string `envconfig:"TEAMS_CSV" default:"teams.csv"`
	PlayersCSV string `envconfig:"PLAYERS_CSV" default:"players_2024.csv"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}

func LoadBatch() (*BatchConfig, error) {
	_ = godotenv.Load()

	var cfg BatchConfig
	if err := envconfig.Process("NFLDB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *BatchConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported driver %q (want %s or %s)", c.Driver, DriverSQLite, DriverPostgres)
	}
	if c.DSN == "" {
		return fmt.Errorf("NFLDB_DSN is required")
	}
	return nil
}
