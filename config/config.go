package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

const defaultJWTSecret = "change-me"

// Config holds the web server configuration
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Roster data
	RosterCSV    string `envconfig:"ROSTER_CSV" default:"rosters.csv"`
	TemplatesDir string `envconfig:"TEMPLATES_DIR"`
	ReloadCron   string `envconfig:"RELOAD_CRON"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Admin API; disabled while AdminPasswordHash is empty
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpiration     time.Duration `envconfig:"JWT_EXPIRATION" default:"1h"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Load reads configuration from the environment, after loading a .env file
// when one exists
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RosterCSV == "" {
		return fmt.Errorf("ROSTER_CSV is required")
	}
	if c.ReloadCron != "" {
		if _, err := cron.ParseStandard(c.ReloadCron); err != nil {
			return fmt.Errorf("RELOAD_CRON %q: %w", c.ReloadCron, err)
		}
	}
	if c.AdminEnabled() && c.JWTSecret == defaultJWTSecret && c.IsProduction() {
		return fmt.Errorf("JWT_SECRET must be changed in production")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	return nil
}

func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or exits the process
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
