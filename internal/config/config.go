// Package config loads the reconciler's configuration from environment
// variables, .env files, and an optional services YAML file. The
// environment variable names match the version-sync chart's CronJob
// contract (UPTIME_KUMA_URL, SERVICES_CONFIG, ...).
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/uptimekit/versionsync/internal/kuma"
	"github.com/uptimekit/versionsync/pkg/errors"
)

// Config holds the application configuration.
type Config struct {
	// Kuma connection settings.
	URL       string
	Username  string
	Password  string
	APIToken  string
	VerifySSL bool

	// ServicesJSON is the raw SERVICES_CONFIG value (JSON array).
	ServicesJSON string

	// ServicesFile is the path to a services YAML file; set via flag.
	// When set it takes precedence over ServicesJSON.
	ServicesFile string

	// Logging configuration.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// Load builds configuration from all sources in order of precedence:
// command-line flags (applied later by cobra), environment variables,
// .env files, then defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("UPTIME_KUMA_URL", "http://uptime-kuma.uptime-kuma.svc.cluster.local:3001")
	v.SetDefault("VERIFY_SSL", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "auto")
	v.SetDefault("LOG_OUTPUT", "stderr")

	return &Config{
		URL:          v.GetString("UPTIME_KUMA_URL"),
		Username:     v.GetString("UPTIME_KUMA_USERNAME"),
		Password:     v.GetString("UPTIME_KUMA_PASSWORD"),
		APIToken:     v.GetString("UPTIME_KUMA_API_TOKEN"),
		VerifySSL:    v.GetBool("VERIFY_SSL"),
		ServicesJSON: v.GetString("SERVICES_CONFIG"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		LogOutput:    v.GetString("LOG_OUTPUT"),
	}, nil
}

// Validate checks that a reconciliation run can be attempted with this
// configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.NewValidationError("UPTIME_KUMA_URL", c.URL, "cannot be empty")
	}
	if c.APIToken == "" && c.Password == "" {
		return errors.NewValidationError("UPTIME_KUMA_API_TOKEN", "", "either UPTIME_KUMA_API_TOKEN or UPTIME_KUMA_PASSWORD must be set")
	}
	return nil
}

// Kuma returns the connection settings for the Uptime Kuma client.
func (c *Config) Kuma() kuma.Config {
	return kuma.Config{
		BaseURL:   c.URL,
		Username:  c.Username,
		Password:  c.Password,
		APIToken:  c.APIToken,
		VerifySSL: c.VerifySSL,
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
