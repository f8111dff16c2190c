// Package app provides the application context and dependency management
// for the versionsync CLI. It centralizes configuration, logging, and
// client construction for the commands.
package app

import (
	"github.com/rs/zerolog"

	"github.com/uptimekit/versionsync/internal/config"
	"github.com/uptimekit/versionsync/internal/kuma"
	"github.com/uptimekit/versionsync/pkg/errors"
	"github.com/uptimekit/versionsync/pkg/version"
)

// App represents the versionsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *config.Config

	// Logger
	logger *zerolog.Logger

	// Command flags
	verbose  bool
	quiet    bool
	logLevel string
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// KumaClient creates an Uptime Kuma client from the configuration.
// The session is established by the caller via Login.
func (a *App) KumaClient() (*kuma.Client, error) {
	if err := a.config.Validate(); err != nil {
		return nil, err
	}
	return kuma.New(a.config.Kuma()), nil
}

// Fetcher creates the version fetcher, honoring the TLS setting.
func (a *App) Fetcher() *version.Fetcher {
	if !a.config.VerifySSL {
		return version.NewFetcher(version.WithInsecureTLS())
	}
	return version.NewFetcher()
}
