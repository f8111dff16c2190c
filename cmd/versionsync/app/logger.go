package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/uptimekit/versionsync/internal/config"
	"github.com/uptimekit/versionsync/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
func NewLogger(cfg *config.Config) zerolog.Logger {
	logConfig := &logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  cfg.LogOutput,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
	logger := logging.NewLoggerFromConfig(logConfig)
	logging.SetDefault(logger)
	return logger
}

// reconfigureLogger rebuilds the logger once flags are parsed.
// Log level precedence (highest to lowest):
//  1. --log-level flag (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. LOG_LEVEL environment variable
func (a *App) reconfigureLogger() zerolog.Logger {
	level := a.determineLogLevel()

	logConfig := &logging.Config{
		Level:     level,
		Format:    a.config.LogFormat,
		Output:    a.config.LogOutput,
		NoColor:   os.Getenv("NO_COLOR") != "",
		AddCaller: level == "debug" || level == "trace",
	}
	logger := logging.NewLoggerFromConfig(logConfig)
	logging.SetDefault(logger)
	return logger
}

// determineLogLevel determines the log level using clear precedence rules.
func (a *App) determineLogLevel() string {
	if a.logLevel != "" {
		validated := validateLogLevel(a.logLevel)
		if validated != a.logLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", a.logLevel, validated)
		}
		return validated
	}

	if a.verbose && a.quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if a.verbose {
		return "debug"
	}
	if a.quiet {
		return "warn"
	}

	return a.config.LogLevel
}

// validateLogLevel validates a log level string and returns a valid level.
// If the input is invalid, returns "info" as a safe default.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
