// Package constants provides shared constants used throughout the versionsync codebase.
// This includes timeouts, defaults, and other configuration values that should be
// consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultFetchTimeout is the timeout for a single version-endpoint GET
	DefaultFetchTimeout = 10 * time.Second

	// DefaultAPITimeout is the timeout for requests to the Uptime Kuma management API
	DefaultAPITimeout = 30 * time.Second

	// ShutdownTimeout is how long a cancelled run gets to finish logging
	ShutdownTimeout = 5 * time.Second
)

// Tag constants define defaults for version tags
const (
	// DefaultTagPrefix is the tag namespace used when a service does not configure one
	DefaultTagPrefix = "version"

	// DefaultTagColor is the color assigned to version tags created in Uptime Kuma
	DefaultTagColor = "#3b82f6"
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
