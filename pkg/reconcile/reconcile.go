// Package reconcile keeps Uptime Kuma version tags in sync with the
// versions reported by deployed services. For each configured service it
// fetches the live version, resolves the monitor by display name, and
// makes `{prefix}-{version}` the only version-like tag on that monitor.
// Tags outside the prefix namespace are never touched.
//
// The reconciler is stateless across runs: the monitoring system is the
// only durable store, and an interrupted run self-heals on the next
// scheduled invocation.
package reconcile

import (
	"context"

	"github.com/uptimekit/versionsync/internal/kuma"
	"github.com/uptimekit/versionsync/pkg/constants"
	"github.com/uptimekit/versionsync/pkg/errors"
)

// API is the subset of the Uptime Kuma management surface the reconciler
// depends on. *kuma.Client satisfies it; tests substitute a fake.
type API interface {
	// Login establishes the session for the run.
	Login(ctx context.Context) error

	// Monitors lists all monitors visible to the session.
	Monitors(ctx context.Context) ([]kuma.Monitor, error)

	// Tags lists all global tag entities.
	Tags(ctx context.Context) ([]kuma.Tag, error)

	// MonitorTags lists the tags attached to a monitor.
	MonitorTags(ctx context.Context, monitorID int64) ([]kuma.Tag, error)

	// CreateTag creates a global tag entity.
	CreateTag(ctx context.Context, name, color string) (kuma.Tag, error)

	// AddMonitorTag attaches a tag to a monitor.
	AddMonitorTag(ctx context.Context, monitorID, tagID int64) error

	// RemoveMonitorTag detaches a tag from a monitor.
	RemoveMonitorTag(ctx context.Context, monitorID, tagID int64) error
}

// VersionFetcher retrieves the live version string for a service.
type VersionFetcher interface {
	Fetch(ctx context.Context, endpoint string) (string, error)
}

// ServiceSpec configures one service to reconcile. Specs are supplied as
// an ordered list and are immutable for the duration of a run.
type ServiceSpec struct {
	// MonitorName must match exactly one monitor's display name.
	MonitorName string `json:"monitorName" yaml:"monitorName"`

	// VersionEndpoint returns the deployed version as its response body.
	VersionEndpoint string `json:"versionEndpoint" yaml:"versionEndpoint"`

	// TagPrefix is the tag namespace; defaults to "version".
	TagPrefix string `json:"tagPrefix,omitempty" yaml:"tagPrefix,omitempty"`
}

// Prefix returns the configured tag prefix or the default.
func (s ServiceSpec) Prefix() string {
	if s.TagPrefix == "" {
		return constants.DefaultTagPrefix
	}
	return s.TagPrefix
}

// Validate checks that the spec carries the required fields.
func (s ServiceSpec) Validate() error {
	if s.MonitorName == "" {
		return errors.NewValidationError("monitorName", s.MonitorName, "cannot be empty")
	}
	if s.VersionEndpoint == "" {
		return errors.NewValidationError("versionEndpoint", s.VersionEndpoint, "cannot be empty")
	}
	return nil
}
