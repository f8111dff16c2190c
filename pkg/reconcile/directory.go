package reconcile

import (
	"context"

	"github.com/uptimekit/versionsync/pkg/errors"
	"github.com/uptimekit/versionsync/pkg/logging"
)

// Directory resolves monitor display names to monitor identifiers.
// It never creates monitors.
type Directory struct {
	api API
}

// NewDirectory creates a directory backed by the given API.
func NewDirectory(api API) *Directory {
	return &Directory{api: api}
}

// Resolve returns the identifier of the monitor whose display name equals
// name exactly (case-sensitive, no normalization). Uptime Kuma does not
// enforce name uniqueness; on duplicates the first match by listing order
// wins and a warning is logged.
func (d *Directory) Resolve(ctx context.Context, name string) (int64, error) {
	monitors, err := d.api.Monitors(ctx)
	if err != nil {
		return 0, err
	}

	var matches []int64
	for _, m := range monitors {
		if m.Name == name {
			matches = append(matches, m.ID)
		}
	}

	switch len(matches) {
	case 0:
		return 0, errors.NewMonitorNotFoundError(name)
	case 1:
		return matches[0], nil
	default:
		logging.FromContext(ctx).Warn().
			Str("monitor", name).
			Int("matches", len(matches)).
			Int64("monitor_id", matches[0]).
			Msg("Duplicate monitor names, using first match")
		return matches[0], nil
	}
}
