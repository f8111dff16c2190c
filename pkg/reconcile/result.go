package reconcile

import (
	"time"

	"github.com/uptimekit/versionsync/pkg/errors"
)

// Result is the outcome of reconciling a single service.
type Result struct {
	// Service is the configured monitor name.
	Service string

	// Version is the fetched version string (empty if the fetch failed).
	Version string

	// Tag is the applied version tag (empty on failure).
	Tag string

	// Changed reports whether any mutation was issued.
	Changed bool

	// Err is nil on success.
	Err error
}

// Success reports whether the service reconciled cleanly.
func (r Result) Success() bool {
	return r.Err == nil
}

// Kind names the failure category for display, or "ok" on success.
func (r Result) Kind() string {
	switch {
	case r.Err == nil:
		return "ok"
	case errors.IsAuthFailed(r.Err):
		return "auth"
	case errors.IsFetchFailed(r.Err):
		return "fetch"
	case errors.IsNotFound(r.Err):
		return "monitor-not-found"
	case errors.IsTagApplyFailed(r.Err):
		return "tag-apply"
	default:
		return "error"
	}
}

// Summary aggregates the per-service results of one run. It lives for
// the duration of the run only; nothing is persisted between runs.
type Summary struct {
	Results  []Result
	Started  time.Time
	Duration time.Duration
}

// Succeeded returns the number of services that reconciled cleanly.
func (s *Summary) Succeeded() int {
	count := 0
	for _, r := range s.Results {
		if r.Success() {
			count++
		}
	}
	return count
}

// Failed returns the number of services that failed.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Ok reports whether every service reconciled successfully.
func (s *Summary) Ok() bool {
	return s.Failed() == 0
}
