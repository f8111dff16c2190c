package reconcile

import (
	"context"
	"time"

	"github.com/uptimekit/versionsync/pkg/logging"
)

// Runner drives one reconciliation run across the configured services.
// Services are processed sequentially in configuration order; a failure
// in one service is recorded and does not stop the rest.
type Runner struct {
	api        API
	fetcher    VersionFetcher
	directory  *Directory
	reconciler *Reconciler
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithDryRun makes the run compute tag deltas without mutating anything.
func WithDryRun() RunnerOption {
	return func(r *Runner) {
		r.reconciler.SetDryRun(true)
	}
}

// NewRunner creates a runner over the given API and version fetcher.
func NewRunner(api API, fetcher VersionFetcher, opts ...RunnerOption) *Runner {
	r := &Runner{
		api:        api,
		fetcher:    fetcher,
		directory:  NewDirectory(api),
		reconciler: NewReconciler(api),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run authenticates once and reconciles every service. An authentication
// failure aborts the run before any per-service work: the error is
// returned and no Summary is produced. All other failures are recorded
// per service in the Summary and Run itself returns nil.
func (r *Runner) Run(ctx context.Context, services []ServiceSpec) (*Summary, error) {
	log := logging.FromContext(ctx)
	started := time.Now()

	if err := r.api.Login(ctx); err != nil {
		return nil, err
	}
	log.Debug().Int("services", len(services)).Msg("Session established")

	summary := &Summary{Started: started}
	for _, svc := range services {
		sctx := logging.WithService(ctx, svc.MonitorName)
		result := r.runService(sctx, svc)
		summary.Results = append(summary.Results, result)
	}
	summary.Duration = time.Since(started)

	log.Info().
		Int("succeeded", summary.Succeeded()).
		Int("failed", summary.Failed()).
		Dur("duration", summary.Duration).
		Msg("Run complete")

	return summary, nil
}

// runService performs the fetch, resolve, reconcile pipeline for one
// service. Each step short-circuits into a failure Result.
func (r *Runner) runService(ctx context.Context, svc ServiceSpec) Result {
	log := logging.FromContext(ctx)
	result := Result{Service: svc.MonitorName}

	version, err := r.fetcher.Fetch(ctx, svc.VersionEndpoint)
	if err != nil {
		log.Error().Err(err).Str("endpoint", svc.VersionEndpoint).Msg("Version fetch failed")
		result.Err = err
		return result
	}
	result.Version = version

	monitorID, err := r.directory.Resolve(ctx, svc.MonitorName)
	if err != nil {
		log.Error().Err(err).Msg("Monitor resolution failed")
		result.Err = err
		return result
	}

	applied, err := r.reconciler.Reconcile(ctx, monitorID, svc.Prefix(), version)
	if err != nil {
		log.Error().Err(err).Str("version", version).Msg("Tag reconciliation failed")
		result.Err = err
		return result
	}

	result.Tag = applied.Tag
	result.Changed = applied.Changed
	if applied.Changed {
		log.Info().
			Str("tag", applied.Tag).
			Strs("removed", applied.Removed).
			Msg("Version tag reconciled")
	} else {
		log.Info().Str("tag", applied.Tag).Msg("Version tag already up to date")
	}

	return result
}
