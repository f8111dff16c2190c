package reconcile

import (
	"context"
	"strings"

	"github.com/uptimekit/versionsync/internal/kuma"
	"github.com/uptimekit/versionsync/pkg/constants"
	"github.com/uptimekit/versionsync/pkg/errors"
	"github.com/uptimekit/versionsync/pkg/logging"
)

// Reconciler makes `{prefix}-{version}` the only version-like tag on a
// monitor. It mutates tag membership only, never monitors themselves.
type Reconciler struct {
	api    API
	dryRun bool
}

// NewReconciler creates a reconciler backed by the given API.
func NewReconciler(api API) *Reconciler {
	return &Reconciler{api: api}
}

// SetDryRun makes Reconcile compute and log the tag delta without
// issuing any mutating API calls.
func (r *Reconciler) SetDryRun(dryRun bool) {
	r.dryRun = dryRun
}

// Applied describes the outcome of one reconciliation.
type Applied struct {
	// Tag is the target version tag now (or already) on the monitor.
	Tag string

	// Removed lists the stale version-like tags that were detached.
	Removed []string

	// Changed reports whether any mutation was required.
	Changed bool
}

// Reconcile converges the monitor's version-like tags under prefix onto
// `prefix + "-" + version`. Already-converged monitors incur zero
// mutating calls. Otherwise stale version-like tags are removed before
// the target is added, so an interrupted run leaves at most zero
// version-like tags behind, never two. Tag names are opaque strings; no
// version ordering is performed.
func (r *Reconciler) Reconcile(ctx context.Context, monitorID int64, prefix, version string) (*Applied, error) {
	log := logging.FromContext(ctx)

	tags, err := r.api.MonitorTags(ctx, monitorID)
	if err != nil {
		return nil, errors.NewTagApplyError("list", prefix+"-*", monitorID, err)
	}

	target := prefix + "-" + version
	marker := prefix + "-"

	var stale []kuma.Tag
	hasTarget := false
	for _, tag := range tags {
		if tag.Name == target {
			hasTarget = true
			continue
		}
		if strings.HasPrefix(tag.Name, marker) {
			stale = append(stale, tag)
		}
	}

	if hasTarget && len(stale) == 0 {
		log.Debug().Str("tag", target).Msg("Already converged")
		return &Applied{Tag: target}, nil
	}

	removed := make([]string, 0, len(stale))
	for _, tag := range stale {
		removed = append(removed, tag.Name)
	}

	if r.dryRun {
		log.Info().
			Str("tag", target).
			Strs("would_remove", removed).
			Bool("would_add", !hasTarget).
			Msg("Dry run, skipping tag mutations")
		return &Applied{Tag: target, Removed: removed, Changed: true}, nil
	}

	// Remove stale tags before adding the target so the monitor never
	// carries two version-like tags under the same prefix.
	for _, tag := range stale {
		if err := r.api.RemoveMonitorTag(ctx, monitorID, tag.ID); err != nil {
			return nil, errors.NewTagApplyError("remove", tag.Name, monitorID, err)
		}
		log.Debug().Str("tag", tag.Name).Msg("Removed stale version tag")
	}

	if !hasTarget {
		tag, err := r.ensureTag(ctx, target)
		if err != nil {
			return nil, errors.NewTagApplyError("add", target, monitorID, err)
		}
		if err := r.api.AddMonitorTag(ctx, monitorID, tag.ID); err != nil {
			return nil, errors.NewTagApplyError("add", target, monitorID, err)
		}
		log.Debug().Str("tag", target).Msg("Added version tag")
	}

	return &Applied{Tag: target, Removed: removed, Changed: true}, nil
}

// ensureTag returns the global tag entity with the given name, creating
// it if it does not exist yet.
func (r *Reconciler) ensureTag(ctx context.Context, name string) (kuma.Tag, error) {
	tags, err := r.api.Tags(ctx)
	if err != nil {
		return kuma.Tag{}, err
	}
	for _, tag := range tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return r.api.CreateTag(ctx, name, constants.DefaultTagColor)
}
