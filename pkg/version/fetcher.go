// Package version retrieves deployed version strings from service
// version endpoints. Versions are opaque: any non-empty string is
// accepted, so non-semver identifiers work unchanged.
package version

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/uptimekit/versionsync/internal/transport"
	"github.com/uptimekit/versionsync/pkg/constants"
	"github.com/uptimekit/versionsync/pkg/errors"
)

// Fetcher retrieves version strings over HTTP.
type Fetcher struct {
	client *transport.Client
}

// Option customizes a Fetcher.
type Option func(*options)

type options struct {
	timeout  time.Duration
	insecure bool
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithInsecureTLS disables certificate verification for version endpoints.
func WithInsecureTLS() Option {
	return func(o *options) {
		o.insecure = true
	}
}

// NewFetcher creates a version fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := &options{timeout: constants.DefaultFetchTimeout}
	for _, opt := range opts {
		opt(o)
	}

	transportOpts := []transport.Option{transport.WithTimeout(o.timeout)}
	if o.insecure {
		transportOpts = append(transportOpts, transport.WithInsecureTLS())
	}

	return &Fetcher{client: transport.New(&transport.NoAuth{}, transportOpts...)}
}

// Fetch issues a GET against the endpoint and returns the response body
// trimmed of surrounding whitespace. Non-2xx statuses, transport errors,
// and empty-after-trim bodies all fail with a FetchError. No retries and
// no caching: every run fetches fresh.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string) (string, error) {
	resp, err := f.client.Get(ctx, endpoint)
	if err != nil {
		return "", errors.NewFetchError(endpoint, 0, err.Error(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewFetchError(endpoint, resp.StatusCode, "read response body: "+err.Error(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewFetchError(endpoint, resp.StatusCode, resp.Status, nil)
	}

	version := strings.TrimSpace(string(body))
	if version == "" {
		return "", errors.NewFetchError(endpoint, resp.StatusCode, "empty version body", nil)
	}

	return version, nil
}
