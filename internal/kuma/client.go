// Package kuma implements a client for the Uptime Kuma management API.
// It covers the five operations the reconciler depends on: authentication,
// monitor listing, per-monitor tag listing, and tag attach/detach. Monitors
// and tags are never created or deleted here except for the global tag
// entities that Uptime Kuma requires before a tag can be attached.
package kuma

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/uptimekit/versionsync/internal/transport"
	"github.com/uptimekit/versionsync/pkg/constants"
	"github.com/uptimekit/versionsync/pkg/errors"
)

// Config holds the connection settings for an Uptime Kuma instance.
type Config struct {
	// BaseURL is the root URL of the Uptime Kuma instance.
	BaseURL string

	// Username and Password authenticate via the login exchange.
	Username string
	Password string

	// APIToken is a static bearer token. When set it takes precedence
	// over the username/password exchange.
	APIToken string

	// VerifySSL controls TLS certificate verification.
	VerifySSL bool
}

// Monitor is a health-check entity in Uptime Kuma.
type Monitor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a global tag entity. Monitors reference tags by ID, so attaching
// a tag to a monitor requires the tag entity to exist first.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Client talks to the Uptime Kuma management API over HTTP.
type Client struct {
	base      string
	cfg       Config
	session   *sessionAuth
	transport *transport.Client
}

// sessionAuth carries the bearer credential for the run. The token is
// either the configured static API token or the session token returned
// by the login exchange.
type sessionAuth struct {
	token string
}

// Apply implements transport.Authenticator.
func (a *sessionAuth) Apply(req *http.Request) {
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
}

// New creates a client for the given Uptime Kuma instance. The session is
// not established until Login is called.
func New(cfg Config) *Client {
	session := &sessionAuth{token: cfg.APIToken}

	opts := []transport.Option{transport.WithTimeout(constants.DefaultAPITimeout)}
	if !cfg.VerifySSL {
		opts = append(opts, transport.WithInsecureTLS())
	}

	return &Client{
		base:      strings.TrimRight(cfg.BaseURL, "/"),
		cfg:       cfg,
		session:   session,
		transport: transport.New(session, opts...),
	}
}

// Login establishes the session for this run. With a static API token the
// token is validated against the API; with username/password the login
// exchange returns a session token used for all subsequent requests.
// Every failure here, including an unreachable server, is an
// authentication error: without a session no service can be processed.
func (c *Client) Login(ctx context.Context) error {
	if c.cfg.APIToken != "" {
		// Validate the token with a cheap authenticated read.
		resp, err := c.transport.Get(ctx, c.base+"/api/tags")
		if err != nil {
			return errors.NewAuthenticationError(c.base, "token", "server unreachable", err)
		}
		if err := transport.DecodeResponse(resp, nil); err != nil {
			return errors.NewAuthenticationError(c.base, "token", "token rejected", err)
		}
		return nil
	}

	body := map[string]string{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	}
	resp, err := c.transport.PostJSON(ctx, c.base+"/api/login", body)
	if err != nil {
		return errors.NewAuthenticationError(c.base, "password", "server unreachable", err)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := transport.DecodeResponse(resp, &payload); err != nil {
		return errors.NewAuthenticationError(c.base, "password", "login rejected", err)
	}
	if payload.Token == "" {
		return errors.NewAuthenticationError(c.base, "password", "login response carried no session token", nil)
	}

	c.session.token = payload.Token
	return nil
}

// Monitors lists all monitors visible to the authenticated session.
func (c *Client) Monitors(ctx context.Context) ([]Monitor, error) {
	resp, err := c.transport.Get(ctx, c.base+"/api/monitors")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Monitors []Monitor `json:"monitors"`
	}
	if err := transport.DecodeResponse(resp, &payload); err != nil {
		return nil, err
	}
	return payload.Monitors, nil
}

// Tags lists all global tag entities.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	resp, err := c.transport.Get(ctx, c.base+"/api/tags")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Tags []Tag `json:"tags"`
	}
	if err := transport.DecodeResponse(resp, &payload); err != nil {
		return nil, err
	}
	return payload.Tags, nil
}

// MonitorTags lists the tags currently attached to a monitor.
func (c *Client) MonitorTags(ctx context.Context, monitorID int64) ([]Tag, error) {
	resp, err := c.transport.Get(ctx, c.monitorTagsURL(monitorID))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Tags []Tag `json:"tags"`
	}
	if err := transport.DecodeResponse(resp, &payload); err != nil {
		return nil, err
	}
	return payload.Tags, nil
}

// CreateTag creates a global tag entity.
func (c *Client) CreateTag(ctx context.Context, name, color string) (Tag, error) {
	body := map[string]string{"name": name, "color": color}
	resp, err := c.transport.PostJSON(ctx, c.base+"/api/tags", body)
	if err != nil {
		return Tag{}, err
	}

	var tag Tag
	if err := transport.DecodeResponse(resp, &tag); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// AddMonitorTag attaches an existing tag to a monitor.
func (c *Client) AddMonitorTag(ctx context.Context, monitorID, tagID int64) error {
	body := map[string]int64{"tagId": tagID}
	resp, err := c.transport.PostJSON(ctx, c.monitorTagsURL(monitorID), body)
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, nil)
}

// RemoveMonitorTag detaches a tag from a monitor. The global tag entity
// is left in place.
func (c *Client) RemoveMonitorTag(ctx context.Context, monitorID, tagID int64) error {
	resp, err := c.transport.Delete(ctx, fmt.Sprintf("%s/%d", c.monitorTagsURL(monitorID), tagID))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, nil)
}

func (c *Client) monitorTagsURL(monitorID int64) string {
	return fmt.Sprintf("%s/api/monitors/%d/tags", c.base, monitorID)
}
