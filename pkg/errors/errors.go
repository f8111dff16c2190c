// Package errors provides custom error types for the versionsync system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the versionsync system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed indicates that authentication with the monitoring system failed
	ErrAuthFailed = errors.New("authentication failed")

	// ErrFetchFailed indicates that a version endpoint could not be read
	ErrFetchFailed = errors.New("version fetch failed")

	// ErrTagApplyFailed indicates that a tag mutation was rejected or lost
	ErrTagApplyFailed = errors.New("tag apply failed")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// AuthenticationError represents a failure to establish a session with the
// monitoring system. It is run-fatal: no service can be reconciled without
// an authenticated session.
type AuthenticationError struct {
	URL     string
	Method  string // "password" or "token"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("authentication with %s failed (%s): %s", e.URL, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication failed (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthFailed
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(url, method, message string, err error) *AuthenticationError {
	return &AuthenticationError{URL: url, Method: method, Message: message, Err: err}
}

// FetchError represents a failure to retrieve a version string from a
// service's version endpoint.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching version from %s failed (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetching version from %s failed: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// NewFetchError creates a new FetchError
func NewFetchError(endpoint string, statusCode int, message string, err error) *FetchError {
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Message: message, Err: err}
}

// MonitorNotFoundError indicates that no monitor in the monitoring system
// carries the configured display name.
type MonitorNotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *MonitorNotFoundError) Error() string {
	return fmt.Sprintf("monitor %q not found", e.Name)
}

// Is implements errors.Is support
func (e *MonitorNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewMonitorNotFoundError creates a new MonitorNotFoundError
func NewMonitorNotFoundError(name string) *MonitorNotFoundError {
	return &MonitorNotFoundError{Name: name}
}

// TagApplyError represents a failed tag operation against a monitor.
// It carries which operation failed; prior successful mutations in the
// same reconciliation are not rolled back.
type TagApplyError struct {
	Operation string // "list", "add", or "remove"
	Tag       string
	MonitorID int64
	Err       error
}

// Error implements the error interface
func (e *TagApplyError) Error() string {
	return fmt.Sprintf("failed to %s tag %q on monitor %d: %v", e.Operation, e.Tag, e.MonitorID, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TagApplyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TagApplyError) Is(target error) bool {
	return target == ErrTagApplyFailed
}

// NewTagApplyError creates a new TagApplyError
func NewTagApplyError(operation, tag string, monitorID int64, err error) *TagApplyError {
	return &TagApplyError{Operation: operation, Tag: tag, MonitorID: monitorID, Err: err}
}

// APIError represents an error response from the Uptime Kuma management API
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return target == ErrAuthFailed
	}
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{Endpoint: endpoint, StatusCode: statusCode, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthFailed checks if an error is an authentication error
func IsAuthFailed(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsFetchFailed checks if an error is a version fetch error
func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

// IsTagApplyFailed checks if an error is a tag mutation error
func IsTagApplyFailed(err error) bool {
	return errors.Is(err, ErrTagApplyFailed)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
