package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/uptimekit/versionsync/pkg/errors"
	"github.com/uptimekit/versionsync/pkg/reconcile"
)

// Services returns the ordered service list for this run. A services
// YAML file takes precedence over the SERVICES_CONFIG JSON env var.
// The list must be non-empty and every entry must validate.
func (c *Config) Services() ([]reconcile.ServiceSpec, error) {
	var (
		services []reconcile.ServiceSpec
		err      error
	)

	switch {
	case c.ServicesFile != "":
		services, err = loadServicesFile(c.ServicesFile)
	case c.ServicesJSON != "":
		services, err = parseServicesJSON(c.ServicesJSON)
	default:
		return nil, errors.NewConfigError("services", "no services configured: set SERVICES_CONFIG or pass --services", nil)
	}
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, errors.NewConfigError("services", "service list is empty", nil)
	}
	for i, svc := range services {
		if err := svc.Validate(); err != nil {
			return nil, errors.NewConfigError("services", "invalid service at index "+strconv.Itoa(i), err)
		}
	}

	return services, nil
}

// parseServicesJSON parses the SERVICES_CONFIG JSON array.
func parseServicesJSON(raw string) ([]reconcile.ServiceSpec, error) {
	var services []reconcile.ServiceSpec
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, errors.NewConfigError("services", "parse SERVICES_CONFIG", err)
	}
	return services, nil
}

// loadServicesFile reads a services YAML file. The file may be either a
// bare list or a document with a top-level `services` key.
func loadServicesFile(path string) ([]reconcile.ServiceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("services", "read services file "+path, err)
	}

	var doc struct {
		Services []reconcile.ServiceSpec `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Services) > 0 {
		return doc.Services, nil
	}

	var services []reconcile.ServiceSpec
	if err := yaml.Unmarshal(data, &services); err != nil {
		return nil, errors.NewConfigError("services", "parse services file "+path, err)
	}
	return services, nil
}
