package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptimekit/versionsync/pkg/errors"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("UPTIME_KUMA_URL", "http://kuma.example.com:3001")
	t.Setenv("UPTIME_KUMA_USERNAME", "admin")
	t.Setenv("UPTIME_KUMA_PASSWORD", "hunter2")
	t.Setenv("VERIFY_SSL", "true")
	t.Setenv("SERVICES_CONFIG", `[{"monitorName":"web","versionEndpoint":"http://web/version.txt"}]`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://kuma.example.com:3001", cfg.URL)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.True(t, cfg.VerifySSL)
	assert.NotEmpty(t, cfg.ServicesJSON)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://uptime-kuma.uptime-kuma.svc.cluster.local:3001", cfg.URL)
	assert.False(t, cfg.VerifySSL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	t.Run("password is enough", func(t *testing.T) {
		cfg := &Config{URL: "http://kuma", Password: "x"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("token is enough", func(t *testing.T) {
		cfg := &Config{URL: "http://kuma", APIToken: "x"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("no credentials", func(t *testing.T) {
		cfg := &Config{URL: "http://kuma"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("no url", func(t *testing.T) {
		cfg := &Config{Password: "x"}
		assert.True(t, errors.IsValidationError(cfg.Validate()))
	})
}

func TestServicesFromJSON(t *testing.T) {
	t.Run("parses ordered list with defaults", func(t *testing.T) {
		cfg := &Config{ServicesJSON: `[
			{"monitorName":"web","versionEndpoint":"http://web/version.txt"},
			{"monitorName":"api","versionEndpoint":"http://api/version.txt","tagPrefix":"chart"}
		]`}

		services, err := cfg.Services()
		require.NoError(t, err)
		require.Len(t, services, 2)

		assert.Equal(t, "web", services[0].MonitorName)
		assert.Equal(t, "version", services[0].Prefix())
		assert.Equal(t, "api", services[1].MonitorName)
		assert.Equal(t, "chart", services[1].Prefix())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		cfg := &Config{ServicesJSON: `{"not":"a list"`}
		_, err := cfg.Services()
		require.Error(t, err)
		var cfgErr *errors.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("empty list", func(t *testing.T) {
		cfg := &Config{ServicesJSON: `[]`}
		_, err := cfg.Services()
		require.Error(t, err)
	})

	t.Run("entry missing endpoint", func(t *testing.T) {
		cfg := &Config{ServicesJSON: `[{"monitorName":"web"}]`}
		_, err := cfg.Services()
		require.Error(t, err)
	})

	t.Run("nothing configured", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.Services()
		require.Error(t, err)
	})
}

func TestServicesFromYAMLFile(t *testing.T) {
	t.Run("bare list", func(t *testing.T) {
		path := writeFile(t, `
- monitorName: web
  versionEndpoint: http://web/version.txt
- monitorName: api
  versionEndpoint: http://api/version.txt
  tagPrefix: chart
`)
		cfg := &Config{ServicesFile: path}
		services, err := cfg.Services()
		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.Equal(t, "chart", services[1].TagPrefix)
	})

	t.Run("services key", func(t *testing.T) {
		path := writeFile(t, `
services:
  - monitorName: web
    versionEndpoint: http://web/version.txt
`)
		cfg := &Config{ServicesFile: path}
		services, err := cfg.Services()
		require.NoError(t, err)
		require.Len(t, services, 1)
	})

	t.Run("file takes precedence over env JSON", func(t *testing.T) {
		path := writeFile(t, `
- monitorName: from-file
  versionEndpoint: http://file/version.txt
`)
		cfg := &Config{
			ServicesFile: path,
			ServicesJSON: `[{"monitorName":"from-env","versionEndpoint":"http://env/version.txt"}]`,
		}
		services, err := cfg.Services()
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "from-file", services[0].MonitorName)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{ServicesFile: "/nonexistent/services.yaml"}
		_, err := cfg.Services()
		require.Error(t, err)
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
