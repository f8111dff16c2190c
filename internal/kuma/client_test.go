package kuma

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptimekit/versionsync/pkg/errors"
)

// newTestServer emulates the subset of the Uptime Kuma API the client uses.
func newTestServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, mux
}

func TestLoginWithPassword(t *testing.T) {
	t.Run("successful exchange sets session token", func(t *testing.T) {
		server, mux := newTestServer(t)
		mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "admin", creds["username"])
			assert.Equal(t, "hunter2", creds["password"])
			json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})
		})
		mux.HandleFunc("GET /api/monitors", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"monitors": []Monitor{{ID: 1, Name: "web"}}})
		})

		client := New(Config{BaseURL: server.URL, Username: "admin", Password: "hunter2"})
		require.NoError(t, client.Login(context.Background()))

		monitors, err := client.Monitors(context.Background())
		require.NoError(t, err)
		require.Len(t, monitors, 1)
		assert.Equal(t, "web", monitors[0].Name)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server, mux := newTestServer(t)
		mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Incorrect username or password"))
		})

		client := New(Config{BaseURL: server.URL, Username: "admin", Password: "wrong"})
		err := client.Login(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthFailed(err))
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := New(Config{BaseURL: "http://127.0.0.1:1", Username: "admin", Password: "x"})
		err := client.Login(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthFailed(err))
	})

	t.Run("missing token in response", func(t *testing.T) {
		server, mux := newTestServer(t)
		mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		client := New(Config{BaseURL: server.URL, Username: "admin", Password: "x"})
		err := client.Login(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthFailed(err))
	})
}

func TestLoginWithToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		server, mux := newTestServer(t)
		mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"tags": []Tag{}})
		})

		client := New(Config{BaseURL: server.URL, APIToken: "static-token"})
		require.NoError(t, client.Login(context.Background()))
	})

	t.Run("rejected token", func(t *testing.T) {
		server, mux := newTestServer(t)
		mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		client := New(Config{BaseURL: server.URL, APIToken: "expired"})
		err := client.Login(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthFailed(err))
	})
}

func TestMonitorTags(t *testing.T) {
	server, mux := newTestServer(t)
	mux.HandleFunc("GET /api/monitors/7/tags", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"tags": []Tag{
			{ID: 1, Name: "version-1.0.0", Color: "#3b82f6"},
			{ID: 2, Name: "env-prod", Color: "#10b981"},
		}})
	})

	client := New(Config{BaseURL: server.URL, APIToken: "t"})
	tags, err := client.MonitorTags(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "version-1.0.0", tags[0].Name)
	assert.Equal(t, "env-prod", tags[1].Name)
}

func TestCreateTag(t *testing.T) {
	server, mux := newTestServer(t)
	mux.HandleFunc("POST /api/tags", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "version-2.0.0", body["name"])
		assert.Equal(t, "#3b82f6", body["color"])
		json.NewEncoder(w).Encode(Tag{ID: 9, Name: body["name"], Color: body["color"]})
	})

	client := New(Config{BaseURL: server.URL, APIToken: "t"})
	tag, err := client.CreateTag(context.Background(), "version-2.0.0", "#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, int64(9), tag.ID)
	assert.Equal(t, "version-2.0.0", tag.Name)
}

func TestAddAndRemoveMonitorTag(t *testing.T) {
	server, mux := newTestServer(t)
	var added, removed bool
	mux.HandleFunc("POST /api/monitors/7/tags", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(9), body["tagId"])
		added = true
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("DELETE /api/monitors/7/tags/3", func(w http.ResponseWriter, r *http.Request) {
		removed = true
		w.Write([]byte(`{}`))
	})

	client := New(Config{BaseURL: server.URL, APIToken: "t"})
	require.NoError(t, client.AddMonitorTag(context.Background(), 7, 9))
	require.NoError(t, client.RemoveMonitorTag(context.Background(), 7, 3))
	assert.True(t, added)
	assert.True(t, removed)
}

func TestMutationFailureSurfacesAPIError(t *testing.T) {
	server, mux := newTestServer(t)
	mux.HandleFunc("POST /api/monitors/7/tags", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	client := New(Config{BaseURL: server.URL, APIToken: "t"})
	err := client.AddMonitorTag(context.Background(), 7, 9)
	require.Error(t, err)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
