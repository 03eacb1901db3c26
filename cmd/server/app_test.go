package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			LogLevel:       "error",
			AllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Engine: "memory",
		},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-key-thats-long-enough-for-hmac-sha256",
			TokenLifetimeMinutes: 60,
		},
	}

	app, err := newApplication(cfg, slog.Default())
	require.NoError(t, err)

	server := httptest.NewServer(app.setupRouter())
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, server *httptest.Server, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, server, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestRegisteredUserTaskLifecycle(t *testing.T) {
	server := newTestServer(t)

	// Register
	resp, body := doRequest(t, server, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var authResp api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &authResp))
	token := authResp.Token
	require.NotEmpty(t, token)

	// The token authenticates /auth/me
	resp, body = doRequest(t, server, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me api.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "alice@example.com", me.Email)

	// Create a task
	resp, body = doRequest(t, server, http.MethodPost, "/tasks", token, map[string]interface{}{
		"title": "write tests",
		"size":  "medium",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "pending", created.Status)

	// It shows up in the pending list
	resp, body = doRequest(t, server, http.MethodGet, "/tasks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list api.TaskListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, created.ID, list.Tasks[0].ID)

	// Complete it
	resp, body = doRequest(t, server, http.MethodPost, fmt.Sprintf("/tasks/%d/complete", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var completed api.TaskResponse
	require.NoError(t, json.Unmarshal(body, &completed))
	assert.Equal(t, "completed", completed.Status)

	// It moves to the completed list
	resp, body = doRequest(t, server, http.MethodGet, "/tasks/completed", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Count)

	// Delete it
	resp, _ = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnonymousRequestsShareDemoIdentity(t *testing.T) {
	server := newTestServer(t)

	// An anonymous request creates a task under the demo identity.
	resp, _ := doRequest(t, server, http.MethodPost, "/tasks", "", map[string]string{
		"title": "demo task",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A second anonymous request sees the same backlog.
	resp, body := doRequest(t, server, http.MethodGet, "/tasks", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list api.TaskListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "demo task", list.Tasks[0].Title)

	// The demo fallback does not extend to /auth/me.
	resp, _ = doRequest(t, server, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAnonymousAndRegisteredBacklogsAreSeparate(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, server, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "bob@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var authResp api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &authResp))

	resp, _ = doRequest(t, server, http.MethodPost, "/tasks", authResp.Token, map[string]string{
		"title": "bob's task",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Anonymous callers do not see Bob's task.
	resp, body = doRequest(t, server, http.MethodGet, "/tasks", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list api.TaskListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 0, list.Count)
}

func TestBadTokenIsRejectedNotDemoted(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doRequest(t, server, http.MethodGet, "/tasks", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFocusEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, server, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "carol@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var authResp api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &authResp))
	token := authResp.Token

	for _, spec := range []struct{ title, size string }{
		{"a", "tiny"}, {"b", "medium"}, {"c", "big"}, {"d", "tiny"},
	} {
		resp, _ = doRequest(t, server, http.MethodPost, "/tasks", token, map[string]string{
			"title": spec.title,
			"size":  spec.size,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body = doRequest(t, server, http.MethodGet, "/tasks/focus", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list api.TaskListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Equal(t, 3, list.Count)

	sizes := make(map[string]int)
	for _, item := range list.Tasks {
		sizes[item.Size]++
	}
	assert.Equal(t, 1, sizes["tiny"])
	assert.Equal(t, 1, sizes["medium"])
	assert.Equal(t, 1, sizes["big"])
}

func TestUnknownDatabaseEngine(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "error", AllowedOrigins: []string{"*"}},
		Database: config.DatabaseConfig{Engine: "cassandra"},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-key-thats-long-enough-for-hmac-sha256",
			TokenLifetimeMinutes: 60,
		},
	}

	_, err := newApplication(cfg, slog.Default())
	assert.Error(t, err)
}
