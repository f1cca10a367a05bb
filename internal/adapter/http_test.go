// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydev-web/dmlabs-client/internal/config"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/models"
)

// newTestAdapter creates an httpBackendAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	cfg := config.ClientAdapter{BackendURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPBackendAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func TestNewHTTPBackendAdapter_RequiresURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ── GetTools ────────────────────────────────────────────────────────────────

func TestGetTools_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "getTools", r.PostFormValue("action"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ToolsResponse{
			Success: true,
			Tools: []models.BackendTool{
				{ID: "idea-finder", Name: "Idea Finder", Stage: 1, Plan: models.PlanFree, URL: "https://tools.example.com/idea"},
			},
			FrameworkStages: map[string]models.StageMetadata{
				"1": {Title: "Stage 1: Idea", Goal: "Find a proven idea", Plan: models.PlanFree},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTools(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "idea-finder", got.Tools[0].ID)
	assert.Equal(t, "https://tools.example.com/idea", got.Tools[0].URL)
	assert.Contains(t, got.FrameworkStages, "1")
}

func TestGetTools_BackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ToolsResponse{Success: false, Message: "sheet unavailable"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTools(context.Background())

	require.Error(t, err)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "sheet unavailable", backendErr.Message)
}

func TestGetTools_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTools(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGetTools_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTools(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── GetToolURL ──────────────────────────────────────────────────────────────

func TestGetToolURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "getTool", r.PostFormValue("action"))
		assert.Equal(t, "idea-finder", r.PostFormValue("toolId"))

		_ = json.NewEncoder(w).Encode(models.ToolResponse{
			Success: true,
			Tool:    models.BackendTool{ID: "idea-finder", URL: "https://tools.example.com/idea"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	url, err := a.GetToolURL(context.Background(), "idea-finder")

	require.NoError(t, err)
	assert.Equal(t, "https://tools.example.com/idea", url)
}

func TestGetToolURL_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// success=true but no url in the payload
		_ = json.NewEncoder(w).Encode(models.ToolResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetToolURL(context.Background(), "ghost")

	require.Error(t, err)
	var backendErr *BackendError
	assert.ErrorAs(t, err, &backendErr)
}

// ── Login / Signup ──────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "login", r.PostFormValue("action"))
		assert.Equal(t, "alice@example.com", r.PostFormValue("email"))
		assert.Equal(t, "s3cret", r.PostFormValue("password"))

		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success:    true,
			UserID:     "u-1",
			Name:       "Alice",
			Plan:       models.PlanPremium,
			ExpiryDate: "2027-01-31",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, models.PlanPremium, got.Plan)
	assert.Equal(t, "2027-01-31", got.ExpiryDate)
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: false, Message: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice@example.com", "nope")

	require.Error(t, err)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Invalid email or password", backendErr.Message)
}

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "signup", r.PostFormValue("action"))
		assert.Equal(t, "Bob", r.PostFormValue("name"))
		assert.Equal(t, "+2348000000", r.PostFormValue("phone"))

		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: true, UserID: "u-2", Name: "Bob", Plan: models.PlanFree})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), "Bob", "bob@example.com", "pw", "+2348000000")

	require.NoError(t, err)
	assert.Equal(t, "u-2", got.UserID)
	assert.Equal(t, models.PlanFree, got.Plan)
}

// ── ResetPassword ───────────────────────────────────────────────────────────

func TestResetPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "reset-password", r.PostFormValue("action"))

		_ = json.NewEncoder(w).Encode(models.MessageResponse{Success: true, Message: "Instructions sent"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	msg, err := a.ResetPassword(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Instructions sent", msg)
}

func TestResetPassword_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Success: false, Message: "Unknown email"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ResetPassword(context.Background(), "ghost@example.com")

	require.Error(t, err)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Unknown email", backendErr.Message)
}
