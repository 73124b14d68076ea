package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftops/atelier/internal/common"
	"github.com/craftops/atelier/internal/logging"
)

type staticTokens struct{ token string }

func (s staticTokens) Token() string { return s.token }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newClient(t *testing.T, h http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, staticTokens{token: token}, testLogger())
}

func TestClient_Login_Success(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a credential")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@x.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123",
			"user":         map[string]string{"id": "1", "name": "Ana", "email": "ana@x.com"},
		})
	}, "")

	token, user, err := c.Login(context.Background(), "ana@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, "Ana", user.Name)
}

func TestClient_Login_RejectedMapsToInvalidCredentials(t *testing.T) {
	var hookCalls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}, "")
	c.SetInvalidationHook(func() { hookCalls.Add(1) })

	_, _, err := c.Login(context.Background(), "ana@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Zero(t, hookCalls.Load(), "a rejected login must not invalidate the session")
}

func TestClient_Register_ValidationError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}, "")

	_, _, err := c.Register(context.Background(), "Ana", "ana@x.com", "pw")
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestClient_Me_PassesCandidateToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer candidate", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"id": "1", "name": "Ana"},
		})
	}, "session-token-ignored")

	user, err := c.Me(context.Background(), "candidate")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestClient_Me_RejectionDoesNotFireHook(t *testing.T) {
	var hookCalls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "")
	c.SetInvalidationHook(func() { hookCalls.Add(1) })

	_, err := c.Me(context.Background(), "stale")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Zero(t, hookCalls.Load())
}

func TestClient_Summary_InjectsBearer(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"current_month_revenue": 1234.5,
			"revenue_growth":        10.0,
		})
	}, "tok123")

	summary, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.5, summary.CurrentMonthRevenue)
}

func TestClient_Summary_NoCredentialStillAttempted(t *testing.T) {
	var sawAuth atomic.Bool
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth.Store(r.Header.Get("Authorization") != "")
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}, "")

	_, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth.Load(), "call goes out without a credential when unauthenticated")
}

func TestClient_ProtectedRead_401FiresHookAndSurfacesUnauthorized(t *testing.T) {
	var hookCalls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}, "stale")
	c.SetInvalidationHook(func() { hookCalls.Add(1) })

	_, err := c.SalesChart(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, int32(1), hookCalls.Load(), "hook must fire exactly once for one rejected call")
}

func TestClient_ServerErrorClassified(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "tok")

	_, err := c.TopProducts(context.Background())
	require.ErrorIs(t, err, common.ErrServerError)
}

func TestClient_UnreachableClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := New(srv.URL, time.Second, staticTokens{}, testLogger())

	_, err := c.Summary(context.Background())
	require.ErrorIs(t, err, common.ErrUnreachable)
}
