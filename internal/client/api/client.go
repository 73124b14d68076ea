// Package api implements the authenticated HTTP client for the Atelier
// service. It injects the current session credential into outbound requests,
// classifies failures into the shared error taxonomy, and signals the
// session manager when a previously accepted credential is rejected.
//
// There is no retry policy anywhere in this client: a single failed call is
// a single failed call, and any resilience belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/craftops/atelier/internal/client/models"
	"github.com/craftops/atelier/internal/client/session"
	"github.com/craftops/atelier/internal/common"
	"github.com/craftops/atelier/internal/logging"
)

// TokenProvider yields the credential to attach to outbound requests.
// An empty string means the request goes out without one; the remote
// service is the final authority on whether the resource requires it.
type TokenProvider interface {
	Token() string
}

// TokenProviderFunc adapts a plain function to the TokenProvider interface.
type TokenProviderFunc func() string

func (f TokenProviderFunc) Token() string { return f() }

// Client talks to the Atelier REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	log     logging.Logger

	// onUnauthorized is invoked whenever a bearer-authenticated request is
	// rejected with 401. Wired to the session manager's ForceInvalidate.
	onUnauthorized func()
}

// New constructs a Client against baseURL. The timeout bounds every request;
// no other timeout exists in the client.
func New(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// SetInvalidationHook registers the callback fired on credential rejection.
// Set once during wiring, before the client is used.
func (c *Client) SetInvalidationHook(fn func()) {
	c.onUnauthorized = fn
}

// errorBody is the error envelope the service returns on failures.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes the response into out (when non-nil).
// token is attached as a bearer credential when non-empty. authCall marks
// login/register/me requests: their 401 means "credentials rejected" and is
// the caller's business, while a 401 on any other call means a previously
// accepted credential expired and triggers the invalidation hook.
func (c *Client) do(ctx context.Context, method, path string, token string, body, out any, authCall bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)

	return c.classify(ctx, resp.StatusCode, eb.Error, authCall)
}

func (c *Client) classify(ctx context.Context, status int, message string, authCall bool) error {
	switch {
	case status == http.StatusUnauthorized && authCall:
		return wrap(common.ErrInvalidCredentials, message)
	case status == http.StatusUnauthorized:
		c.log.Warn(ctx, "credential rejected mid-session", "status", status)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return wrap(common.ErrUnauthorized, message)
	case status == http.StatusBadRequest:
		return wrap(common.ErrInvalidInput, message)
	case status == http.StatusNotFound:
		return wrap(common.ErrNotFound, message)
	case status >= 500:
		return wrap(common.ErrServerError, message)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, message)
	}
}

func wrap(sentinel error, message string) error {
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

// ---- auth endpoints ----

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

type meResponse struct {
	User session.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user identity.
// A 401 maps to common.ErrInvalidCredentials; no session invalidation fires.
func (c *Client) Login(ctx context.Context, email, password string) (string, session.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		"", credentialsRequest{Email: email, Password: password}, &resp, true)
	if err != nil {
		return "", session.User{}, err
	}
	return resp.AccessToken, resp.User, nil
}

// Register creates an account and returns a bearer token and identity.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, session.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		"", registerRequest{Name: name, Email: email, Password: password}, &resp, true)
	if err != nil {
		return "", session.User{}, err
	}
	return resp.AccessToken, resp.User, nil
}

// Me validates a candidate token against the identity endpoint. The token is
// passed explicitly because it is being validated, not read from the current
// session; rejection is reported to the caller without firing the
// invalidation hook.
func (c *Client) Me(ctx context.Context, token string) (session.User, error) {
	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &resp, true); err != nil {
		return session.User{}, err
	}
	return resp.User, nil
}

// ---- dashboard endpoints ----

// Summary fetches the aggregate dashboard metrics.
func (c *Client) Summary(ctx context.Context) (models.Summary, error) {
	var out models.Summary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", c.tokens.Token(), nil, &out, false); err != nil {
		return models.Summary{}, err
	}
	return out, nil
}

// SalesChart fetches the monthly sales series, chronological.
func (c *Client) SalesChart(ctx context.Context) ([]models.SalesPoint, error) {
	var out []models.SalesPoint
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/sales-chart", c.tokens.Token(), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// TopProducts fetches the best-sellers list, ordered by the service.
func (c *Client) TopProducts(ctx context.Context) ([]models.TopProduct, error) {
	var out []models.TopProduct
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/top-products", c.tokens.Token(), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}
