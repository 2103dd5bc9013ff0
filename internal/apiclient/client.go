// Package apiclient talks to the DragonFit REST API and implements the
// repository ports on top of it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/lontso23/dragon-fit/internal/repository"
	"github.com/lontso23/dragon-fit/internal/stats"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// ErrTokenExpired is returned before any request is sent when the bearer
// token carries an exp claim in the past.
var ErrTokenExpired = errors.New("apiclient: token expired")

// APIError is a non-2xx answer other than 404.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("apiclient: api returned %d", e.Status)
	}
	return fmt.Sprintf("apiclient: api returned %d: %s", e.Status, e.Detail)
}

// Client is a REST client for one authenticated user.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

// Compile-time check: Client answers the progress and stats queries.
var (
	_ repository.ProgressRepository = (*Client)(nil)
	_ repository.StatsRepository    = (*Client)(nil)
)

// New creates a Client targeting baseURL. A zero timeout uses DefaultTimeout.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Workouts returns the workout store backed by this client.
func (c *Client) Workouts() *Workouts {
	return &Workouts{c: c}
}

// Sessions returns the session store backed by this client.
func (c *Client) Sessions() *Sessions {
	return &Sessions{c: c}
}

// Stats fetches the dashboard summary computed by the server.
func (c *Client) Stats(ctx context.Context) (stats.Summary, error) {
	var summary stats.Summary
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, jsonInto(&summary, "stats"))
	return summary, err
}

// checkToken reads the exp claim without verifying the signature; the
// server remains the authority. Opaque tokens are sent as they are.
func (c *Client) checkToken() error {
	if c.token == "" {
		return nil
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(c.now()) {
		return ErrTokenExpired
	}
	return nil
}

// do sends one request. in, when non-nil, is encoded as the JSON body;
// decode, when non-nil, consumes a successful response body.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, in any, decode func(io.Reader) error) error {
	if err := c.checkToken(); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: encode %s: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w: %w", method, path, repository.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if decode == nil {
		return nil
	}
	return decode(resp.Body)
}

// newAPIError reads the {"detail": ...} body the API uses for errors,
// falling back to the raw text.
func newAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Detail string `json:"detail"`
	}
	detail := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	return &APIError{Status: resp.StatusCode, Detail: detail}
}

func jsonInto(v any, what string) func(io.Reader) error {
	return func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("apiclient: decode %s: %w", what, err)
		}
		return nil
	}
}
