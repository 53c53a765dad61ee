// internal/app/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Tokens is the narrow view of the session store the gateway is allowed:
// read the bearer token for the current request, and evict the session
// when the API says the token is no longer good.
//
// Both methods are request-scoped; the session middleware wires the
// concrete implementation through the request context.
type Tokens interface {
	// Token returns the bearer token for this request, or "" when the
	// caller is not signed in.
	Token(ctx context.Context) string
	// Evict clears the persisted token for this request's session.
	Evict(ctx context.Context)
}

// Config holds the tunables for the API client.
type Config struct {
	BaseURL         string        // e.g. "http://localhost:3000/api/v1"
	Timeout         time.Duration // per-request; 0 means DefaultTimeout
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

const (
	DefaultTimeout         = 30 * time.Second
	defaultMaxIdleConns    = 20
	defaultIdleConnTimeout = 90 * time.Second
)

// Client talks to the driver admin REST API. It attaches the bearer token
// when one is present, classifies failures by status, and evicts the
// session on any 401 before surfacing the error. It never retries.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  Tokens
	log     *zap.Logger
}

// New builds a Client with a tuned transport. SetTokens must be called
// before authenticated requests are issued.
func New(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	idleTimeout := cfg.IdleConnTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleConnTimeout
	}

	tr := &http.Transport{
		DialContext:     (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		MaxIdleConns:    maxIdle,
		IdleConnTimeout: idleTimeout,
	}

	return &Client{
		http:    &http.Client{Transport: tr, Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     logger,
	}
}

// SetTokens wires in the session store. Called once from bootstrap after
// the session manager exists (the two depend on each other).
func (c *Client) SetTokens(t Tokens) {
	c.tokens = t
}

// Do issues one API call. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded response body. A 401 evicts the session
// before the classified error is returned.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: %s: encode body: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("gateway: %s: new request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed", zap.String("op", op), zap.Error(err))
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
			// Cross-cutting: a rejected token invalidates the whole
			// session, no matter which operation tripped it.
			c.tokens.Evict(ctx)
		}
		c.log.Warn("api call rejected",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return &Error{
			Kind:   classify(resp.StatusCode),
			Status: resp.StatusCode,
			Op:     op,
			Body:   strings.TrimSpace(string(data)),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("gateway: %s: decode response: %w", op, err)
		}
	}
	return nil
}

// Ping verifies the API host answers HTTP at all. Any response, including
// an auth rejection, counts as reachable; only transport failures error.
// It deliberately bypasses Do so an unauthenticated 401 cannot evict a
// live session.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/users", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "PING", Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
