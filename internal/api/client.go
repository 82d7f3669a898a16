package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout applies to every backend call. Individual calls cannot
// override it.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token attached to each request.
// An empty token means "not logged in", which is a valid pre-auth state.
type TokenSource interface {
	Token() string
}

type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client is the one shared HTTP client for the CRM backend. It resolves
// the token per request through its TokenSource rather than holding a
// mutated default header, so a login takes effect on the very next call.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	onUnauthorized func()
	onResult       func(method, path string, status int, err error)
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// OnUnauthorized registers the observer notified on any 401 response.
// The client itself never clears session state or redirects; policy
// stays with the application.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// OnResult registers a hook called after every round-trip, used for
// backend call metrics.
func (c *Client) OnResult(fn func(method, path string, status int, err error)) {
	c.onResult = fn
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.report(method, path, 0, err)
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.report(method, path, resp.StatusCode, err)
		return fmt.Errorf("backend %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Path: path, Message: serverMessage(data)}
		c.report(method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	c.report(method, path, resp.StatusCode, nil)
	if out == nil {
		return nil
	}
	return unwrap(data, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if t := NormalizeToken(c.tokens.Token()); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
}

func (c *Client) report(method, path string, status int, err error) {
	if c.onResult != nil {
		c.onResult(method, path, status, err)
	}
}

// unwrap decodes the backend's {data: ...} envelope into out, falling
// back to the raw body when the envelope key is absent.
func unwrap(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(body, out)
}

// serverMessage pulls the optional {message} field out of an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// NormalizeToken unwraps token values that were persisted as a JSON
// object ({"token": ...} or {"accessToken": ...}) instead of a plain
// string. Older builds of the dashboard stored both shapes.
func NormalizeToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") {
		return raw
	}
	var obj struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return raw
	}
	if obj.Token != "" {
		return obj.Token
	}
	if obj.AccessToken != "" {
		return obj.AccessToken
	}
	return raw
}
