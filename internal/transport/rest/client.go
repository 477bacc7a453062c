// Package rest is the configured HTTP client every domain service goes
// through. It attaches the bearer token from the local session, sends an
// idempotency key with each mutating call, and on an unauthorized
// response purges the persisted session before notifying the caller.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthorized is returned after the session has been purged. Callers
// must not apply any further store mutation once they see it.
var ErrUnauthorized = errors.New("unauthorized")

type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Session is the slice of local storage the client needs: the current
// token and the ability to purge everything on a 401.
type Session interface {
	Token() (string, bool)
	Clear() error
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *envelopeError  `json:"error,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

type Client struct {
	baseURL        string
	http           *http.Client
	session        Session
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration, session Session) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL + "/api/v1",
		http:    &http.Client{Timeout: timeout},
		session: session,
	}
}

// OnUnauthorized registers the forced-logout hook, the equivalent of
// redirecting to the login view.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	if err := c.attachToken(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.forceLogout()
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	data, err := Normalize(env.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// attachToken adds the bearer header. An already-expired token is
// treated as a 401 without a round trip.
func (c *Client) attachToken(req *http.Request) error {
	if c.session == nil {
		return nil
	}
	token, ok := c.session.Token()
	if !ok || token == "" {
		return nil
	}
	if tokenExpired(token) {
		return c.forceLogout()
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) forceLogout() error {
	if c.session != nil {
		_ = c.session.Clear()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return ErrUnauthorized
}

func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// Download fetches a binary payload (payslip PDFs) and writes it to
// dest, the stand-in for the browser's synthetic anchor-click save.
func (c *Client) Download(ctx context.Context, path, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if err := c.attachToken(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.forceLogout()
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: "download failed"}
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, blob, 0o644)
}
