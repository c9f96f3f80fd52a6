// Package client is the REST wrapper hrctl uses to talk to the hrdesk server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adamanr/hrdesk/internal/session"
)

// ErrUnauthorized is returned for HTTP 401 on an authenticated call. The
// stored session has already been cleared when it is returned.
var ErrUnauthorized = errors.New("session expired, please log in again")

// APIError covers network failures (Status 0) and non-2xx replies.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

type envelope struct {
	Status int             `json:"status"`
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Session() (session.Session, error) {
	return c.store.Load()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	sess, err := c.store.Load()
	if err != nil {
		return err
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized && sess.Token != "" {
		c.logger.Warn("Session rejected by server", slog.String("path", path))
		if err = c.store.Clear(); err != nil {
			c.logger.Error("Error clearing session", slog.String("error", err.Error()))
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

		var payload struct {
			Error string `json:"error"`
		}
		if decodeErr == nil && json.Unmarshal(env.Data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}

		c.logger.Warn("Request rejected", slog.String("path", path), slog.Int("status", resp.StatusCode), slog.String("error", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}

	if decodeErr != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response: " + decodeErr.Error()}
	}

	if err = json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}

	return nil
}
