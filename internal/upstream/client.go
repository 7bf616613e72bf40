package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the one place the console talks HTTP to the HR backend. It
// attaches the bearer token when one exists; when called without a token it
// simply omits the header and lets the backend reject the call.
type Client struct {
	baseURL string
	http    *http.Client
	metrics Metrics
}

// Metrics is implemented by observability.Prom. Nil disables recording.
type Metrics interface {
	ObserveUpstream(op string, fn func() error) error
}

func NewClient(baseURL string, timeout time.Duration, metrics Metrics) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

// errorEnvelope matches the backend's error body shape:
// {"error":{"code":"...","message":"..."}}
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	call := func() error {
		var reqBody io.Reader

		if body != nil {
			b, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("encode %s request: %w", op, err)
			}
			reqBody = bytes.NewReader(b)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)

		if err != nil {
			return fmt.Errorf("build %s request: %w", op, err)
		}

		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		req.Header.Set("Accept", "application/json")

		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(req)

		if err != nil {
			// never reached the server (or timed out waiting for it)
			return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
		}

		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return errorFromResponse(resp)
		}

		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}

		return nil
	}

	if c.metrics != nil {
		return c.metrics.ObserveUpstream(op, call)
	}

	return call()
}

func errorFromResponse(resp *http.Response) error {
	var envelope errorEnvelope

	// best effort, the body may not be our envelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	_ = json.Unmarshal(raw, &envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthExpired
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, envelope.Error.Message)
	}

	message := envelope.Error.Message

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &StatusError{
		Status:  resp.StatusCode,
		Code:    envelope.Error.Code,
		Message: message,
	}
}
