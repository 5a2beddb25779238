package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/config"
	"github.com/google/uuid"
)

// Client wraps the upstream HR backend REST API. Every record it returns is
// authoritative; the console never recomputes status or hours from them.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// APIError is a non-2xx upstream reply. Message carries the backend's own
// wording verbatim so the console can surface it unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hr api error [%d]: %s", e.StatusCode, e.Message)
}

// envelope matches the upstream response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta is the upstream pagination block.
type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

type ctxKey int

const tokenKey ctxKey = 0

// WithToken stashes the caller's bearer token for forwarding upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// do performs one upstream request, decoding the envelope's data into out.
// Returns the pagination meta when the upstream sends one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) (*Meta, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hr api request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("failed to decode hr api response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		message := env.Message
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode hr api data: %w", err)
		}
	}

	return env.Meta, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func setIfPresent(q url.Values, key string, value *string) {
	if value != nil && *value != "" {
		q.Set(key, *value)
	}
}

func setPagination(q url.Values, page, limit int, sortBy, sortOrder string) {
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	if sortOrder != "" {
		q.Set("sortOrder", sortOrder)
	}
}
