// Package apiclient talks to the remote user service. It performs single
// round-trips with no retries; retry policy belongs to the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"greetuser/internal/pkg/xerrors"
)

// DefaultTimeout bounds each round-trip when the caller does not configure
// one.
const DefaultTimeout = 15 * time.Second

// Client is a lightweight HTTP helper for the user service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client with sane defaults. A non-positive timeout falls
// back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateUser registers a new account and returns its assigned user id.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (int64, error) {
	resp, err := doJSON[CreateUserRequest, userIDResponse](ctx, c, http.MethodPost, "/api/users", &req)
	if err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login authenticates an existing account and returns its user id.
func (c *Client) Login(ctx context.Context, req LoginRequest) (int64, error) {
	resp, err := doJSON[LoginRequest, userIDResponse](ctx, c, http.MethodPost, "/api/login", &req)
	if err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// GetUserInfo fetches the profile snapshot for a user id.
func (c *Client) GetUserInfo(ctx context.Context, id int64) (*UserInfo, error) {
	return doJSON[struct{}, UserInfo](ctx, c, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
}

func doJSON[T any, R any](ctx context.Context, c *Client, method, path string, payload *T) (*R, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, rejectionError(resp.StatusCode, bodyBytes)
	}

	var out R
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// rejectionError shapes a non-2xx response into an APIError. The service
// normally sends {"error", "message"}; anything else rides along as the raw
// body so the caller can still show it.
func rejectionError(status int, body []byte) error {
	apiErr := &xerrors.APIError{Status: status, Body: body}
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Code = xerrors.ErrorCode(payload.Error)
		apiErr.Message = payload.Message
	}
	return apiErr
}
