// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package fire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://manage.24fire.de/api"
	DefaultTimeout = 30 * time.Second
	UserAgent      = "firectl/1.0.0"

	apiKeyHeader = "X-Fire-Apikey"
)

// Client is the main API client for the 24fire management API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	userAgent  string
	logger     *zap.Logger

	// API Services
	Account    *AccountService
	Services   *ServicesService
	KVM        *KVMService
	Backup     *BackupService
	Traffic    *TrafficService
	Monitoring *MonitoringService
	Webspace   *WebspaceService
	Domain     *DomainService
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets a custom user agent.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for request-level debug output.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new 24fire API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: UserAgent,
		logger:    zap.NewNop(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Account = NewAccountService(c)
	c.Services = NewServicesService(c)
	c.KVM = NewKVMService(c)
	c.Backup = NewBackupService(c)
	c.Traffic = NewTrafficService(c)
	c.Monitoring = NewMonitoringService(c)
	c.Webspace = NewWebspaceService(c)
	c.Domain = NewDomainService(c)

	return c
}

// New creates a new 24fire API client (alias for NewClient).
func New(apiKey string, opts ...ClientOption) *Client {
	return NewClient(apiKey, opts...)
}

// envelope is the fixed response wrapper every 24fire endpoint returns.
type envelope struct {
	Status    string          `json:"status"`
	RequestID string          `json:"requestID,omitempty"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

const statusSuccess = "success"

// roundTrip executes one request and returns the decoded envelope. Every
// non-2xx status, non-success envelope status and decoding failure is mapped
// onto the error taxonomy; callers only ever see a nil envelope with an error
// or a success envelope.
func (c *Client) roundTrip(ctx context.Context, method, path string, form url.Values) (*envelope, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	var env envelope
	if resp.StatusCode >= 400 {
		if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
			env.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, NewAuthError(env.Message)
		}
		return nil, NewAPIError(resp.StatusCode, env.Message)
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return &envelope{Status: statusSuccess}, nil
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, NewParseError("failed to decode response envelope", err)
	}

	if env.Status != statusSuccess {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request rejected with status %q", env.Status)
		}
		return nil, NewAPIError(0, msg)
	}

	return &env, nil
}

// do executes a request and unmarshals the envelope's data field into v.
// v may be nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, v interface{}) error {
	env, err := c.roundTrip(ctx, method, path, form)
	if err != nil {
		return err
	}

	if v != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, v); err != nil {
			return NewParseError("failed to unmarshal response data", err)
		}
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, v interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

// Post performs a POST request with form data.
func (c *Client) Post(ctx context.Context, path string, data url.Values, v interface{}) error {
	return c.do(ctx, http.MethodPost, path, data, v)
}

// Put performs a PUT request with form data.
func (c *Client) Put(ctx context.Context, path string, data url.Values, v interface{}) error {
	return c.do(ctx, http.MethodPut, path, data, v)
}

// Delete performs a DELETE request with optional form data. The 24fire API
// expects bodies on some DELETE calls (backup delete, dns remove).
func (c *Client) Delete(ctx context.Context, path string, data url.Values, v interface{}) error {
	return c.do(ctx, http.MethodDelete, path, data, v)
}