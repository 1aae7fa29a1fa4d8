package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the advisor API HTTP client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates an advisor API client for the given base URL,
// e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("advisor: base URL is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Chat sends a free-text part request and returns the ranked recommendation.
func (c *Client) Chat(ctx context.Context, message string, limit int) (*ChatResponse, error) {
	var resp ChatResponse
	err := c.post(ctx, "/api/chat", ChatRequest{Message: message, Limit: limit}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs the query terms against the catalog verbatim.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	var resp SearchResponse
	err := c.post(ctx, "/api/search", SearchRequest{Query: query, Limit: limit}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports component health. A degraded service returns the report
// together with an APIError carrying status 503.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("advisor: build request: %w", err)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisor: health request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	var resp HealthResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("advisor: decode health response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return &resp, &APIError{
			StatusCode: httpResp.StatusCode,
			Code:       "degraded",
			Message:    resp.Status,
		}
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("advisor: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("advisor: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("advisor: %s request: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return parseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("advisor: decode response: %w", err)
	}
	return nil
}

func parseError(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: resp.Status}
	}
	return &APIError{StatusCode: resp.StatusCode, Code: body.Code, Message: body.Message}
}
