package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bordblick/bordblick-cli/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	// The portal rejects requests without a browser-looking User-Agent.
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// SnapshotSource produces merged snapshots for the dashboard to ingest.
// Live HTTP polling and fixture replay are interchangeable behind it.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// Client is the HTTP client for the onboard portal
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the portal base URL
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new portal client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseURL,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetStatus fetches and parses the status resource
func (c *Client) GetStatus(ctx context.Context) (*models.StatusResponse, error) {
	body, err := c.GetStatusRaw(ctx)
	if err != nil {
		return nil, err
	}

	var resp models.StatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	return &resp, nil
}

// GetStatusRaw fetches the status resource and returns raw JSON
func (c *Client) GetStatusRaw(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, c.baseURL+EndpointStatus)
}

// GetTrip fetches and parses the trip resource
func (c *Client) GetTrip(ctx context.Context) (*models.TripResponse, error) {
	body, err := c.GetTripRaw(ctx)
	if err != nil {
		return nil, err
	}

	var resp models.TripResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse trip response: %w", err)
	}
	return &resp, nil
}

// GetTripRaw fetches the trip resource and returns raw JSON
func (c *Client) GetTripRaw(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, c.baseURL+EndpointTrip)
}

// Snapshot fetches both resources and merges them. Implements SnapshotSource.
func (c *Client) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	status, err := c.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	trip, err := c.GetTrip(ctx)
	if err != nil {
		return nil, err
	}

	return models.BuildSnapshot(status, trip), nil
}

// doRequest performs an HTTP GET request against the portal
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrNotOnTrain, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
