package device

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 60 * time.Second

// RealClient implements Client against the appliance's HTTPS API.
type RealClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithRequestTimeout sets the per-request timeout.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.httpClient.Timeout = d
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Appliances
// commonly ship with self-signed management certificates.
func WithInsecureSkipVerify() ClientOption {
	return func(c *RealClient) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		}
	}
}

// WithBaseURL overrides the API base URL entirely (useful for testing against
// a local simulator).
func WithBaseURL(u string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = u
	}
}

// NewRealClient creates a client for the appliance at host, authenticating
// with the given API key.
func NewRealClient(host, apiKey string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		baseURL:    fmt.Sprintf("https://%s/api/", host),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute implements Client.
func (c *RealClient) Execute(ctx context.Context, cmd string) (*Response, error) {
	q := url.Values{}
	q.Set("type", "op")
	q.Set("cmd", cmd)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return ParseResponse(body)
}

// InstallVersion implements Client. The install command itself returns
// synchronously; the appliance becomes unreachable once the restart takes
// effect, which callers accommodate with a settle delay before polling.
func (c *RealClient) InstallVersion(ctx context.Context, version string, restart bool) error {
	if _, err := c.Execute(ctx, SoftwareInstall(version)); err != nil {
		return fmt.Errorf("failed to install version %s: %w", version, err)
	}
	if restart {
		if _, err := c.Execute(ctx, CmdRestart); err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
	}
	return nil
}
