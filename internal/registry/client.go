package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getlawrence/typed-install/internal/typesync"
)

const (
	// NPMRegistryBaseURL is the base URL for the npm registry API
	NPMRegistryBaseURL = "https://registry.npmjs.org"

	// DefaultTimeout bounds a single registry request.
	DefaultTimeout = 30 * time.Second
)

// Client represents a client for the npm registry API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new npm client
func NewClient() *Client {
	return NewClientWithBaseURL(NPMRegistryBaseURL, DefaultTimeout)
}

// NewClientWithBaseURL creates a new npm client with a custom base URL
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = NPMRegistryBaseURL
	}
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

// PackageURL returns the metadata URL of a package. The slash of a scoped
// name is percent-encoded.
func (c *Client) PackageURL(name string) string {
	return c.baseURL + "/" + url.PathEscape(name)
}

// Exists reports whether the registry knows the package.
// 404 means absent; any other non-2xx status is an error.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PackageURL(name), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request for package %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/vnd.npm.install-v1+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to fetch package %s: %w", name, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("npm registry returned status %d for package %s", resp.StatusCode, name)
	}
}

// HasTypes reports whether the companion declaration package of name is published.
func (c *Client) HasTypes(ctx context.Context, name string) (bool, error) {
	return c.Exists(ctx, typesync.CompanionName(name))
}
