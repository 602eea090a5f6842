package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload is a pending file attachment read from the admin's form, carried
// to the remote API as a multipart file part.
type Upload struct {
	Filename string
	Content  []byte
}

// Client holds the HTTP plumbing shared by the per-collection resource
// clients. It performs no caching and no retries: every operation is one
// fresh round trip to the remote API.
type Client struct {
	httpClient *http.Client
	base       *url.URL
}

// NewClient creates a Client for the given API base URL, e.g.
// "https://api.example.com/api".
func NewClient(baseURL string) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: missing scheme or host", baseURL)
	}
	return &Client{
		// A server-side client must not hang a browser request forever.
		httpClient: &http.Client{Timeout: 30 * time.Second},
		base:       base,
	}, nil
}

// endpoint builds an absolute collection or record URL. The remote API
// requires the trailing slash.
func (c *Client) endpoint(parts ...string) string {
	return c.base.String() + "/" + strings.Join(parts, "/") + "/"
}

// resolveURL makes a possibly-relative asset URL (image paths in
// particular) absolute against the API origin.
func (c *Client) resolveURL(raw string) string {
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return c.base.ResolveReference(ref).String()
}

// do executes one request and returns the response body, mapping every
// failure into the error taxonomy. Each request carries a fresh
// X-Request-ID so upstream logs can be correlated with this panel's.
func (c *Client) do(ctx context.Context, method, rawurl, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, data)
	}
	return data, nil
}
