// Package addic7ed provides a browsing session and page adapters for the
// addic7ed.com subtitle site
package addic7ed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultBaseURL is where a new session starts browsing
	DefaultBaseURL = "https://www.addic7ed.com/"
	// DefaultTimeout bounds each request of the session
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when no other agent is configured
	DefaultUserAgent = "addic7ed-downloader"
)

// StatusError is returned when the site answers with anything but 200 OK
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface for StatusError
func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// Fetcher loads pages relative to the previously visited one
type Fetcher interface {
	Document(ctx context.Context, ref string, params url.Values) (*goquery.Document, error)
	Raw(ctx context.Context, ref string, params url.Values) ([]byte, error)
}

// Client is a browsing session. Every request resolves its URL against the
// last visited page and sends that page as referer.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger

	mu      sync.Mutex
	lastURL *url.URL
}

// New creates a session starting at baseURL
func New(baseURL string, timeout time.Duration, userAgent string) (*Client, error) {
	start, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !start.IsAbs() {
		return nil, fmt.Errorf("base URL must be absolute, got %q", baseURL)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		logger:     slog.Default(),
		lastURL:    start,
	}, nil
}

// LastURL returns the page the next request is resolved against
func (c *Client) LastURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastURL.String()
}

// Document fetches ref and parses it as HTML
func (c *Client) Document(ctx context.Context, ref string, params url.Values) (*goquery.Document, error) {
	body, err := c.Raw(ctx, ref, params)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// Raw fetches ref and returns the response body untouched
func (c *Client) Raw(ctx context.Context, ref string, params url.Values) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.lastURL.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", ref, err)
	}

	requestURL := *target
	if len(params) > 0 {
		query := requestURL.Query()
		for key, values := range params {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		requestURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Referer", c.lastURL.String())
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Fetching page", "url", requestURL.String(), "referer", c.lastURL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: requestURL.String(), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.lastURL = target
	return body, nil
}
