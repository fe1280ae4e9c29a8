// Package rng fetches true random integers from the random.org HTTP API.
package rng

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// random.org asks integrations to stay around one request per second.
	requestsPerSecond = 1
	requestTimeout    = 10 * time.Second
)

// Client issues one GET per roll against the integers endpoint and parses
// the plain-text response. Requests are rate limited; failures are surfaced
// to the caller, never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	min, max   int
	limiter    *rate.Limiter
}

// New returns a client producing values in [min, max].
func New(baseURL string, min, max int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		min:        min,
		max:        max,
		limiter:    rate.NewLimiter(requestsPerSecond, 1),
	}
}

// Faces returns the inclusive range of producible values.
func (c *Client) Faces() (min, max int) {
	return c.min, c.max
}

// Roll fetches a single random integer.
func (c *Client) Roll(ctx context.Context) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	q := url.Values{}
	q.Set("num", "1")
	q.Set("min", strconv.Itoa(c.min))
	q.Set("max", strconv.Itoa(c.max))
	q.Set("col", "5")
	q.Set("base", "10")
	q.Set("format", "plain")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("random.org request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("random.org returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, fmt.Errorf("unexpected response %q: %w", strings.TrimSpace(string(body)), err)
	}
	if value < c.min || value > c.max {
		return 0, fmt.Errorf("value %d outside range [%d, %d]", value, c.min, c.max)
	}

	return value, nil
}
