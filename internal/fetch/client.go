// Package fetch retrieves quotes from a remote quote API.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quoter-cli/quoter/internal/quote"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the default quote API endpoint. The API returns records
	// of the form {"content": "...", "author": "..."}.
	BaseURL = "https://api.quotable.io"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// RateLimit is 2 requests per second, polite to a public API.
	RateLimit = 2.0
)

// Client is a rate-limited HTTP client for a quotable-style quote API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing and self-hosted APIs).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new quote API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiQuote is the wire format of a single quote record.
type apiQuote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Random fetches one random quote.
func (c *Client) Random(ctx context.Context) (quote.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return quote.Quote{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/random", nil)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("fetching quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return quote.Quote{}, fmt.Errorf("fetching quote: unexpected status %d", resp.StatusCode)
	}

	var wire apiQuote
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return quote.Quote{}, fmt.Errorf("decoding quote: %w", err)
	}
	if wire.Content == "" {
		return quote.Quote{}, fmt.Errorf("decoding quote: empty content")
	}

	return quote.Quote{Author: wire.Author, Content: wire.Content}, nil
}

// Fetch retrieves count random quotes through the rate limiter. On error
// the quotes fetched so far are returned alongside it.
func (c *Client) Fetch(ctx context.Context, count int) ([]quote.Quote, error) {
	var quotes []quote.Quote
	for i := 0; i < count; i++ {
		q, err := c.Random(ctx)
		if err != nil {
			return quotes, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
