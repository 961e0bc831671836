// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vitrine/internal/config"
	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/metrics"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads at most 64KB of the response body for error
// reporting, marking truncation.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Searcher is the catalog operation the executor depends on.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// Client handles communication with the catalog search API.
type Client struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	limiter        *rate.Limiter
	breaker        *gobreaker.CircuitBreaker[*SearchResponse]
	breakerName    string
	maxRetries     int           // Maximum retries for rate limiting
	retryBaseDelay time.Duration // Base delay for exponential backoff
}

// New creates a catalog client from configuration.
//
// The client is configured with:
//   - cfg.RequestTimeout as the HTTP client timeout
//   - a token bucket of cfg.RateLimit requests/second (0 = unlimited)
//   - cfg.MaxRetries retries on HTTP 429 starting at cfg.RetryBaseDelay
//   - a circuit breaker named "catalog-api"
func New(cfg *config.CatalogConfig) *Client {
	limit := rate.Inf
	burst := cfg.RateBurst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		limiter:        rate.NewLimiter(limit, burst),
		breakerName:    "catalog-api",
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
	c.breaker = newBreaker(c.breakerName)
	return c
}

// Search fetches one result page.
//
// Returned errors wrap ErrCatalogUnavailable when the circuit is open,
// ErrUnexpectedStatus for non-200 responses, ErrUnsuccessful when the
// catalog reports success=false, and ErrRateLimited when HTTP 429
// outlasts the retry budget.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*SearchResponse, error) {
		return c.search(ctx, req)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(c.breakerName, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.breakerName).Set(0)
		metrics.RecordCatalogRequest("success", time.Since(start), len(resp.Items))
		return resp, nil

	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(c.breakerName, "rejected").Inc()
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)

	default:
		metrics.CircuitBreakerRequests.WithLabelValues(c.breakerName, "failure").Inc()
		counts := c.breaker.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.breakerName).Set(float64(counts.ConsecutiveFailures))

		outcome := "error"
		if errors.Is(err, ErrUnsuccessful) {
			outcome = "unsuccessful"
		}
		metrics.RecordCatalogRequest(outcome, time.Since(start), 0)
		return nil, err
	}
}

func (c *Client) search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	reqURL := req.buildURL(c.baseURL, c.apiKey)

	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, msg)
	}

	return &result, nil
}

// doRequestWithRateLimit waits on the shared limiter and performs the GET,
// retrying HTTP 429 responses with exponential backoff. A Retry-After
// header in seconds replaces the computed delay.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		metrics.CatalogRateLimited.Inc()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w after %d retries (HTTP 429)", ErrRateLimited, c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		logging.Debug().
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Catalog rate limited, backing off")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}
