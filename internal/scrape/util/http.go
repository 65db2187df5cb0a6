package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"payrise-engine/internal/errs"
)

const userAgent = "payrise-engine/1.0 (+local)"

// Client is the shared GET helper for provider APIs. A 429 or 5xx response
// is retried exactly once; the second failure is returned as *errs.StatusError.
type Client struct {
	HC      *http.Client
	Limiter *HostLimiter

	// Backoff is the delay before the retry when the server sends no Retry-After.
	Backoff time.Duration
	// MaxRetryAfter caps a server supplied Retry-After.
	MaxRetryAfter time.Duration
}

func NewClient(limiter *HostLimiter, backoff, maxRetryAfter time.Duration) *Client {
	return &Client{
		HC:            &http.Client{Timeout: 20 * time.Second},
		Limiter:       limiter,
		Backoff:       backoff,
		MaxRetryAfter: maxRetryAfter,
	}
}

// GetJSON fetches rawURL and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	body, err := c.get(ctx, rawURL, headers, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &errs.DecodeError{Err: err}
	}
	return nil
}

// GetHTML fetches rawURL and returns the raw body.
func (c *Client) GetHTML(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	return c.get(ctx, rawURL, headers, "text/html")
}

func (c *Client) get(ctx context.Context, rawURL string, headers map[string]string, accept string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, res, err := c.do(ctx, rawURL, headers, accept)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 300 {
			return body, nil
		}

		se := &errs.StatusError{Status: res.StatusCode, Body: snippet(body)}
		if attempt > 0 || !retryable(res.StatusCode) {
			return nil, se
		}
		if err := sleepCtx(ctx, c.retryDelay(res.Header.Get("Retry-After"))); err != nil {
			return nil, fmt.Errorf("retry wait after %d: %w", res.StatusCode, err)
		}
	}
}

func (c *Client) do(ctx context.Context, rawURL string, headers map[string]string, accept string) ([]byte, *http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hc := c.HC
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("get %s: %w", HostOf(rawURL), err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}
	return body, res, nil
}

func (c *Client) retryDelay(header string) time.Duration {
	d := c.Backoff
	if ra, ok := parseRetryAfter(header, time.Now()); ok {
		d = ra
	}
	if c.MaxRetryAfter > 0 && d > c.MaxRetryAfter {
		d = c.MaxRetryAfter
	}
	if d < 0 {
		d = 0
	}
	return d
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(v string, now time.Time) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		return t.Sub(now), true
	}
	return 0, false
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snippet(b []byte) string {
	s := CleanText(string(b))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// BearerAuth builds the Authorization header used by the board APIs.
func BearerAuth(key string) map[string]string {
	if key == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + key}
}
