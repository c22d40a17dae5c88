// Package cao downloads the official list of Japanese national holidays
// published by the Cabinet Office (内閣府) and compares it with the
// computed calendar.
//
// The CSV URL is resolved dynamically via the e-Gov Data Portal CKAN API
// (recommended by the Digital Agency of Japan). If the API is unavailable,
// it falls back to well-known direct URLs.
package cao

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"gopkg.in/matryer/try.v1"

	"github.com/rabitt1ove/jholiday/internal/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// CKAN API endpoint for the holiday dataset (recommended by Digital Agency).
	ckanAPIURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	// Fallback CSV URLs in case the CKAN API is unavailable.
	fallbackURL1 = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	fallbackURL2 = "https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv"

	minExpectedRows = 1000

	defaultMaxRetries = 3

	// Maximum response sizes to prevent memory exhaustion.
	maxJSONResponseSize = 1 * 1024 * 1024 // 1 MB for CKAN API response
	maxCSVResponseSize  = 5 * 1024 * 1024 // 5 MB for CSV data

	userAgent = "jpholiday/1.0 (https://github.com/rabitt1ove/jholiday)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedCSVHosts is the set of hostnames allowed for CSV download URLs.
// This prevents SSRF if the CKAN API returns an unexpected URL.
var allowedCSVHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

// ckanResponse represents the relevant parts of the CKAN API response.
type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []struct {
			URL    string `json:"url"`
			Format string `json:"format"`
		} `json:"resources"`
	} `json:"result"`
}

// Client fetches the official holiday CSV.
type Client struct {
	httpClient *http.Client
	ckanURL    string
	fallbacks  []string
	csvURL     string
	maxRetries int
	minRows    int
}

// Option configures a Client.
type Option func(*Client)

// WithCSVURL pins the CSV location and skips CKAN resolution. The URL must
// pass ValidateCSVURL.
func WithCSVURL(u string) Option {
	return func(c *Client) { c.csvURL = u }
}

// WithMaxRetries sets the number of attempts per URL.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// NewClient creates a Client that talks to the public endpoints.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		ckanURL:    ckanAPIURL,
		fallbacks:  []string{fallbackURL1, fallbackURL2},
		maxRetries: defaultMaxRetries,
		minRows:    minExpectedRows,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Holidays downloads and parses the official list.
func (c *Client) Holidays(ctx context.Context) ([]Holiday, error) {
	body, err := c.fetchCSV(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch CSV")
	}

	holidays, err := ParseCSV(decode(body))
	if err != nil {
		return nil, errors.Wrap(err, "parse CSV")
	}

	if len(holidays) < c.minRows {
		return nil, errors.Errorf("validation failed: expected at least %d rows, got %d", c.minRows, len(holidays))
	}
	log.Info("loaded %d official holidays", len(holidays))
	return holidays, nil
}

// fetchCSV fetches the pinned URL, or resolves the CSV URL and falls back.
// Strategy: CKAN API -> fallback URL 1 -> fallback URL 2.
func (c *Client) fetchCSV(ctx context.Context) ([]byte, error) {
	if c.csvURL != "" {
		if err := ValidateCSVURL(c.csvURL); err != nil {
			return nil, err
		}
		return c.fetchWithRetry(ctx, c.csvURL, maxCSVResponseSize)
	}

	// Build ordered list of URLs to try.
	var urls []string

	if resolved, err := c.resolveCSVURL(ctx); err != nil {
		log.Warn("CKAN API failed: %v (falling back to direct URLs)", err)
	} else {
		urls = append(urls, resolved)
	}

	// Skip fallbacks that CKAN already resolved to.
	for _, fb := range c.fallbacks {
		if len(urls) == 0 || urls[0] != fb {
			urls = append(urls, fb)
		}
	}

	var lastErr error
	for _, u := range urls {
		body, err := c.fetchWithRetry(ctx, u, maxCSVResponseSize)
		if err != nil {
			lastErr = err
			continue
		}
		return body, nil
	}
	return nil, errors.Wrap(lastErr, "all URLs failed, last error")
}

// resolveCSVURL queries the CKAN API to get the current CSV download URL.
func (c *Client) resolveCSVURL(ctx context.Context) (string, error) {
	log.Info("resolving CSV URL via CKAN API: %s", c.ckanURL)

	body, err := c.fetchWithRetry(ctx, c.ckanURL, maxJSONResponseSize)
	if err != nil {
		return "", errors.Wrap(err, "CKAN API request failed")
	}

	var ckan ckanResponse
	if err := json.Unmarshal(body, &ckan); err != nil {
		return "", errors.Wrap(err, "CKAN API response decode failed")
	}

	if !ckan.Success {
		return "", errors.New("CKAN API returned success=false")
	}

	for _, r := range ckan.Result.Resources {
		if strings.EqualFold(r.Format, "CSV") && r.URL != "" {
			if err := ValidateCSVURL(r.URL); err != nil {
				return "", errors.Wrap(err, "CKAN returned invalid URL")
			}
			log.Info("resolved URL: %s", r.URL)
			return r.URL, nil
		}
	}

	return "", errors.New("no CSV resource found in CKAN response")
}

// ValidateCSVURL checks that a URL points to an allowed host (SSRF prevention).
func ValidateCSVURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrapf(err, "invalid URL %q", rawURL)
	}
	if parsed.Scheme != "https" {
		return errors.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedCSVHosts[parsed.Hostname()] {
		return errors.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// statusError is a non-200 response.
type statusError struct {
	url    string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.url, e.status)
}

func (e *statusError) retryable() bool {
	return e.status == http.StatusTooManyRequests || e.status >= 500
}

// fetchWithRetry fetches a URL with exponential backoff retries on network
// errors, 429 and 5xx responses.
func (c *Client) fetchWithRetry(ctx context.Context, u string, limit int64) ([]byte, error) {
	var body []byte
	err := try.Do(func(attempt int) (bool, error) {
		if attempt > 1 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-2))
			log.Info("retrying in %v (attempt %d/%d)", delay, attempt, c.maxRetries)
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(delay):
			}
		}

		b, err := c.get(ctx, u, limit)
		if err != nil {
			log.Warn("GET %s failed: %v", u, err)
			var se *statusError
			retry := !errors.As(err, &se) || se.retryable()
			return retry && ctx.Err() == nil && attempt < c.maxRetries, err
		}
		body = b
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, u string, limit int64) ([]byte, error) {
	log.Debug("fetching %s", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{url: u, status: resp.StatusCode}
	}

	var r io.Reader = io.LimitReader(resp.Body, limit)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "GET %s: gzip", u)
		}
		defer zr.Close()
		r = io.LimitReader(zr, limit)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrapf(err, "GET %s: read body", u)
	}
	return buf.Bytes(), nil
}
