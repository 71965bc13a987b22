// Package transport provides the HTTP client shared by the Calendly and
// Monday sources. It applies authentication, bounds every call with a
// timeout, and retries timed-out requests with exponential backoff.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/RyoK3N/Calendly-API/pkg/constants"
	"github.com/RyoK3N/Calendly-API/pkg/errors"
	"github.com/RyoK3N/Calendly-API/pkg/logging"
)

// Client provides HTTP client functionality with authentication and
// bounded retry on timeout. Non-timeout failures are never retried.
type Client struct {
	http       *http.Client
	auth       Authenticator
	apiKey     string
	maxRetries int
	sleep      func(time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Values below the supported
// minimum are clamped to it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d < constants.MinHTTPTimeout {
			d = constants.MinHTTPTimeout
		}
		c.http.Timeout = d
	}
}

// WithMaxRetries sets the retry bound for timed-out requests.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithHTTPClient substitutes the underlying http.Client, useful in tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithSleep substitutes the backoff sleep function, useful in tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

// New creates a transport client that authenticates every request with
// the given authenticator and API key.
func New(auth Authenticator, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: constants.DefaultHTTPTimeout},
		auth:       auth,
		apiKey:     apiKey,
		maxRetries: constants.MaxRetries,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request against rawurl with the given query
// parameters. params may be nil, which leaves the URL untouched; cursor
// URLs returned by paginated APIs are already fully qualified.
func (c *Client) Get(ctx context.Context, rawurl string, params url.Values) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, rawurl, params, nil)
}

// Post performs a POST request with a JSON-encoded payload.
func (c *Client) Post(ctx context.Context, rawurl string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapParse("json", "request payload", err)
	}
	return c.do(ctx, http.MethodPost, rawurl, nil, body)
}

// do issues the request, retrying on timeout up to maxRetries attempts
// with exponential backoff (2^attempt seconds). Any other failure is
// surfaced immediately.
func (c *Client) do(ctx context.Context, method, rawurl string, params url.Values, body []byte) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		req, err := c.newRequest(ctx, method, rawurl, params, body)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}

		if !isTimeout(err) {
			return nil, errors.WrapResource("perform", "request", method+" "+rawurl, err)
		}
		if attempt >= c.maxRetries {
			return nil, errors.NewTimeoutError(method+" "+rawurl, attempt, err)
		}

		backoff := time.Duration(1<<uint(attempt)) * time.Second
		logging.Warn().
			Str("url", rawurl).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("Request timed out, retrying")
		c.sleep(backoff)
	}
}

// newRequest builds a fresh request per attempt so retries never reuse a
// consumed body.
func (c *Client) newRequest(ctx context.Context, method, rawurl string, params url.Values, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return nil, errors.WrapResource("create", "request", method+" "+rawurl, err)
	}

	if len(params) > 0 {
		query := req.URL.Query()
		for key, values := range params {
			for _, v := range values {
				query.Add(key, v)
			}
		}
		req.URL.RawQuery = query.Encode()
	}

	if c.auth != nil && c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// isTimeout reports whether err represents a timed-out request, the only
// failure class that is retried.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// DecodeResponse decodes a JSON response into the target structure. A
// non-200 status is reported as an APIError carrying the response body.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Source:     resp.Request.URL.Host,
			StatusCode: resp.StatusCode,
			Endpoint:   resp.Request.URL.String(),
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
