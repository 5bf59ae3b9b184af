package whttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const (
	// DefaultTimeout bounds a single provider call unless the caller
	// passes its own budget.
	DefaultTimeout = 9 * time.Second

	USER_AGENT = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0 webradar/1.0"
)

// ErrTimeout marks a call that hit its own per-request deadline, as opposed
// to being cancelled by the caller or failing at the transport.
var ErrTimeout = errors.New("request timed out")

// ErrMalformed marks a 2xx response whose body could not be parsed.
var ErrMalformed = errors.New("malformed payload")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d from %s", e.StatusCode, e.URL)
}

type Header struct {
	Name  string
	Value string
}

// Client wraps an http.Client with a per-call timeout that composes with the
// caller's context: whichever fires first aborts the request at the
// transport. Retries are disabled; any retry policy lives with the few
// callers that opt into NewResolverClient.
type Client struct {
	http *http.Client
}

// NewClient builds the shared scan client. Scan calls never retry; a failed
// provider simply contributes zero items.
func NewClient(proxy string) (*Client, error) {
	rc := retryablehttp.NewClient()
	rc.Logger = stdlog.New(io.Discard, "", 0)
	rc.RetryMax = 0

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		rc.HTTPClient.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}

	return &Client{http: rc.StandardClient()}, nil
}

// NewResolverClient is like NewClient but allows a small retry budget. It is
// used outside the scan path, for channel resolution where one flaky upstream
// fetch should not fail the whole request.
func NewResolverClient(proxy string, retries int) (*Client, error) {
	rc := retryablehttp.NewClient()
	rc.Logger = stdlog.New(io.Discard, "", 0)
	rc.RetryMax = retries
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		rc.HTTPClient.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}

	return &Client{http: rc.StandardClient()}, nil
}

// Get fetches a URL with the given timeout composed with ctx. The returned
// error distinguishes timeout (ErrTimeout), caller cancellation
// (context.Canceled) and HTTP-level failure (*StatusError).
func (c *Client) Get(ctx context.Context, rawURL string, timeout time.Duration, headers ...Header) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Accept-Language", "pt-BR, pt;q=0.9, en;q=0.8")
	for _, h := range headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classify(ctx, callCtx, rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(ctx, callCtx, rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	return string(body), nil
}

// GetJSON fetches and parses a JSON document. Invalid JSON on a 2xx response
// is an ErrMalformed failure, never a silent partial success.
func (c *Client) GetJSON(ctx context.Context, rawURL string, timeout time.Duration, headers ...Header) (gjson.Result, error) {
	body, err := c.Get(ctx, rawURL, timeout, headers...)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(body) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON from %s", ErrMalformed, rawURL)
	}
	return gjson.Parse(body), nil
}

// classify maps a transport error onto the taxonomy the orchestrator reports:
// our own deadline fired -> ErrTimeout, the parent was cancelled ->
// context.Canceled, anything else passes through.
func classify(parent, call context.Context, rawURL string, err error) error {
	if parent.Err() != nil {
		return context.Canceled
	}
	if errors.Is(call.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, rawURL)
	}
	return err
}
