package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"site-finder-service/internal/platform/obs"
	"strings"
	"time"
)

const userAgent = "site-finder-service/1.0"

// ErrUpstream marks failures of a remote data source (transport errors,
// unexpected statuses, undecodable bodies).
var ErrUpstream = errors.New("upstream request failed")

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client is a JSON-over-HTTP client for one upstream service.
// It is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	service string
	metrics *obs.Metrics
	backoff time.Duration
}

func NewClient(service, baseURL string, timeout time.Duration, metrics *obs.Metrics) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("new %s client: base url is empty", service)
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("new %s client: parse base url %q: %w", service, base, err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: base,
		service: service,
		metrics: metrics,
		backoff: 200 * time.Millisecond,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if id, ok := ctx.Value(obs.RequestIDKey).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx responses)
// using exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := c.backoff

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}
		c.metrics.UpstreamRequest(c.service, "retry")

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

// getJSON issues a GET against path and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (err error) {
	ctx, done := obs.Time(ctx, c.service+".GET "+path)
	defer done(&err)
	defer func() {
		if err != nil {
			c.metrics.UpstreamRequest(c.service, "error")
			return
		}
		c.metrics.UpstreamRequest(c.service, "ok")
	}()

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, path, query)
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", c.service, path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", c.service, path, ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w: %w", c.service, path, ErrUpstream, err)
	}

	return nil
}
