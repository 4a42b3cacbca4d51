package pmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nikhilraj155/project-managment/internal/urlutil"
	"github.com/Nikhilraj155/project-managment/session"
)

// Client is the single egress point for all backend calls. It enforces the
// auth and content-type policy uniformly so call sites never repeat it.
// Construct through [Builder]; safe for concurrent use afterwards.
type Client struct {
	config   Config
	base     string
	http     *http.Client
	creds    session.Credentials
	sessions *session.Store
	logger   zerolog.Logger
	metrics  *Metrics
}

// Sessions returns the session store the gateway reconciles on 401 responses.
func (c *Client) Sessions() *session.Store {
	return c.sessions
}

// BaseURL reports the backend origin that was resolved at construction.
func (c *Client) BaseURL() string {
	return c.base
}

// MetricsSnapshot copies the gateway counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}, Histograms: map[MetricID][]uint64{}}
	}
	return c.metrics.Snapshot()
}

// call is one backend request. body must be replayable (a byte slice) because
// a redirect retry reissues it.
type call struct {
	method      string
	path        string // relative path, or an absolute URL from a stale call site
	body        []byte
	contentType string // empty means the JSON default applies when a body is present
	header      http.Header
	noAuth      bool // public endpoints never carry a bearer
	out         any  // JSON decode target, nil to discard the body
}

// redirectState models the single-retry contract: a request is sent, at most
// one redirect is honored, and the retry's outcome is final.
type redirectState uint8

const (
	redirectSent redirectState = iota
	redirectReceived
	redirectRetried
)

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, out: out})
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := marshalBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, call{method: http.MethodPost, path: path, body: body, out: out})
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	body, err := marshalBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, call{method: http.MethodPut, path: path, body: body, out: out})
}

func marshalBody(in any) ([]byte, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return body, nil
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, call{method: http.MethodDelete, path: path, out: out})
}

// do runs a call end to end and decodes a JSON response into cl.out.
func (c *Client) do(ctx context.Context, cl call) error {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if cl.out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// stream runs a call and hands the raw 2xx body to the caller, who owns
// closing it. Used by file and presentation downloads.
func (c *Client) stream(ctx context.Context, cl call) (io.ReadCloser, http.Header, error) {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return nil, nil, err
	}
	return resp.Body, resp.Header, nil
}

// send dispatches a call, honoring the redirect state machine and the global
// 401 policy. On success the response body is open; every error path has
// drained and closed it.
func (c *Client) send(ctx context.Context, cl call) (*http.Response, error) {
	if c == nil || c.http == nil {
		return nil, ErrClientNotReady
	}

	start := time.Now()
	c.metrics.inc(MetricRequests)

	target := c.resolveTarget(cl.path)

	resp, err := c.dispatch(ctx, cl, target)
	if err != nil {
		c.metrics.inc(MetricRequestFailures)
		return nil, fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}

	// A retried response is terminal: the loop runs at most twice by
	// construction, never re-entering after redirectRetried.
	for state := redirectSent; state != redirectRetried; {
		if !isRedirect(resp.StatusCode) {
			break
		}
		loc := resp.Header.Get("Location")
		token := c.freshToken(ctx)
		if loc == "" || token == "" {
			// Nothing to retry against; the redirect propagates below.
			break
		}
		state = redirectReceived
		drainAndClose(resp)

		retryTarget := c.resolveTarget(loc)
		c.logger.Debug().
			Str("location", loc).
			Str("target", retryTarget).
			Msg("redirect received, retrying once with bearer reattached")
		c.metrics.inc(MetricRetriedRedirects)

		resp, err = c.dispatch(ctx, cl, retryTarget)
		state = redirectRetried
		if err != nil {
			c.metrics.inc(MetricRequestFailures)
			return nil, fmt.Errorf("%s %s (redirect retry): %w", cl.method, retryTarget, err)
		}
	}

	c.metrics.observe(MetricRequestLatency, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.metrics.inc(MetricUnauthorized)
		c.metrics.inc(MetricRequestFailures)
		c.logger.Warn().Str("path", cl.path).Msg("unauthorized response, clearing persisted credentials")
		c.sessions.Invalidate(ctx)
		return nil, parseAPIError(resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.inc(MetricRequestFailures)
		return nil, parseAPIError(resp)
	}
	return resp, nil
}

// dispatch builds and issues a single HTTP request. Header mutation is local
// to this request; nothing is shared across concurrent calls.
func (c *Client) dispatch(ctx context.Context, cl call, target string) (*http.Response, error) {
	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, err
	}

	for k, vs := range cl.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	req.Header.Set("User-Agent", c.config.UserAgent)

	id := requestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", id)

	// Content-type policy: multipart payloads keep the boundary value the
	// writer generated and never a JSON type; otherwise JSON is the default
	// when nothing explicit was set.
	switch {
	case strings.HasPrefix(cl.contentType, "multipart/form-data"):
		req.Header.Set("Content-Type", cl.contentType)
	case cl.contentType != "":
		req.Header.Set("Content-Type", cl.contentType)
	case cl.body != nil && req.Header.Get("Content-Type") == "":
		req.Header.Set("Content-Type", "application/json")
	}

	if !cl.noAuth {
		if token := c.freshToken(ctx); token != "" {
			// Unconditional: a caller-supplied Authorization value is
			// overridden, never merged.
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			c.metrics.inc(MetricTokenMissing)
			c.logger.Warn().Str("path", cl.path).Msg("no persisted token, request will likely be rejected")
		}
	}

	return c.http.Do(req)
}

// freshToken reads the bearer from persisted storage on every request rather
// than from the in-memory session, so a rotation or logout in another process
// takes effect immediately.
func (c *Client) freshToken(ctx context.Context) string {
	cred, err := c.creds.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoCredential) {
			c.logger.Error().Err(err).Msg("credential backend read failed")
		}
		return ""
	}
	return cred.Token
}

// resolveTarget turns a request path into an absolute URL against the
// configured base. Absolute URLs pointing at a known dev origin are rewritten;
// other absolute URLs pass through untouched.
func (c *Client) resolveTarget(path string) string {
	if urlutil.IsAbsolute(path) {
		if rewritten, ok := urlutil.RewriteOrigin(path, c.config.DevOrigins, c.base); ok {
			c.logger.Debug().Str("url", path).Str("rewritten", rewritten).Msg("rewrote stale dev-origin URL")
			return rewritten
		}
		return path
	}
	return urlutil.Join(c.base, path)
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect:
		return true
	default:
		return false
	}
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
}

// parseAPIError drains a non-2xx response into an *APIError, lifting the
// backend's {"detail": ...} message when present.
func parseAPIError(resp *http.Response) error {
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}

	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != nil {
		if s, ok := envelope.Detail.(string); ok {
			apiErr.Detail = s
		} else {
			apiErr.Detail = fmt.Sprintf("%v", envelope.Detail)
		}
	}
	return apiErr
}
