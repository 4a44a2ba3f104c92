// Package records is the typed client for the remote medical records REST
// API. Authentication and forced-logout handling live in the upstream
// transport; this package only shapes requests and maps status codes to
// domain errors.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/api/metrics"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client talks to the records API over the session-aware transport.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a Client. transport should be the session-aware
// *upstream.Transport; a nil transport falls back to http.DefaultTransport.
func NewClient(baseURL string, transport http.RoundTripper, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
		logger:  logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The login request carries
// no session, so a 401 here means bad credentials, not an expired session.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	body, err := json.Marshal(loginRequest{Username: creds.Username, Password: creds.Password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.observe("auth", req)
	if err != nil {
		return "", err
	}
	defer drain(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", domain.ErrInvalidCredentials
	case resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: login returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
		return "", fmt.Errorf("%w: login response missing token", domain.ErrUpstream)
	}
	return out.Token, nil
}

// do performs an authenticated JSON request and decodes the response into
// out (skipped when out is nil). Status mapping:
//
//	401/403 → domain.ErrSessionExpired (the transport has already cleared the session)
//	404     → domain.ErrRecordNotFound
//	other non-2xx → domain.ErrUpstream
func (c *Client) do(ctx context.Context, method, path, resource string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}

	resp, err := c.observe(resource, req)
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrRecordNotFound
	case resp.StatusCode >= 300:
		c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("upstream error response")
		return fmt.Errorf("%w: %s %s returned %d", domain.ErrUpstream, method, path, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: undecodable response body: %v", domain.ErrUpstream, err)
	}
	return nil
}

// observe executes the request and records upstream metrics.
func (c *Client) observe(resource string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(resource, statusClass(resp.StatusCode)).Inc()
	return resp, nil
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// drain consumes and closes the body so the underlying connection can be reused.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<20))
	_ = body.Close()
}

func listQuery(opts ports.ListOptions) url.Values {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	return q
}
