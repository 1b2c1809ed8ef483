// Package api is the HTTP client for the ledger server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/tally-dev/tally/internal/model"
)

// Client issues requests against a ledger server and holds the minimal
// session state needed to do so. It is not safe for concurrent use; the
// CLI drives it from a single goroutine.
type Client struct {
	base *url.URL
	http *http.Client
	log  *slog.Logger

	session model.Session
}

// New creates a Client for the server at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing server URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
		log:  logger,
	}, nil
}

// Session returns the current session view.
func (c *Client) Session() model.Session { return c.session }

// SetSession primes the client with a persisted session and its cookies.
func (c *Client) SetSession(s model.Session, cookies []*http.Cookie) {
	c.session = s
	if len(cookies) > 0 {
		c.http.Jar.SetCookies(c.base, cookies)
	}
}

// Cookies returns the cookies the server has set for its base URL, for
// persisting alongside the session.
func (c *Client) Cookies() []*http.Cookie {
	return c.http.Jar.Cookies(c.base)
}

// endpoint resolves a server path (which may live outside /api) with an
// optional query.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends the request and logs the outcome. Bodies are never logged;
// they can carry credentials.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, err
	}
	c.log.Debug("request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
	return resp, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// postJSON issues a POST with a JSON body. When out is non-nil, a 2xx
// JSON body is decoded into it. A nil body sends an empty POST.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
	}
	return nil
}
