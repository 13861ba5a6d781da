package uitdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/roivaz/uitdb-mcp/internal/credentials"
	"github.com/roivaz/uitdb-mcp/internal/logging"
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  float64 // requests per second; 0 disables pacing
	Credential credentials.Credential
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client issues search requests against the UiTdatabank Search API. Each call
// performs exactly one GET and never retries.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	cred    credentials.Credential
	limiter *rate.Limiter
	log     logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		cred:    cfg.Credential,
		limiter: limiter,
		log:     cfg.Logger.WithName("uitdb"),
	}, nil
}

// Search runs a query against endpoint and returns the upstream body untouched.
func (c *Client) Search(ctx context.Context, endpoint Endpoint, query url.Values) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Endpoint: endpoint, Err: err}
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = redactURLError(err)
		c.log.Debug("request failed", "endpoint", endpoint, "elapsed", time.Since(start), "error", err.Error())
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	c.log.Debug("upstream responded", "endpoint", endpoint, "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode, Body: body}
	}
	return json.RawMessage(body), nil
}

// redactURLError strips the client id from the request URL that net/http
// embeds in its errors.
func redactURLError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: credentials.RedactURL(uerr.URL), Err: uerr.Err}
}

func (c *Client) newRequest(ctx context.Context, endpoint Endpoint, query url.Values) (*http.Request, error) {
	target := c.baseURL.JoinPath(string(endpoint))
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.cred.Apply(req)
	return req, nil
}
