// Package client provides the typed HTTP SDK for the orchestrator portal
// API.
//
// The portal exposes an RPC-over-POST surface under /portal/rest. Every call
// is a POST whose JSON body may decode into a typed result or into an error
// envelope; Client insulates callers from that shape and from the session
// mechanics (cookie login or token auth).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sdwanops/vcoctl/pkg/types"
)

// APIBase is the URL path prefix of the portal REST surface.
const APIBase = "portal/rest"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	retryBackoffBase  = 250 * time.Millisecond
	retryBackoffMax   = 2 * time.Second

	loginPath = "login/operatorLogin"
	userAgent = "vcoctl"
)

// Config holds client configuration.
type Config struct {
	// FQDN is the orchestrator's fully qualified domain name, e.g.
	// "vco12-example.velocloud.net". The host part must start with "vco".
	FQDN string
	// BaseURL overrides the https://<FQDN>/portal/rest default. Mainly for
	// tests and lab portals behind plain HTTP. When set, FQDN is ignored.
	BaseURL string
	// Token is an API token sent as "Authorization: Token <t>". Leave empty
	// for cookie-session login via Login.
	Token string
	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration
	// MaxRetries is the number of retry attempts for transient failures
	// (network errors and 5xx responses). Defaults to 3.
	MaxRetries int
	// HTTPClient optionally replaces the default HTTP client. A cookie jar
	// is attached to it when Login is used.
	HTTPClient *http.Client
}

// Client is the typed HTTP SDK for the portal API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cfg        Config
	logger     zerolog.Logger
}

// New creates a client that authenticates with the API token in cfg.Token.
// The token is not validated up front; the first call surfaces a bad one.
func New(cfg Config) (*Client, error) {
	c, err := build(cfg)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("client: Token is required (use Login for password auth)")
	}
	c.token = strings.TrimSpace(cfg.Token)
	return c, nil
}

// Login creates a client by performing the username/password operator login.
// The portal responds with session cookies which the client holds for the
// rest of its lifetime.
func Login(ctx context.Context, cfg Config, username, password string) (*Client, error) {
	cfg.Token = ""
	c, err := build(cfg)
	if err != nil {
		return nil, err
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}

	auth := types.NewAuthObject(username, password)
	// The login response body is empty on success; an error envelope comes
	// back on bad credentials and surfaces as *APIError.
	if err := c.post(ctx, loginPath, auth, nil); err != nil {
		return nil, fmt.Errorf("operator login for %q: %w", username, err)
	}
	return c, nil
}

func build(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		host, domain, err := splitFQDN(cfg.FQDN)
		if err != nil {
			return nil, err
		}
		baseURL = fmt.Sprintf("https://%s.%s/%s", host, domain, APIBase)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cfg:        cfg,
		logger:     log.With().Str("component", "client").Logger(),
	}, nil
}

// post performs one portal RPC call: a POST to baseURL/path with an optional
// JSON payload, decoding the response into result when result is non-nil.
// An empty response body leaves result untouched, which matches the
// portal's "null on success" convention for calls without results.
func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	respBody, err := c.doWithRetry(ctx, path, body)
	if err != nil {
		return err
	}
	if len(respBody) == 0 {
		return nil
	}
	if apiErr := classifyErrorBody(respBody); apiErr != nil {
		return apiErr
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, path string, body []byte) ([]byte, error) {
	backoff := retryBackoffBase
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug().Str("path", path).Int("attempt", attempt).Msg("retrying portal request")
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, fmt.Errorf("calling %s: %w", path, ctx.Err())
			case <-timer.C:
			}
			backoff *= 2
			if backoff > retryBackoffMax {
				backoff = retryBackoffMax
			}
		}

		respBody, retryable, err := c.doOnce(ctx, path, body)
		if err == nil {
			return respBody, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("calling %s after %d retries: %w", path, c.cfg.MaxRetries, lastErr)
}

func (c *Client) doOnce(ctx context.Context, path string, body []byte) (respBody []byte, retryable bool, err error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path, reader)
	if err != nil {
		return nil, false, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	c.logger.Debug().Str("path", path).Msg("portal request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, fmt.Errorf("calling %s: %w", path, ctx.Err())
		}
		return nil, true, fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading %s response: %w", path, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("calling %s: portal returned %s", path, resp.Status)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if apiErr := classifyErrorBody(respBody); apiErr != nil {
			return nil, false, apiErr
		}
		return nil, false, fmt.Errorf("calling %s: portal returned %s", path, resp.Status)
	}
	return respBody, false, nil
}

// splitFQDN validates an orchestrator FQDN and splits it into host and
// domain. The host must start with "vco", which catches operators pointing
// the tool at an arbitrary portal by mistake.
func splitFQDN(fqdn string) (host, domain string, err error) {
	trimmed := strings.ToLower(strings.TrimSpace(fqdn))
	host, domain, found := strings.Cut(trimmed, ".")
	if !found || host == "" || domain == "" {
		return "", "", &BadFQDNError{Value: fqdn, Reason: "expected at least one dot"}
	}
	if !strings.HasPrefix(host, "vco") {
		return "", "", &BadFQDNError{Value: fqdn, Reason: `host part must start with "vco"`}
	}
	return host, domain, nil
}
