package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/loginkeeper/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

const (
	LoginUserPath = "/user/get/login"
	HealthPath    = "/health/"

	RequestIDHeader = "X-Request-Id"
)

// maxBodySize caps how much of a response body is decoded.
const maxBodySize = 1 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type HTTPOption func(*HTTPClient)

// WithTimeout sets an overall per-request timeout. Zero means none.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client (its Jar included).
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.http = hc
	}
}

// NewHTTPClient builds a client for the API rooted at baseURL,
// e.g. "http://localhost:8101/api".
func NewHTTPClient(baseURL string, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetLoginUser calls the user-info endpoint. Any decoded envelope is
// returned as-is, whatever its code.
func (c *HTTPClient) GetLoginUser(ctx context.Context) (*models.Envelope[models.LoginUser], error) {
	var env models.Envelope[models.LoginUser]
	if err := c.get(ctx, LoginUserPath, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Ping checks the health endpoint. A reachable backend answering with a
// non-success envelope is still reported as ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var env models.Envelope[string]
	if err := c.get(ctx, HealthPath, &env); err != nil {
		return err
	}
	if !env.OK() {
		return fmt.Errorf("%w: health code %d", ErrUnavailable, env.Code)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway:
		return fmt.Errorf("%w: http %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// mapError turns transport failures into ErrUnavailable. When the caller's
// context is done its error is returned instead, so errors.Is matches
// context.Canceled and context.DeadlineExceeded. A timeout set with
// WithTimeout is a transport failure.
func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(err, ctxErr) {
			return err
		}
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
