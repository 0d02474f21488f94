package coindesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
)

// DefaultURL is the public current price endpoint of the Bitcoin Price Index.
const DefaultURL = "https://api.coindesk.com/v1/bpi/currentprice.json"

// Config tunes the upstream client.
type Config struct {
	URL            string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
}

// Client fetches the price index with a single bounded attempt.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ portsrepo.FeedFetcher = (*Client)(nil)

// NewClient builds a client with a transport bounded by the configured
// connect and read timeouts.
func NewClient(cfg Config) *Client {
	cfg = withDefaults(cfg)
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
	}
	return NewClientWithHTTP(cfg, &http.Client{
		Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
		Transport: tr,
	})
}

// NewClientWithHTTP uses the given http.Client as is.
func NewClientWithHTTP(cfg Config, hc *http.Client) *Client {
	return &Client{cfg: withDefaults(cfg), httpClient: hc}
}

func withDefaults(cfg Config) Config {
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultURL
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	return cfg
}

// FetchFeed performs one GET against the configured URL and decodes the body.
// Every failure wraps apperrors.ErrFetch.
func (c *Client) FetchFeed(ctx context.Context) (*domain.RawFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: upstream status %d: %s", apperrors.ErrFetch, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var feed domain.RawFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", apperrors.ErrFetch, err)
	}
	return &feed, nil
}
