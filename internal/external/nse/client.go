// Package nse fetches the live top-gainers snapshot from the NSE site API.
//
// The NSE endpoints refuse bare requests: they require a browser user agent
// and session cookies issued on the landing page. The client warms up a
// cookie jar once per process and re-warms it when the feed starts
// returning 401/403.
package nse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"github.com/quantnse/stayup/pkg/config"
	"github.com/quantnse/stayup/pkg/httputil"
	"github.com/quantnse/stayup/pkg/logger"
)

const gainersPath = "/live_market/dynaContent/live_analysis/gainers/niftyGainers1.json"

// Client talks to the NSE public site endpoints.
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	userAgent  string
	logger     *logger.Logger

	mu     sync.Mutex
	warmed bool
}

// NewClient creates an NSE client with a fresh cookie session.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	jar, _ := cookiejar.New(nil)

	httpClient := httputil.NewWithTimeout(cfg, log, cfg.NSE.Timeout).
		WithRateLimit(cfg.Scan.RatePerSecond, 1).
		EnableCookies(jar)

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.NSE.BaseURL,
		userAgent:  cfg.NSE.UserAgent,
		logger:     log,
	}
}

// Name identifies this snapshot source.
func (c *Client) Name() string {
	return "nse"
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"User-Agent":      c.userAgent,
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         c.baseURL + "/",
	}
}

// warmUp primes the cookie jar by loading the landing page.
func (c *Client) warmUp(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.warmed {
		return nil
	}

	resp, err := c.httpClient.GetWithHeaders(ctx, c.baseURL+"/", c.headers())
	if err != nil {
		return fmt.Errorf("warm-up request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("warm-up returned status %d", resp.StatusCode)
	}

	c.warmed = true
	c.logger.Debug("NSE cookie session established")
	return nil
}

// invalidate forces a fresh warm-up on the next fetch.
func (c *Client) invalidate() {
	c.mu.Lock()
	c.warmed = false
	c.mu.Unlock()
}
