// Package moneycontrol scrapes the Moneycontrol top-gainers table.
//
// It is the alternate snapshot source behind SNAPSHOT_SOURCE=moneycontrol,
// useful when the NSE site API is refusing sessions. The page omits the
// open price, so quotes from here degrade the gap indicators gracefully.
package moneycontrol

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/pkg/config"
	"github.com/quantnse/stayup/pkg/httputil"
	"github.com/quantnse/stayup/pkg/logger"
)

const gainersPath = "/stocks/marketstats/nsegainer/index.php"

// Client scrapes Moneycontrol market stats pages.
type Client struct {
	httpClient *httputil.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient creates a Moneycontrol scraper client.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: httputil.NewWithTimeout(cfg, log, cfg.Moneycontrol.Timeout).
			WithRateLimit(cfg.Scan.RatePerSecond, 1),
		baseURL: cfg.Moneycontrol.BaseURL,
		logger:  log,
	}
}

// Name identifies this snapshot source.
func (c *Client) Name() string {
	return "moneycontrol"
}

// FetchSnapshot scrapes the NSE gainers table into quotes.
func (c *Client) FetchSnapshot(ctx context.Context) ([]contracts.Quote, error) {
	url := c.baseURL + gainersPath

	resp, err := c.httpClient.GetWithHeaders(ctx, url, map[string]string{
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	})
	if err != nil {
		return nil, fmt.Errorf("gainers page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gainers page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gainers page: %w", err)
	}

	quotes, err := parseGainersTable(string(body))
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(quotes)).Debug("Scraped Moneycontrol gainers")
	return quotes, nil
}

// parseGainersTable extracts quotes from the stats table. Expected columns:
// name, high, low, last price, prev close, change, %change.
func parseGainersTable(html string) ([]contracts.Quote, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse gainers page: %w", err)
	}

	table := doc.Find("table.bsr_table, table#stat-table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("gainers table not found: %w", contracts.ErrDataUnavailable)
	}

	var quotes []contracts.Quote
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}

		quote := contracts.Quote{
			Symbol:        strings.TrimSpace(cells.Eq(0).Find("a").First().Text()),
			DayHigh:       parseNum(cells.Eq(1).Text()),
			DayLow:        parseNum(cells.Eq(2).Text()),
			LastPrice:     parseNum(cells.Eq(3).Text()),
			PrevClose:     parseNum(cells.Eq(4).Text()),
			PercentChange: parseNum(cells.Eq(6).Text()),
		}
		if quote.Symbol == "" {
			quote.Symbol = strings.TrimSpace(cells.Eq(0).Text())
		}

		if quote.Symbol == "" || quote.LastPrice <= 0 || quote.PercentChange <= 0 {
			return
		}

		quote.Normalize()
		quotes = append(quotes, quote)
	})

	return quotes, nil
}

func parseNum(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
