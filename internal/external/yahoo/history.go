// Package yahoo fetches daily price history from the Yahoo Finance
// v8 chart API. NSE symbols are queried with the exchange suffix
// (RELIANCE becomes RELIANCE.NS) and retried bare if the suffixed
// lookup finds nothing.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/pkg/config"
	"github.com/quantnse/stayup/pkg/httputil"
	"github.com/quantnse/stayup/pkg/logger"
)

// Client talks to the Yahoo Finance chart API.
type Client struct {
	httpClient   *httputil.Client
	baseURL      string
	symbolSuffix string
	histRange    string
	logger       *logger.Logger
}

// NewClient creates a Yahoo Finance history client.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: httputil.NewWithTimeout(cfg, log, cfg.Yahoo.Timeout).
			WithRateLimit(cfg.Scan.RatePerSecond, 1),
		baseURL:      cfg.Yahoo.BaseURL,
		symbolSuffix: cfg.Yahoo.SymbolSuffix,
		histRange:    cfg.Yahoo.Range,
		logger:       log,
	}
}

// chartResponse mirrors the subset of the v8 chart envelope we use.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory returns up to a month of daily bars for an NSE symbol,
// most recent last. Lookup failures are wrapped in ErrDataUnavailable
// so a single dead symbol never aborts a scan.
func (c *Client) FetchHistory(ctx context.Context, symbol string) (*contracts.HistorySeries, error) {
	series, err := c.fetch(ctx, symbol+c.symbolSuffix)
	if err != nil && c.symbolSuffix != "" {
		// Some indices and ETFs list without the exchange suffix.
		series, err = c.fetch(ctx, symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", symbol, err)
	}

	series.Symbol = symbol
	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"bars":   series.Len(),
	}).Debug("Fetched price history")
	return series, nil
}

func (c *Client) fetch(ctx context.Context, querySymbol string) (*contracts.HistorySeries, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(querySymbol), url.QueryEscape(c.histRange))

	resp, err := c.httpClient.GetWithHeaders(ctx, endpoint, map[string]string{
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		"Accept":     "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("chart request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("symbol %s not found: %w", querySymbol, contracts.ErrDataUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart request returned status %d: %w", resp.StatusCode, contracts.ErrDataUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart response: %w", err)
	}

	return parseChart(body)
}

func parseChart(body []byte) (*contracts.HistorySeries, error) {
	var envelope chartResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}

	if envelope.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error %s: %w", envelope.Chart.Error.Code, contracts.ErrDataUnavailable)
	}
	if len(envelope.Chart.Result) == 0 || len(envelope.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart result: %w", contracts.ErrDataUnavailable)
	}

	result := envelope.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	series := &contracts.HistorySeries{
		Bars: make([]contracts.DailyBar, 0, len(result.Timestamp)),
	}

	for i, ts := range result.Timestamp {
		// Bars still forming or halted days come back as nulls; skip them.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}

		bar := contracts.DailyBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}

		series.Bars = append(series.Bars, bar)
	}

	if len(series.Bars) == 0 {
		return nil, fmt.Errorf("no usable bars in chart result: %w", contracts.ErrDataUnavailable)
	}

	return series, nil
}
