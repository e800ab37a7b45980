package nse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/quantnse/stayup/internal/contracts"
)

// gainersResponse mirrors the niftyGainers feed envelope. All numeric
// fields arrive as comma-formatted strings ("1,234.55").
type gainersResponse struct {
	Time string       `json:"time"`
	Data []gainersRow `json:"data"`
}

type gainersRow struct {
	Symbol          string `json:"symbol"`
	OpenPrice       string `json:"openPrice"`
	HighPrice       string `json:"highPrice"`
	LowPrice        string `json:"lowPrice"`
	LTP             string `json:"ltp"`
	PreviousPrice   string `json:"previousPrice"`
	NetPrice        string `json:"netPrice"`
	TradedQuantity  string `json:"tradedQuantity"`
	TurnoverInLakhs string `json:"turnoverInLakhs"`
}

// FetchSnapshot returns the current top gainers as validated quotes.
// Rows with a non-positive change or broken numbers are dropped, not fatal.
func (c *Client) FetchSnapshot(ctx context.Context) ([]contracts.Quote, error) {
	if err := c.warmUp(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.GetWithHeaders(ctx, c.baseURL+gainersPath, c.headers())
	if err != nil {
		return nil, fmt.Errorf("gainers request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.invalidate()
		return nil, fmt.Errorf("gainers request rejected with status %d: %w", resp.StatusCode, contracts.ErrDataUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gainers request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gainers response: %w", err)
	}

	quotes, err := parseGainers(body)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(quotes)).Debug("Fetched NSE gainers snapshot")
	return quotes, nil
}

func parseGainers(body []byte) ([]contracts.Quote, error) {
	var envelope gainersResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode gainers response: %w", err)
	}

	quotes := make([]contracts.Quote, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		quote, ok := row.toQuote()
		if !ok {
			continue
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (r gainersRow) toQuote() (contracts.Quote, bool) {
	quote := contracts.Quote{
		Symbol:        strings.TrimSpace(r.Symbol),
		OpenPrice:     cleanNumber(r.OpenPrice),
		DayHigh:       cleanNumber(r.HighPrice),
		DayLow:        cleanNumber(r.LowPrice),
		LastPrice:     cleanNumber(r.LTP),
		PrevClose:     cleanNumber(r.PreviousPrice),
		PercentChange: cleanNumber(r.NetPrice),
		Volume:        cleanNumber(r.TradedQuantity),
		Turnover:      cleanNumber(r.TurnoverInLakhs),
	}

	if quote.Symbol == "" || quote.LastPrice <= 0 || quote.PercentChange <= 0 {
		return contracts.Quote{}, false
	}

	quote.Normalize()
	return quote, true
}

// cleanNumber parses a comma-grouped numeric string; malformed or empty
// values yield zero so the row validator can drop the quote.
func cleanNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
