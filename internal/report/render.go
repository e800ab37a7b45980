// Package report renders scan results for humans and exports them as
// flat files.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantnse/stayup/internal/contracts"
)

const lineWidth = 70

// Render produces the plain-text scan report: the shortlist with a
// per-pick breakdown, then a one-line summary of every analyzed gainer.
func Render(result *contracts.ScanResult) string {
	var b strings.Builder

	writeHeader(&b, result)
	writePicks(&b, result)
	writeUniverse(&b, result)
	writeNotes(&b)

	return b.String()
}

func writeHeader(b *strings.Builder, result *contracts.ScanResult) {
	rule := strings.Repeat("=", lineWidth)

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, "🚀 NSE TOP GAINERS - STAY-UP SCAN")
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "Generated : %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(b, "Source    : %s\n", result.Source)
	fmt.Fprintf(b, "Market    : %s\n", marketLabel(result.MarketOpen))
	fmt.Fprintf(b, "Analyzed  : %d gainers (%d skipped)\n", result.Count(), result.Skipped)
	fmt.Fprintln(b)
}

func marketLabel(open bool) string {
	if open {
		return "OPEN (09:15-15:30 IST)"
	}
	return "CLOSED"
}

func writePicks(b *strings.Builder, result *contracts.ScanResult) {
	rule := strings.Repeat("-", lineWidth)

	if result.Fallback {
		fmt.Fprintln(b, "⚠️  No stock passed the stay-up filter.")
		fmt.Fprintln(b, "Showing the highest-confidence candidates instead.")
		fmt.Fprintln(b)
	}

	fmt.Fprintf(b, "✅ SAFE PICKS (%d)\n", len(result.Picks))
	fmt.Fprintln(b, rule)

	if len(result.Picks) == 0 {
		fmt.Fprintln(b, "No candidates.")
		fmt.Fprintln(b)
		return
	}

	for i, pick := range result.Picks {
		writePick(b, i+1, pick)
	}
}

func writePick(b *strings.Builder, rank int, c contracts.ScoredCandidate) {
	q := c.Quote

	fmt.Fprintf(b, "%d. %s  %+.2f%%  @ %.2f\n", rank, q.Symbol, q.PercentChange, q.LastPrice)
	fmt.Fprintf(b, "   Range      : %.2f - %.2f (prev close %.2f)\n", q.DayLow, q.DayHigh, q.PrevClose)
	fmt.Fprintf(b, "   Confidence : %.1f%%  |  Score %d/100  |  Risk %s\n",
		c.Confidence, c.CompositeScore, c.RiskLevel())
	fmt.Fprintf(b, "   Breakdown  : position %d, trend %d, support/vol %d, gain %d\n",
		c.SubScores.Position, c.SubScores.Trend, c.SubScores.SupportVolume, c.SubScores.Gain)

	if strengths := c.Strengths(); len(strengths) > 0 {
		fmt.Fprintf(b, "   Strengths  : %s\n", strings.Join(strengths, ", "))
	}
	if support, ok := contracts.FloatValue(c.Indicators.SupportLevel); ok && support > 0 {
		if dist, ok := contracts.FloatValue(c.Indicators.SupportDistancePct); ok {
			fmt.Fprintf(b, "   Support    : %.2f (%.1f%% below price)\n", support, dist)
		} else {
			fmt.Fprintf(b, "   Support    : %.2f\n", support)
		}
	}
	fmt.Fprintln(b)
}

func writeUniverse(b *strings.Builder, result *contracts.ScanResult) {
	rule := strings.Repeat("-", lineWidth)

	fmt.Fprintf(b, "📊 ALL ANALYZED (%d, by gain)\n", result.Count())
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "%-14s %8s %8s %6s %6s  %s\n",
		"SYMBOL", "GAIN%", "CONF%", "SCORE", "STAY", "RISK")

	for _, c := range result.Universe {
		fmt.Fprintf(b, "%-14s %8.2f %8.1f %6d %6s  %s\n",
			c.Quote.Symbol, c.Quote.PercentChange, c.Confidence,
			c.CompositeScore, stayLabel(c.WillStayUp), c.RiskLevel())
	}
	fmt.Fprintln(b)
}

func stayLabel(up bool) string {
	if up {
		return "YES"
	}
	return "no"
}

func writeNotes(b *strings.Builder) {
	rule := strings.Repeat("=", lineWidth)

	fmt.Fprintln(b, "💡 STRATEGY NOTES")
	fmt.Fprintln(b, "- Prefer entries near support, not after a vertical move.")
	fmt.Fprintln(b, "- Extreme gainers (>8%) often give back gains intraday.")
	fmt.Fprintln(b, "- Re-scan before 15:00 IST; late-session reversals are common.")
	fmt.Fprintln(b, rule)
}

// exportTimestamp names export files; one scan yields one timestamp.
func exportTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
