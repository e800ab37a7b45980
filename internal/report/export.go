package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quantnse/stayup/internal/contracts"
	"github.com/quantnse/stayup/pkg/logger"
)

// Exporter writes scan artifacts to a flat-file directory: the full
// analysis CSV, the safe-picks CSV and the rendered text report.
type Exporter struct {
	dir    string
	logger *logger.Logger
}

// NewExporter creates an exporter rooted at dir.
func NewExporter(dir string, log *logger.Logger) *Exporter {
	return &Exporter{dir: dir, logger: log}
}

// Export writes all artifacts for one scan and returns their paths.
func (e *Exporter) Export(result *contracts.ScanResult) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	stamp := exportTimestamp(result.GeneratedAt)

	analysisPath := filepath.Join(e.dir, fmt.Sprintf("gainers_analysis_%s.csv", stamp))
	if err := writeCSV(analysisPath, result.Universe); err != nil {
		return nil, err
	}

	picksPath := filepath.Join(e.dir, fmt.Sprintf("safe_picks_%s.csv", stamp))
	if err := writeCSV(picksPath, result.Picks); err != nil {
		return nil, err
	}

	reportPath := filepath.Join(e.dir, fmt.Sprintf("scan_report_%s.txt", stamp))
	if err := os.WriteFile(reportPath, []byte(Render(result)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write text report: %w", err)
	}

	paths := []string{analysisPath, picksPath, reportPath}
	e.logger.WithFields(map[string]interface{}{
		"dir":   e.dir,
		"files": len(paths),
	}).Info("Exported scan artifacts")

	return paths, nil
}

// csvHeader is the stable column layout for both CSV files. Every
// IndicatorSet field gets a column; an absent indicator is an empty cell.
var csvHeader = []string{
	"symbol", "last_price", "open", "prev_close", "day_high", "day_low",
	"gain_pct", "volume", "score", "confidence", "will_stay_up", "risk",
	"position_score", "trend_score", "support_volume_score", "gain_score",
	"position_in_range", "near_high", "far_from_low",
	"above_open", "above_prev_close",
	"above_ma5", "above_ma10", "above_ma20", "uptrend_5d", "rsi", "rsi_safe",
	"support_level", "resistance_level", "above_support", "support_distance_pct",
	"volume_ratio", "high_volume",
	"reasons",
}

func writeCSV(path string, candidates []contracts.ScoredCandidate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range candidates {
		if err := w.Write(csvRow(c)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func csvRow(c contracts.ScoredCandidate) []string {
	q := c.Quote
	ind := c.Indicators
	return []string{
		q.Symbol,
		formatFloat(q.LastPrice),
		formatFloat(q.OpenPrice),
		formatFloat(q.PrevClose),
		formatFloat(q.DayHigh),
		formatFloat(q.DayLow),
		formatFloat(q.PercentChange),
		formatFloat(q.Volume),
		strconv.Itoa(c.CompositeScore),
		formatFloat(c.Confidence),
		strconv.FormatBool(c.WillStayUp),
		c.RiskLevel(),
		strconv.Itoa(c.SubScores.Position),
		strconv.Itoa(c.SubScores.Trend),
		strconv.Itoa(c.SubScores.SupportVolume),
		strconv.Itoa(c.SubScores.Gain),
		formatOptFloat(ind.PositionInRange),
		formatOptBool(ind.NearHigh),
		formatOptBool(ind.FarFromLow),
		formatOptBool(ind.AboveOpen),
		formatOptBool(ind.AbovePrevClose),
		formatOptBool(ind.AboveMA5),
		formatOptBool(ind.AboveMA10),
		formatOptBool(ind.AboveMA20),
		formatOptBool(ind.Uptrend5D),
		formatOptFloat(ind.RSI),
		formatOptBool(ind.RSISafe),
		formatOptFloat(ind.SupportLevel),
		formatOptFloat(ind.ResistanceLevel),
		formatOptBool(ind.AboveSupport),
		formatOptFloat(ind.SupportDistancePct),
		formatOptFloat(ind.VolumeRatio),
		formatOptBool(ind.HighVolume),
		strings.Join(c.SubScores.Reasons, "; "),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return formatFloat(*p)
}

func formatOptBool(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}
