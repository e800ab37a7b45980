package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External feeds
	NSE          NSEConfig
	Yahoo        YahooConfig
	Moneycontrol MoneycontrolConfig

	// Scan behavior
	Scan ScanConfig

	// Flat-file export
	Export ExportConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// NSEConfig holds NSE live feed configuration.
type NSEConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// YahooConfig holds Yahoo Finance chart API configuration.
type YahooConfig struct {
	BaseURL      string
	SymbolSuffix string // exchange suffix appended to symbols, e.g. ".NS"
	Range        string // history window, e.g. "1mo"
	Timeout      time.Duration
}

// MoneycontrolConfig holds the HTML gainers-table source configuration.
type MoneycontrolConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ScanConfig controls the scan pipeline.
type ScanConfig struct {
	Source        string // snapshot source: "nse" or "moneycontrol"
	UniverseLimit int    // max gainers analyzed per scan
	Schedule      string // cron expression for the watch/serve scheduler
	RatePerSecond float64
}

// ExportConfig controls CSV/report file output.
type ExportConfig struct {
	Dir     string
	Enabled bool
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8085"),
		Env:  getEnv("ENV", "development"),

		NSE: NSEConfig{
			BaseURL:   getEnv("NSE_BASE_URL", "https://www.nseindia.com"),
			UserAgent: getEnv("NSE_USER_AGENT", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"),
			Timeout:   getEnvAsDuration("NSE_TIMEOUT", "15s"),
		},

		Yahoo: YahooConfig{
			BaseURL:      getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			SymbolSuffix: getEnv("YAHOO_SYMBOL_SUFFIX", ".NS"),
			Range:        getEnv("YAHOO_RANGE", "1mo"),
			Timeout:      getEnvAsDuration("YAHOO_TIMEOUT", "15s"),
		},

		Moneycontrol: MoneycontrolConfig{
			BaseURL: getEnv("MONEYCONTROL_BASE_URL", "https://www.moneycontrol.com"),
			Timeout: getEnvAsDuration("MONEYCONTROL_TIMEOUT", "15s"),
		},

		Scan: ScanConfig{
			Source:        getEnv("SNAPSHOT_SOURCE", "nse"),
			UniverseLimit: getEnvAsInt("SCAN_UNIVERSE_LIMIT", 15),
			Schedule:      getEnv("SCAN_SCHEDULE", "0 */15 9-15 * * MON-FRI"),
			RatePerSecond: getEnvAsFloat("SCAN_RATE_PER_SECOND", 2.0),
		},

		Export: ExportConfig{
			Dir:     getEnv("EXPORT_DIR", "./out"),
			Enabled: getEnvAsBool("EXPORT_ENABLED", false),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Scan.Source != "nse" && c.Scan.Source != "moneycontrol" {
		return fmt.Errorf("SNAPSHOT_SOURCE must be one of: nse, moneycontrol")
	}

	if c.Scan.UniverseLimit <= 0 {
		return fmt.Errorf("SCAN_UNIVERSE_LIMIT must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
