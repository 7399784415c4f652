package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	Logging     LoggingConfig     `toml:"logging"`
	Analysis    AnalysisConfig    `toml:"analysis"`
	Acquisition AcquisitionConfig `toml:"acquisition"`
	Preferences PreferencesConfig `toml:"preferences"`
	Scheduler   SchedulerConfig   `toml:"scheduler"`
	Report      ReportConfig      `toml:"report"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// AnalysisConfig contains tunables for the analysis pipeline.
// These are model constants with sensible defaults; most deployments
// never override them.
type AnalysisConfig struct {
	TopOpportunities  int     `toml:"top_opportunities"`  // Size of the ranked opportunity list (default: 10)
	InvestmentCeiling float64 `toml:"investment_ceiling"` // Reference ceiling for the investment sub-score (default: 5,000,000)
	MinListingPrice   float64 `toml:"min_listing_price"`  // Listings below this price are treated as data-entry errors (default: 10,000)
	WorkerCount       int     `toml:"worker_count"`       // Concurrent per-property analysis workers (default: 4)
}

// AcquisitionConfig selects and configures the upstream listing source
type AcquisitionConfig struct {
	Source         string        `toml:"source"`          // "sample", "csv", or "http"
	CSVPath        string        `toml:"csv_path"`        // Listings CSV file for the csv source
	Endpoint       string        `toml:"endpoint"`        // Listings API base URL for the http source
	APIKey         string        `toml:"api_key"`         // Optional bearer token for the http source
	RateLimit      time.Duration `toml:"rate_limit"`      // Minimum time between API requests
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
}

// PreferencesConfig locates developer preference profiles
type PreferencesConfig struct {
	ProfilesDir    string `toml:"profiles_dir"`    // Directory containing profile TOML files
	DefaultProfile string `toml:"default_profile"` // Profile name used when none is given on the CLI
}

// SchedulerConfig controls recurring analysis runs
type SchedulerConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // Cron schedule format
}

// ReportConfig controls report artifact output
type ReportConfig struct {
	OutputDir   string   `toml:"output_dir"`
	Formats     []string `toml:"formats"`      // "text", "markdown", "html", "pdf"
	DetailCount int      `toml:"detail_count"` // Properties covered by the narrative report (default: 5)
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Analysis: AnalysisConfig{
			TopOpportunities:  10,
			InvestmentCeiling: 5_000_000,
			MinListingPrice:   10_000,
			WorkerCount:       4,
		},
		Acquisition: AcquisitionConfig{
			Source:         "sample",
			RateLimit:      1 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Preferences: PreferencesConfig{
			ProfilesDir: "./profiles",
		},
		Scheduler: SchedulerConfig{
			Enabled:  false,
			Schedule: "0 6 * * *", // Daily at 06:00
		},
		Report: ReportConfig{
			OutputDir:   "./reports",
			Formats:     []string{"text", "markdown"},
			DetailCount: 5,
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PRAEDIUM_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("PRAEDIUM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PRAEDIUM_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if source := os.Getenv("PRAEDIUM_ACQUISITION_SOURCE"); source != "" {
		config.Acquisition.Source = source
	}
	if endpoint := os.Getenv("PRAEDIUM_ACQUISITION_ENDPOINT"); endpoint != "" {
		config.Acquisition.Endpoint = endpoint
	}
	if apiKey := os.Getenv("PRAEDIUM_ACQUISITION_API_KEY"); apiKey != "" {
		config.Acquisition.APIKey = apiKey
	}
	if csvPath := os.Getenv("PRAEDIUM_ACQUISITION_CSV_PATH"); csvPath != "" {
		config.Acquisition.CSVPath = csvPath
	}

	if profilesDir := os.Getenv("PRAEDIUM_PROFILES_DIR"); profilesDir != "" {
		config.Preferences.ProfilesDir = profilesDir
	}

	if workers := os.Getenv("PRAEDIUM_WORKER_COUNT"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			config.Analysis.WorkerCount = w
		}
	}

	if outputDir := os.Getenv("PRAEDIUM_REPORT_OUTPUT_DIR"); outputDir != "" {
		config.Report.OutputDir = outputDir
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, source, outputDir string) {
	if source != "" {
		config.Acquisition.Source = source
	}
	if outputDir != "" {
		config.Report.OutputDir = outputDir
	}
}
