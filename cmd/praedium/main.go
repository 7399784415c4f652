package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/models"
	"github.com/ternarybob/praedium/internal/services/acquisition"
	"github.com/ternarybob/praedium/internal/services/analyzer"
	"github.com/ternarybob/praedium/internal/services/profiles"
	"github.com/ternarybob/praedium/internal/services/report"
	"github.com/ternarybob/praedium/internal/services/scheduler"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	profileName  = flag.String("profile", "", "Preference profile name (overrides config default)")
	sourceName   = flag.String("source", "", "Acquisition source: sample, csv, or http (overrides config)")
	city         = flag.String("city", "Edmonton", "Search city")
	province     = flag.String("province", "AB", "Search province")
	minPrice     = flag.Float64("min-price", 0, "Minimum listing price filter")
	maxPrice     = flag.Float64("max-price", 0, "Maximum listing price filter")
	outputDir    = flag.String("out", "", "Report output directory (overrides config)")
	watchMode    = flag.Bool("watch", false, "Run the scheduler loop instead of a one-shot analysis")
	listProfiles = flag.Bool("profiles", false, "List available preference profiles and exit")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	common.LoadVersionFromFile()

	if *showVersion || *showVersionV {
		fmt.Printf("Praedium version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("praedium.toml"); err == nil {
			configFiles = append(configFiles, "praedium.toml")
		} else if _, err := os.Stat("deployments/local/praedium.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/praedium.toml")
		}
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> files -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, *sourceName, *outputDir)

	logger = common.InitLogger(config)

	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Str("environment", config.Environment).
		Str("source", config.Acquisition.Source).
		Msg("Application configuration loaded")

	profileService := profiles.NewService(&config.Preferences, logger)

	if *listProfiles {
		names, err := profileService.List()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to list profiles")
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("No profiles found (built-in default is always available)")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	prefs, err := profileService.Load(*profileName)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load preference profile")
		os.Exit(1)
	}

	source, err := acquisition.NewSource(&config.Acquisition, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure acquisition source")
		os.Exit(1)
	}

	reportService := report.NewService(&config.Report, logger)
	analyzerService := analyzer.NewService(&config.Analysis, source, reportService, logger)

	criteria := models.SearchCriteria{
		City:     *city,
		Province: *province,
		MinPrice: *minPrice,
		MaxPrice: *maxPrice,
	}

	if *watchMode || config.Scheduler.Enabled {
		runScheduler(analyzerService, reportService, criteria, prefs)
		return
	}

	runOnce(analyzerService, reportService, criteria, prefs)
}

// runOnce executes a single analysis and prints the opportunity list
func runOnce(
	analyzerService *analyzer.Service,
	reportService *report.Service,
	criteria models.SearchCriteria,
	prefs models.DeveloperPreferences,
) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := analyzerService.Analyze(ctx, criteria, prefs)
	if err != nil {
		logger.Fatal().Err(err).Msg("Analysis run failed")
		os.Exit(1)
	}

	fmt.Println(reportService.OpportunityList(result))

	if result.Status == models.StatusError {
		logger.Warn().Str("message", result.Message).Msg("Analysis produced no results")
		return
	}

	paths, err := reportService.WriteArtifacts(result)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to write report artifacts")
		os.Exit(1)
	}

	for _, path := range paths {
		fmt.Printf("Report written: %s\n", path)
	}
}

// runScheduler runs recurring analyses until interrupted
func runScheduler(
	analyzerService *analyzer.Service,
	reportService *report.Service,
	criteria models.SearchCriteria,
	prefs models.DeveloperPreferences,
) {
	sched := scheduler.NewService(analyzerService, reportService, criteria, prefs, logger)

	if err := sched.Start(config.Scheduler.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start scheduler")
		os.Exit(1)
	}

	logger.Info().
		Str("schedule", config.Scheduler.Schedule).
		Msg("Watch mode active - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")
	sched.Stop()
}
