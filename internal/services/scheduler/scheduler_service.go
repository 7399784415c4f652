package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
)

// Service runs recurring analysis jobs on a cron schedule and writes
// report artifacts for each run
type Service struct {
	analyzer interfaces.AnalyzerService
	reports  interfaces.ReportService
	criteria models.SearchCriteria
	prefs    models.DeveloperPreferences
	cron     *cron.Cron
	logger   arbor.ILogger

	mu        sync.Mutex // Prevents overlapping runs
	running   bool
	isWorking bool
	lastError string
	lastRun   *time.Time
}

// Compile-time assertion
var _ interfaces.SchedulerService = (*Service)(nil)

// NewService creates a scheduler that re-runs one analysis job
func NewService(
	analyzer interfaces.AnalyzerService,
	reports interfaces.ReportService,
	criteria models.SearchCriteria,
	prefs models.DeveloperPreferences,
	logger arbor.ILogger,
) *Service {
	return &Service{
		analyzer: analyzer,
		reports:  reports,
		criteria: criteria,
		prefs:    prefs,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start begins the scheduler with the given cron expression
func (s *Service) Start(cronExpr string) error {
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if cronExpr == "" {
		cronExpr = "0 6 * * *" // Default: daily at 06:00
	}

	entryID, err := s.cron.AddFunc(cronExpr, s.runScheduledAnalysis)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().
		Str("cron_expr", cronExpr).
		Str("next_run", s.cron.Entry(entryID).Next.Format(time.RFC3339)).
		Msg("Scheduler started")

	return nil
}

// Stop halts the scheduler and waits for a running job to finish
func (s *Service) Stop() {
	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info().Msg("Scheduler stopped")
}

// IsRunning reports whether the scheduler has been started
func (s *Service) IsRunning() bool {
	return s.running
}

// runScheduledAnalysis executes one analysis run. Overlapping
// invocations are skipped rather than queued.
func (s *Service) runScheduledAnalysis() {
	s.mu.Lock()
	if s.isWorking {
		s.mu.Unlock()
		s.logger.Warn().Msg("Previous scheduled analysis still running, skipping this tick")
		return
	}
	s.isWorking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isWorking = false
		now := time.Now()
		s.lastRun = &now
		s.mu.Unlock()
	}()

	s.logger.Info().
		Str("city", s.criteria.City).
		Str("profile", s.prefs.Name).
		Msg("Running scheduled analysis")

	result, err := s.analyzer.Analyze(context.Background(), s.criteria, s.prefs)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		s.logger.Error().Err(err).Msg("Scheduled analysis failed")
		return
	}

	if _, err := s.reports.WriteArtifacts(result); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write scheduled report artifacts")
		return
	}

	s.logger.Info().
		Str("run_id", result.RunID).
		Str("status", string(result.Status)).
		Int("opportunities", len(result.TopOpportunities)).
		Msg("Scheduled analysis complete")
}
