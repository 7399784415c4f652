package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
	"github.com/ternarybob/praedium/internal/services/financial"
	"github.com/ternarybob/praedium/internal/services/normalizer"
	"github.com/ternarybob/praedium/internal/services/ranking"
	"github.com/ternarybob/praedium/internal/services/scenarios"
	"github.com/ternarybob/praedium/internal/services/scoring"
)

// Service implements the AnalyzerService pipeline: acquisition ->
// normalization -> per-property scenario/financial/scoring -> ranking
// -> report assembly
type Service struct {
	config     *common.AnalysisConfig
	source     interfaces.PropertySource
	normalizer *normalizer.Service
	generator  *scenarios.Generator
	scorer     *scoring.Scorer
	ranker     *ranking.Ranker
	reports    interfaces.ReportService
	logger     arbor.ILogger
}

// Compile-time assertion
var _ interfaces.AnalyzerService = (*Service)(nil)

// NewService creates the analyzer pipeline service
func NewService(
	config *common.AnalysisConfig,
	source interfaces.PropertySource,
	reports interfaces.ReportService,
	logger arbor.ILogger,
) *Service {
	return &Service{
		config:     config,
		source:     source,
		normalizer: normalizer.NewService(config.MinListingPrice, logger),
		generator:  scenarios.NewGenerator(logger),
		scorer:     scoring.NewScorer(config.InvestmentCeiling),
		ranker:     ranking.NewRanker(config.TopOpportunities),
		reports:    reports,
		logger:     logger,
	}
}

// Analyze executes one analysis run. The only Go error it returns is an
// acquisition transport failure; every data-shaped problem degrades to
// a result (status "error" for a totally empty upstream, skipped
// records otherwise).
func (s *Service) Analyze(ctx context.Context, criteria models.SearchCriteria, prefs models.DeveloperPreferences) (*models.AnalysisResult, error) {
	runID := common.NewRunID()

	s.logger.Info().
		Str("run_id", runID).
		Str("source", s.source.Name()).
		Str("city", criteria.City).
		Str("province", criteria.Province).
		Msg("Starting analysis run")

	raw, err := s.source.Fetch(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("acquisition failed: %w", err)
	}

	if len(raw) == 0 {
		s.logger.Warn().Str("run_id", runID).Msg("Upstream returned no listings")
		return s.emptyResult(runID, criteria, "no properties found"), nil
	}

	listings := s.normalizer.NormalizeBatch(raw)

	candidates := s.analyzeProperties(ctx, listings, prefs)

	ranked := s.ranker.Rank(candidates)
	summary := s.ranker.Summarize(len(raw), ranked, prefs.MinROIThreshold)

	result := &models.AnalysisResult{
		RunID:            runID,
		Status:           models.StatusSuccess,
		Criteria:         criteria,
		Summary:          summary,
		TopOpportunities: s.ranker.TopN(ranked),
		GeneratedAt:      time.Now().UTC(),
	}
	result.DetailedReport = s.reports.NarrativeReport(result)

	s.logger.Info().
		Str("run_id", runID).
		Int("scraped", summary.TotalScraped).
		Int("analyzed", summary.TotalAnalyzed).
		Float64("average_roi", summary.AverageROI).
		Msg("Analysis run complete")

	return result, nil
}

// analyzeProperties fans the per-property analysis out over a bounded
// worker pool. Properties are independent; the output slot per index
// keeps encounter order stable for the ranking tie-break.
func (s *Service) analyzeProperties(ctx context.Context, listings []models.PropertyListing, prefs models.DeveloperPreferences) []models.AnalyzedOpportunity {
	workers := s.config.WorkerCount
	if workers <= 0 {
		workers = 1
	}

	results := make([]*models.AnalyzedOpportunity, len(listings))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range listings {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error().
						Str("listing_id", listings[idx].ListingID).
						Str("panic", fmt.Sprintf("%v", r)).
						Msg("Property analysis panicked, skipping property")
				}
			}()

			results[idx] = s.analyzeProperty(listings[idx], prefs)
		}(i)
	}

	wg.Wait()

	candidates := make([]models.AnalyzedOpportunity, 0, len(listings))
	for _, r := range results {
		if r != nil {
			candidates = append(candidates, *r)
		}
	}
	return candidates
}

// analyzeProperty evaluates every scenario for one property and keeps
// the best eligible one. Returns nil when no scenario clears the ROI
// floor; the property is then excluded from results entirely.
func (s *Service) analyzeProperty(property models.PropertyListing, prefs models.DeveloperPreferences) *models.AnalyzedOpportunity {
	generated := s.generator.Generate(property)

	scored := make([]scoring.ScoredScenario, 0, len(generated))
	for _, scenario := range generated {
		outcome := financial.Evaluate(property, scenario)
		scored = append(scored, scoring.ScoredScenario{
			Scenario:  scenario,
			Financial: outcome,
			Score:     s.scorer.Score(outcome, scenario, prefs),
		})
	}

	best, ok := s.scorer.SelectBest(scored, prefs)
	if !ok {
		s.logger.Debug().
			Str("listing_id", property.ListingID).
			Float64("roi_floor", prefs.MinROIThreshold).
			Msg("No scenario cleared the ROI floor")
		return nil
	}

	return &models.AnalyzedOpportunity{
		Property:  property,
		Scenario:  best.Scenario,
		Financial: best.Financial,
		Score:     best.Score,
		Source:    property.Source,
	}
}

// emptyResult builds the distinguished "no results" outcome
func (s *Service) emptyResult(runID string, criteria models.SearchCriteria, message string) *models.AnalysisResult {
	result := &models.AnalysisResult{
		RunID:            runID,
		Status:           models.StatusError,
		Message:          message,
		Criteria:         criteria,
		TopOpportunities: []models.AnalyzedOpportunity{},
		GeneratedAt:      time.Now().UTC(),
	}
	result.DetailedReport = s.reports.NarrativeReport(result)
	return result
}
