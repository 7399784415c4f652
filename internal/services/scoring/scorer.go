package scoring

import (
	"github.com/ternarybob/praedium/internal/models"
)

// DefaultInvestmentCeiling is the reference ceiling for the investment
// sub-score: a $5M total investment scores 0
const DefaultInvestmentCeiling = 5_000_000

// Scorer computes preference-weighted desirability scores
type Scorer struct {
	investmentCeiling float64
}

// NewScorer creates a scorer. A non-positive ceiling falls back to the
// default.
func NewScorer(investmentCeiling float64) *Scorer {
	if investmentCeiling <= 0 {
		investmentCeiling = DefaultInvestmentCeiling
	}
	return &Scorer{investmentCeiling: investmentCeiling}
}

// Score computes the weighted desirability of one scenario outcome.
// Each sub-score is clamped to [0,1] before weighting, so the result
// stays in [0,1].
func (s *Scorer) Score(financial models.FinancialAnalysis, scenario models.DevelopmentScenario, prefs models.DeveloperPreferences) float64 {
	roiScore := Clamp(financial.ROIPercentage/100, 0, 1)

	timelineScore := 0.0
	if prefs.MaxTimelineMonths > 0 {
		timelineScore = Clamp(1-float64(scenario.TimelineMonths)/float64(prefs.MaxTimelineMonths), 0, 1)
	}

	investmentScore := Clamp(1-financial.TotalInvestment/s.investmentCeiling, 0, 1)

	w := WeightsForRiskTolerance(prefs.RiskTolerance)

	return roiScore*w.ROI + timelineScore*w.Timeline + investmentScore*w.Investment
}

// ScoredScenario pairs a scenario with its financials and score
type ScoredScenario struct {
	Scenario  models.DevelopmentScenario
	Financial models.FinancialAnalysis
	Score     float64
}

// SelectBest picks the highest-scoring scenario among those clearing
// the preference ROI floor. Ties keep the earlier scenario, preserving
// rule-table order. Returns (zero, false) when no scenario is eligible;
// the property then produces no candidate.
func (s *Scorer) SelectBest(scored []ScoredScenario, prefs models.DeveloperPreferences) (ScoredScenario, bool) {
	var best ScoredScenario
	found := false

	for _, candidate := range scored {
		if candidate.Financial.ROIPercentage < prefs.MinROIThreshold {
			continue
		}
		if !found || candidate.Score > best.Score {
			best = candidate
			found = true
		}
	}

	return best, found
}

// Clamp bounds v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
