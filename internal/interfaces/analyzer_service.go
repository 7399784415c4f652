package interfaces

import (
	"context"

	"github.com/ternarybob/praedium/internal/models"
)

// AnalyzerService runs the full analysis pipeline: acquisition,
// normalization, scenario generation, financial evaluation, scoring,
// ranking, and report assembly.
//
// The pipeline never fails on a single bad record; malformed records
// are logged and skipped. Only a total absence of upstream data
// surfaces as a result with status "error" (still without a Go error).
type AnalyzerService interface {
	// Analyze executes one analysis run for the given search criteria
	// and developer preferences
	Analyze(ctx context.Context, criteria models.SearchCriteria, prefs models.DeveloperPreferences) (*models.AnalysisResult, error)
}
