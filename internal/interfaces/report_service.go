package interfaces

import (
	"github.com/ternarybob/praedium/internal/models"
)

// ReportService renders analysis results into presentation formats.
// All methods are pure presentation over the sorted candidate list.
type ReportService interface {
	// OpportunityList formats the ranked top-N opportunity list as
	// plain text, one block per property
	OpportunityList(result *models.AnalysisResult) string

	// NarrativeReport produces the markdown narrative covering the top
	// properties plus aggregate totals
	NarrativeReport(result *models.AnalysisResult) string

	// RenderHTML converts the narrative markdown report to HTML
	RenderHTML(result *models.AnalysisResult) (string, error)

	// WriteArtifacts writes the configured report formats for a run
	// into the output directory, named by run ID. Returns the paths
	// written.
	WriteArtifacts(result *models.AnalysisResult) ([]string, error)
}
