package models

import "time"

// AnalysisStatus is the terminal status of an analysis run
type AnalysisStatus string

const (
	StatusSuccess AnalysisStatus = "success"
	StatusError   AnalysisStatus = "error"
)

// AnalyzedOpportunity binds a property to its single best eligible
// scenario, the scenario's financials, and the preference-weighted
// score. One per property that produced at least one scenario clearing
// the ROI floor.
type AnalyzedOpportunity struct {
	Property  PropertyListing     `json:"property"`
	Scenario  DevelopmentScenario `json:"scenario"`
	Financial FinancialAnalysis   `json:"financial"`
	Score     float64             `json:"score"`
	Source    string              `json:"source,omitempty"`
}

// AnalysisSummary aggregates counts across an analysis run.
//
// MeetingROIThreshold is computed as a re-filter over the candidate
// list. Candidates already cleared the ROI floor, so the value always
// equals TotalAnalyzed; the field is kept for consumers that read it.
type AnalysisSummary struct {
	TotalScraped        int     `json:"total_scraped"`
	TotalAnalyzed       int     `json:"total_analyzed"`
	MeetingROIThreshold int     `json:"meeting_roi_threshold"`
	AverageROI          float64 `json:"average_roi"`
}

// AnalysisResult is the outcome of one pipeline run
type AnalysisResult struct {
	RunID            string                `json:"run_id"`
	Status           AnalysisStatus        `json:"status"`
	Message          string                `json:"message,omitempty"`
	Criteria         SearchCriteria        `json:"criteria"`
	Summary          AnalysisSummary       `json:"summary"`
	TopOpportunities []AnalyzedOpportunity `json:"top_opportunities"`
	DetailedReport   string                `json:"detailed_report"`
	GeneratedAt      time.Time             `json:"generated_at"`
}
