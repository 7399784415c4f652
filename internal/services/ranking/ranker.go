package ranking

import (
	"sort"

	"github.com/ternarybob/praedium/internal/models"
)

// DefaultTopN is the size of the ranked opportunity list
const DefaultTopN = 10

// Ranker orders candidates and aggregates run statistics
type Ranker struct {
	topN int
}

// NewRanker creates a ranker. A non-positive topN falls back to the
// default.
func NewRanker(topN int) *Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Ranker{topN: topN}
}

// Rank sorts candidates descending by score. The sort is stable:
// equal scores keep their encounter order. The input slice is not
// modified.
func (r *Ranker) Rank(candidates []models.AnalyzedOpportunity) []models.AnalyzedOpportunity {
	ranked := make([]models.AnalyzedOpportunity, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// TopN returns the first n ranked candidates
func (r *Ranker) TopN(ranked []models.AnalyzedOpportunity) []models.AnalyzedOpportunity {
	if len(ranked) <= r.topN {
		return ranked
	}
	return ranked[:r.topN]
}

// Summarize aggregates run counts and the mean ROI across candidates.
//
// MeetingROIThreshold deliberately re-filters the candidate list even
// though every candidate already cleared the floor; consumers read the
// field, so its shape stays.
func (r *Ranker) Summarize(totalScraped int, candidates []models.AnalyzedOpportunity, minROIThreshold float64) models.AnalysisSummary {
	meeting := 0
	roiSum := 0.0
	for _, c := range candidates {
		roiSum += c.Financial.ROIPercentage
		if c.Financial.ROIPercentage >= minROIThreshold {
			meeting++
		}
	}

	averageROI := 0.0
	if len(candidates) > 0 {
		averageROI = roiSum / float64(len(candidates))
	}

	return models.AnalysisSummary{
		TotalScraped:        totalScraped,
		TotalAnalyzed:       len(candidates),
		MeetingROIThreshold: meeting,
		AverageROI:          averageROI,
	}
}
