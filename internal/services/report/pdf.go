package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/praedium/internal/models"
)

// renderPDF produces a one-document PDF of the run: summary header
// followed by the ranked opportunity list
func (s *Service) renderPDF(result *models.AnalysisResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, fmt.Sprintf("Development Opportunity Report - %s, %s", result.Criteria.City, result.Criteria.Province), "", "L", false)

	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Generated %s (run %s)", result.GeneratedAt.Format("2 January 2006 15:04 MST"), result.RunID), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, "Summary", "", "L", false)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Listings scraped: %d    Properties analyzed: %d    Meeting ROI threshold: %d    Average ROI: %.2f%%",
		result.Summary.TotalScraped, result.Summary.TotalAnalyzed,
		result.Summary.MeetingROIThreshold, result.Summary.AverageROI), "", "L", false)
	pdf.Ln(3)

	if len(result.TopOpportunities) == 0 {
		pdf.MultiCell(0, 5, "No opportunities met the criteria.", "", "L", false)
	}

	for i, opp := range result.TopOpportunities {
		pdf.SetFont("Arial", "B", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("#%d  %s, %s, %s", i+1, opp.Property.Address, opp.Property.City, opp.Property.Province), "", "L", false)

		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Price $%s | Lot %s sqft (%.2f acres) | Zoning %s",
			formatAmount(opp.Property.Price), formatAmount(opp.Property.LotSizeSqft),
			opp.Property.LotSizeAcres(), opp.Property.Zoning), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("%s: %d units, %d months",
			opp.Scenario.ScenarioName, opp.Scenario.TotalUnits, opp.Scenario.TimelineMonths), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Investment $%s | Profit $%s | ROI %.2f%% | Score %.3f",
			formatAmount(opp.Financial.TotalInvestment), formatAmount(opp.Financial.NetProfit),
			opp.Financial.ROIPercentage, opp.Score), "", "L", false)
		if opp.Property.ListingURL != "" {
			pdf.MultiCell(0, 5, opp.Property.ListingURL, "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF report: %w", err)
	}
	return buf.Bytes(), nil
}
