package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultDetailCount is the number of properties the narrative covers
const DefaultDetailCount = 5

// Service renders analysis results into text, markdown, HTML and PDF
type Service struct {
	config *common.ReportConfig
	detail int
	md     goldmark.Markdown
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ReportService = (*Service)(nil)

// NewService creates a report service. A non-positive detail count in
// the config falls back to the default.
func NewService(config *common.ReportConfig, logger arbor.ILogger) *Service {
	detail := config.DetailCount
	if detail <= 0 {
		detail = DefaultDetailCount
	}
	return &Service{
		config: config,
		detail: detail,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		),
		logger: logger,
	}
}

// OpportunityList formats the ranked top-N opportunities as plain text
func (s *Service) OpportunityList(result *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TOP DEVELOPMENT OPPORTUNITIES — %s, %s\n", result.Criteria.City, result.Criteria.Province)
	fmt.Fprintf(&b, "Run %s at %s\n", result.RunID, result.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Scraped %d | Analyzed %d | Meeting ROI floor %d | Average ROI %.2f%%\n",
		result.Summary.TotalScraped, result.Summary.TotalAnalyzed,
		result.Summary.MeetingROIThreshold, result.Summary.AverageROI)
	b.WriteString(strings.Repeat("=", 72) + "\n")

	if len(result.TopOpportunities) == 0 {
		b.WriteString("No opportunities met the criteria.\n")
		return b.String()
	}

	for i, opp := range result.TopOpportunities {
		fmt.Fprintf(&b, "\n#%d  %s, %s, %s\n", i+1, opp.Property.Address, opp.Property.City, opp.Property.Province)
		fmt.Fprintf(&b, "    Price:      $%s\n", formatAmount(opp.Property.Price))
		fmt.Fprintf(&b, "    Lot:        %s sqft (%.2f acres), zoned %s\n",
			formatAmount(opp.Property.LotSizeSqft), opp.Property.LotSizeAcres(), opp.Property.Zoning)
		fmt.Fprintf(&b, "    Scenario:   %s — %d units, %d month timeline\n",
			opp.Scenario.ScenarioName, opp.Scenario.TotalUnits, opp.Scenario.TimelineMonths)
		fmt.Fprintf(&b, "    Financials: invest $%s, profit $%s, ROI %.2f%%\n",
			formatAmount(opp.Financial.TotalInvestment), formatAmount(opp.Financial.NetProfit),
			opp.Financial.ROIPercentage)
		fmt.Fprintf(&b, "    Score:      %.3f\n", opp.Score)
		if opp.Property.ListingURL != "" {
			fmt.Fprintf(&b, "    URL:        %s\n", opp.Property.ListingURL)
		}
	}

	return b.String()
}

// NarrativeReport produces the markdown narrative covering the top
// properties plus aggregate totals
func (s *Service) NarrativeReport(result *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Development Opportunity Report — %s, %s\n\n", result.Criteria.City, result.Criteria.Province)
	fmt.Fprintf(&b, "Generated %s (run `%s`)\n\n", result.GeneratedAt.Format("2 January 2006 15:04 MST"), result.RunID)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Listings scraped | %d |\n", result.Summary.TotalScraped)
	fmt.Fprintf(&b, "| Properties analyzed | %d |\n", result.Summary.TotalAnalyzed)
	fmt.Fprintf(&b, "| Meeting ROI threshold | %d |\n", result.Summary.MeetingROIThreshold)
	fmt.Fprintf(&b, "| Average ROI | %.2f%% |\n\n", result.Summary.AverageROI)

	detail := result.TopOpportunities
	if len(detail) > s.detail {
		detail = detail[:s.detail]
	}

	if len(detail) == 0 {
		b.WriteString("No properties met the investment criteria for this run.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Top %d Opportunities\n\n", len(detail))

	var totalInvestment, totalProfit float64
	totalUnits := 0

	for i, opp := range detail {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, opp.Property.Address)
		fmt.Fprintf(&b, "%s, %s — listed at $%s on a %s sqft (%.2f acre) lot zoned %s.\n\n",
			opp.Property.City, opp.Property.Province, formatAmount(opp.Property.Price),
			formatAmount(opp.Property.LotSizeSqft), opp.Property.LotSizeAcres(), opp.Property.Zoning)
		fmt.Fprintf(&b, "Recommended program: **%s** — %d units over a %d month timeline. ",
			opp.Scenario.ScenarioName, opp.Scenario.TotalUnits, opp.Scenario.TimelineMonths)
		fmt.Fprintf(&b, "Total investment of $%s returns a projected profit of $%s (ROI %.2f%%",
			formatAmount(opp.Financial.TotalInvestment), formatAmount(opp.Financial.NetProfit),
			opp.Financial.ROIPercentage)
		if opp.Financial.PaysBack() {
			fmt.Fprintf(&b, ", payback in %d months", opp.Financial.PaybackMonths)
		}
		fmt.Fprintf(&b, "). Opportunity score: %.3f.\n\n", opp.Score)
		if opp.Property.ListingURL != "" {
			fmt.Fprintf(&b, "[Listing](%s)\n\n", opp.Property.ListingURL)
		}

		totalInvestment += opp.Financial.TotalInvestment
		totalProfit += opp.Financial.NetProfit
		totalUnits += opp.Scenario.TotalUnits
	}

	fmt.Fprintf(&b, "## Portfolio Totals (top %d)\n\n", len(detail))
	fmt.Fprintf(&b, "- Combined investment: $%s\n", formatAmount(totalInvestment))
	fmt.Fprintf(&b, "- Combined projected profit: $%s\n", formatAmount(totalProfit))
	fmt.Fprintf(&b, "- Combined units: %d\n", totalUnits)

	return b.String()
}

// RenderHTML converts the narrative markdown report to HTML
func (s *Service) RenderHTML(result *models.AnalysisResult) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(s.NarrativeReport(result)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

// WriteArtifacts writes the configured report formats for a run into
// the output directory, named by run ID
func (s *Service) WriteArtifacts(result *models.AnalysisResult) ([]string, error) {
	if err := os.MkdirAll(s.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report output directory: %w", err)
	}

	written := make([]string, 0, len(s.config.Formats))

	for _, format := range s.config.Formats {
		var (
			path string
			err  error
		)

		switch format {
		case "text":
			path = s.artifactPath(result, ".txt")
			err = os.WriteFile(path, []byte(s.OpportunityList(result)), 0644)
		case "markdown":
			path = s.artifactPath(result, ".md")
			err = os.WriteFile(path, []byte(s.NarrativeReport(result)), 0644)
		case "html":
			path = s.artifactPath(result, ".html")
			var html string
			if html, err = s.RenderHTML(result); err == nil {
				err = os.WriteFile(path, []byte(html), 0644)
			}
		case "pdf":
			path = s.artifactPath(result, ".pdf")
			var pdf []byte
			if pdf, err = s.renderPDF(result); err == nil {
				err = os.WriteFile(path, pdf, 0644)
			}
		default:
			s.logger.Warn().Str("format", format).Msg("Unknown report format, skipping")
			continue
		}

		if err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", format, err)
		}

		s.logger.Info().Str("format", format).Str("path", path).Msg("Wrote report artifact")
		written = append(written, path)
	}

	return written, nil
}

func (s *Service) artifactPath(result *models.AnalysisResult, ext string) string {
	return filepath.Join(s.config.OutputDir, result.RunID+ext)
}

// formatAmount renders a dollar amount with thousands separators and
// no cents
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
