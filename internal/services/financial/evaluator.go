package financial

import (
	"math"

	"github.com/ternarybob/praedium/internal/models"
)

// Cost model constants
const (
	ClosingCostRate = 0.02 // Acquisition loading on the purchase price
	SoftCostRate    = 0.15 // Soft costs as a share of construction cost
	SellDownMonths  = 12   // Fixed sell-down assumption for monthly revenue
)

// Evaluate computes the financial outcome of one (property, scenario)
// pair. Deterministic arithmetic; zero and negative inputs degrade to
// numeric defaults (0 ROI, sentinel payback) rather than erroring.
func Evaluate(property models.PropertyListing, scenario models.DevelopmentScenario) models.FinancialAnalysis {
	acquisitionCost := property.Price * (1 + ClosingCostRate)
	softCosts := scenario.ConstructionCost * SoftCostRate
	totalInvestment := acquisitionCost + scenario.ConstructionCost + softCosts

	netProfit := scenario.ProjectedRevenue - totalInvestment

	roi := 0.0
	if totalInvestment > 0 {
		roi = netProfit / totalInvestment * 100
	}

	payback := models.PaybackSentinel
	monthlyRevenue := scenario.ProjectedRevenue / SellDownMonths
	if monthlyRevenue > 0 {
		payback = int(math.Floor(totalInvestment / monthlyRevenue))
	}

	return models.FinancialAnalysis{
		TotalInvestment:  totalInvestment,
		ProjectedRevenue: scenario.ProjectedRevenue,
		NetProfit:        netProfit,
		ROIPercentage:    roi,
		PaybackMonths:    payback,
	}
}
