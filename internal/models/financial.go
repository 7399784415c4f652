package models

// PaybackSentinel marks a scenario that never pays back within the
// model horizon (monthly revenue <= 0)
const PaybackSentinel = 999

// FinancialAnalysis holds the computed financial outcome of one
// (property, scenario) pair. Pure function of its inputs; never mutated.
type FinancialAnalysis struct {
	TotalInvestment  float64 `json:"total_investment"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	NetProfit        float64 `json:"net_profit"`
	ROIPercentage    float64 `json:"roi_percentage"`
	PaybackMonths    int     `json:"payback_months"`
}

// PaysBack reports whether the scenario repays its investment within
// the model horizon
func (f *FinancialAnalysis) PaysBack() bool {
	return f.PaybackMonths < PaybackSentinel
}
