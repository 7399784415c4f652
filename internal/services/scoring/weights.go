package scoring

// Weights is one risk band's weighting of the three sub-scores. The
// three components always sum to 1.
type Weights struct {
	ROI        float64
	Timeline   float64
	Investment float64
}

// riskBand pairs an exclusive lower risk-tolerance bound with the
// weights applied above it
type riskBand struct {
	above   float64
	weights Weights
}

// riskBands is the discrete risk policy table, evaluated top-down with
// strict > comparisons: a tolerance of exactly 0.7 lands in the
// balanced band. New bands can be added here without touching the
// scoring code.
var riskBands = []riskBand{
	{above: 0.7, weights: Weights{ROI: 0.6, Timeline: 0.2, Investment: 0.2}}, // aggressive: ROI-dominant
	{above: 0.4, weights: Weights{ROI: 0.4, Timeline: 0.3, Investment: 0.3}}, // balanced
	{above: -1, weights: Weights{ROI: 0.3, Timeline: 0.4, Investment: 0.3}},  // conservative: favors speed
}

// WeightsForRiskTolerance selects the weight triple for a risk
// tolerance in [0,1]
func WeightsForRiskTolerance(riskTolerance float64) Weights {
	for _, band := range riskBands {
		if riskTolerance > band.above {
			return band.weights
		}
	}
	return riskBands[len(riskBands)-1].weights
}
