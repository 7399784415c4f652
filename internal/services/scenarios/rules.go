package scenarios

import (
	"math"

	"github.com/ternarybob/praedium/internal/models"
)

// Rule builds one development scenario from a lot size in sqft. Rules
// are pure; everything a scenario contains is derived from the lot.
type Rule func(lotSqft float64) models.DevelopmentScenario

// categoryByCode maps zoning codes to their scenario category. Codes
// are matched upper-cased; anything absent falls through to
// ZoningGeneric — that is the intended default, not an error path.
var categoryByCode = map[string]models.ZoningCategory{
	"R1":  models.ZoningSingleFamily,
	"RF1": models.ZoningSingleFamily,
	"RSL": models.ZoningSingleFamily,

	"R2":  models.ZoningTownhouse,
	"RF3": models.ZoningTownhouse,
	"RF4": models.ZoningTownhouse,

	"R3":  models.ZoningLowRise,
	"RA7": models.ZoningLowRise,
	"RA8": models.ZoningLowRise,
	"RA9": models.ZoningLowRise,

	"C1":  models.ZoningMixedUse,
	"C2":  models.ZoningMixedUse,
	"CB1": models.ZoningMixedUse,
	"CB2": models.ZoningMixedUse,
}

// rulesByCategory is the scenario rule table: one ordered rule list per
// category. This table is the single extension point for adding
// scenarios to a zoning class; every category currently yields exactly
// one scenario but callers must handle many.
var rulesByCategory = map[models.ZoningCategory][]Rule{
	models.ZoningSingleFamily: {singleFamily},
	models.ZoningTownhouse:    {townhouse},
	models.ZoningLowRise:      {lowRise},
	models.ZoningMixedUse:     {mixedUse},
	models.ZoningGeneric:      {generic},
}

func singleFamily(lot float64) models.DevelopmentScenario {
	units := unitYield(lot, 6000)
	return models.DevelopmentScenario{
		ScenarioName:     "Single Family Homes",
		Category:         models.ZoningSingleFamily,
		TotalUnits:       units,
		ConstructionCost: lot * 0.6 * 150,
		TimelineMonths:   18,
		ProjectedRevenue: float64(units) * 650000,
	}
}

func townhouse(lot float64) models.DevelopmentScenario {
	units := unitYield(lot, 2500)
	return models.DevelopmentScenario{
		ScenarioName:     "Townhouse Development",
		Category:         models.ZoningTownhouse,
		TotalUnits:       units,
		ConstructionCost: lot * 0.7 * 125,
		TimelineMonths:   24,
		ProjectedRevenue: float64(units) * 450000,
	}
}

func lowRise(lot float64) models.DevelopmentScenario {
	units := unitYield(lot, 1000)
	return models.DevelopmentScenario{
		ScenarioName:     "Low-Rise Apartment",
		Category:         models.ZoningLowRise,
		TotalUnits:       units,
		ConstructionCost: lot * 1.5 * 175,
		TimelineMonths:   30,
		ProjectedRevenue: float64(units) * 350000,
	}
}

func mixedUse(lot float64) models.DevelopmentScenario {
	return models.DevelopmentScenario{
		ScenarioName:     "Mixed-Use Development",
		Category:         models.ZoningMixedUse,
		TotalUnits:       unitYield(lot, 800),
		ConstructionCost: lot * 2.0 * 200,
		TimelineMonths:   36,
		ProjectedRevenue: lot * 2.0 * 400,
	}
}

func generic(lot float64) models.DevelopmentScenario {
	return models.DevelopmentScenario{
		ScenarioName:     "Generic Development",
		Category:         models.ZoningGeneric,
		TotalUnits:       unitYield(lot, 3000),
		ConstructionCost: lot * 0.5 * 150,
		TimelineMonths:   24,
		ProjectedRevenue: lot * 0.5 * 300,
	}
}

// unitYield is the per-zoning unit footprint division: integer floor,
// never negative
func unitYield(lotSqft, footprintSqft float64) int {
	if lotSqft <= 0 || footprintSqft <= 0 {
		return 0
	}
	return int(math.Floor(lotSqft / footprintSqft))
}
