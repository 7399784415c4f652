package models

// ZoningCategory groups zoning codes into the buckets the scenario rule
// table dispatches on
type ZoningCategory string

const (
	ZoningSingleFamily ZoningCategory = "single_family" // R1, RF1, RSL
	ZoningTownhouse    ZoningCategory = "townhouse"     // R2, RF3, RF4
	ZoningLowRise      ZoningCategory = "low_rise"      // R3, RA7, RA8, RA9
	ZoningMixedUse     ZoningCategory = "mixed_use"     // C1, C2, CB1, CB2
	ZoningGeneric      ZoningCategory = "generic"       // everything else, including unknown
)

// DevelopmentScenario is a hypothetical development program derived
// deterministically from a property's zoning and lot size. Scenarios
// are stateless and independent of each other.
type DevelopmentScenario struct {
	ScenarioName     string         `json:"scenario_name"`
	Category         ZoningCategory `json:"category"`
	TotalUnits       int            `json:"total_units"`
	ConstructionCost float64        `json:"construction_cost"`
	TimelineMonths   int            `json:"timeline_months"`
	ProjectedRevenue float64        `json:"projected_revenue"`
}
