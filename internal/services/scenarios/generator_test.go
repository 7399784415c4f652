package scenarios

import (
	"testing"

	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/models"
)

func TestCategoryForZoning(t *testing.T) {
	tests := []struct {
		zoning string
		want   models.ZoningCategory
	}{
		{"R1", models.ZoningSingleFamily},
		{"RF1", models.ZoningSingleFamily},
		{"RSL", models.ZoningSingleFamily},
		{"R2", models.ZoningTownhouse},
		{"RF3", models.ZoningTownhouse},
		{"RF4", models.ZoningTownhouse},
		{"R3", models.ZoningLowRise},
		{"RA7", models.ZoningLowRise},
		{"RA8", models.ZoningLowRise},
		{"RA9", models.ZoningLowRise},
		{"C1", models.ZoningMixedUse},
		{"C2", models.ZoningMixedUse},
		{"CB1", models.ZoningMixedUse},
		{"CB2", models.ZoningMixedUse},
		{"rf1", models.ZoningSingleFamily}, // case-insensitive
		{" c2 ", models.ZoningMixedUse},    // trimmed
		{"AG", models.ZoningGeneric},
		{"DC2", models.ZoningGeneric},
		{"Unknown", models.ZoningGeneric},
		{"", models.ZoningGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.zoning, func(t *testing.T) {
			if got := CategoryForZoning(tt.zoning); got != tt.want {
				t.Errorf("CategoryForZoning(%q) = %v, want %v", tt.zoning, got, tt.want)
			}
		})
	}
}

func TestGenerate_RuleTable(t *testing.T) {
	generator := NewGenerator(common.GetLogger())

	tests := []struct {
		name         string
		zoning       string
		lotSqft      float64
		wantName     string
		wantUnits    int
		wantCost     float64
		wantTimeline int
		wantRevenue  float64
	}{
		{
			name:         "single family RF1",
			zoning:       "RF1",
			lotSqft:      12000,
			wantName:     "Single Family Homes",
			wantUnits:    2, // floor(12000/6000)
			wantCost:     12000 * 0.6 * 150,
			wantTimeline: 18,
			wantRevenue:  2 * 650000,
		},
		{
			name:         "townhouse R2",
			zoning:       "R2",
			lotSqft:      9000,
			wantName:     "Townhouse Development",
			wantUnits:    3, // floor(9000/2500)
			wantCost:     9000 * 0.7 * 125,
			wantTimeline: 24,
			wantRevenue:  3 * 450000,
		},
		{
			name:         "low-rise RA7",
			zoning:       "RA7",
			lotSqft:      14800,
			wantName:     "Low-Rise Apartment",
			wantUnits:    14, // floor(14800/1000)
			wantCost:     14800 * 1.5 * 175,
			wantTimeline: 30,
			wantRevenue:  14 * 350000,
		},
		{
			name:         "mixed use CB1 revenue scales with lot",
			zoning:       "CB1",
			lotSqft:      18200,
			wantName:     "Mixed-Use Development",
			wantUnits:    22, // floor(18200/800)
			wantCost:     18200 * 2.0 * 200,
			wantTimeline: 36,
			wantRevenue:  18200 * 2.0 * 400,
		},
		{
			name:         "unknown zoning falls through to generic",
			zoning:       "AG",
			lotSqft:      21500,
			wantName:     "Generic Development",
			wantUnits:    7, // floor(21500/3000)
			wantCost:     21500 * 0.5 * 150,
			wantTimeline: 24,
			wantRevenue:  21500 * 0.5 * 300,
		},
		{
			name:         "zero lot yields zero units",
			zoning:       "RF1",
			lotSqft:      0,
			wantName:     "Single Family Homes",
			wantUnits:    0,
			wantCost:     0,
			wantTimeline: 18,
			wantRevenue:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property := models.PropertyListing{
				ListingID:   "T-1",
				Zoning:      tt.zoning,
				LotSizeSqft: tt.lotSqft,
			}

			scenarios := generator.Generate(property)
			if len(scenarios) == 0 {
				t.Fatal("Generate() returned empty scenario list")
			}

			s := scenarios[0]
			if s.ScenarioName != tt.wantName {
				t.Errorf("scenario name = %q, want %q", s.ScenarioName, tt.wantName)
			}
			if s.TotalUnits != tt.wantUnits {
				t.Errorf("total units = %d, want %d", s.TotalUnits, tt.wantUnits)
			}
			if s.ConstructionCost != tt.wantCost {
				t.Errorf("construction cost = %v, want %v", s.ConstructionCost, tt.wantCost)
			}
			if s.TimelineMonths != tt.wantTimeline {
				t.Errorf("timeline = %d, want %d", s.TimelineMonths, tt.wantTimeline)
			}
			if s.ProjectedRevenue != tt.wantRevenue {
				t.Errorf("projected revenue = %v, want %v", s.ProjectedRevenue, tt.wantRevenue)
			}
		})
	}
}

func TestGenerate_NonNegativeOutputs(t *testing.T) {
	generator := NewGenerator(common.GetLogger())

	for _, zoning := range []string{"RF1", "R2", "RA8", "C1", "XX"} {
		scenarios := generator.Generate(models.PropertyListing{Zoning: zoning, LotSizeSqft: 123.45})
		for _, s := range scenarios {
			if s.TotalUnits < 0 || s.ConstructionCost < 0 || s.ProjectedRevenue < 0 {
				t.Errorf("zoning %s produced negative scenario values: %+v", zoning, s)
			}
		}
	}
}
