package scenarios

import (
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/models"
)

// Generator produces candidate development scenarios for a property
type Generator struct {
	logger arbor.ILogger
}

// NewGenerator creates a scenario generator
func NewGenerator(logger arbor.ILogger) *Generator {
	return &Generator{logger: logger}
}

// CategoryForZoning resolves a zoning code to its scenario category.
// Unrecognized or missing codes map to ZoningGeneric.
func CategoryForZoning(zoning string) models.ZoningCategory {
	code := strings.ToUpper(strings.TrimSpace(zoning))
	if category, ok := categoryByCode[code]; ok {
		return category
	}
	return models.ZoningGeneric
}

// Generate returns the ordered, non-empty scenario list for a property
func (g *Generator) Generate(property models.PropertyListing) []models.DevelopmentScenario {
	category := CategoryForZoning(property.Zoning)

	rules := rulesByCategory[category]
	result := make([]models.DevelopmentScenario, 0, len(rules))
	for _, rule := range rules {
		result = append(result, rule(property.LotSizeSqft))
	}

	g.logger.Debug().
		Str("listing_id", property.ListingID).
		Str("zoning", property.Zoning).
		Str("category", string(category)).
		Int("scenarios", len(result)).
		Msg("Generated development scenarios")

	return result
}
