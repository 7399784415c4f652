package models

// DeveloperPreferences captures a developer's investment profile.
// Immutable once constructed; owned by the caller of an analysis run.
//
// PreferredPropertyTypes and LocationPreferences are accepted and
// validated but not yet consulted by scoring or filtering. They are
// reserved for future use; do not remove them from profiles.
type DeveloperPreferences struct {
	Name                   string             `toml:"name" json:"name"`
	RiskTolerance          float64            `toml:"risk_tolerance" json:"risk_tolerance" validate:"gte=0,lte=1"`
	PreferredPropertyTypes []string           `toml:"preferred_property_types" json:"preferred_property_types"`
	MinROIThreshold        float64            `toml:"min_roi_threshold" json:"min_roi_threshold"`
	MaxTimelineMonths      int                `toml:"max_development_timeline_months" json:"max_development_timeline_months" validate:"gt=0"`
	FinancingPreference    string             `toml:"financing_preference" json:"financing_preference"`
	LocationPreferences    map[string]float64 `toml:"location_preferences" json:"location_preferences"`
}

// DefaultPreferences returns the built-in balanced profile used when no
// profile is configured
func DefaultPreferences() DeveloperPreferences {
	return DeveloperPreferences{
		Name:                "default",
		RiskTolerance:       0.5,
		MinROIThreshold:     15.0,
		MaxTimelineMonths:   36,
		FinancingPreference: "conventional",
	}
}
