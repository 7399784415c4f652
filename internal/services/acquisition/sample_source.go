package acquisition

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
)

// SampleSource returns a deterministic built-in batch of listings.
// Useful for demos and tests when no live source is configured.
type SampleSource struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.PropertySource = (*SampleSource)(nil)

// NewSampleSource creates the built-in sample source
func NewSampleSource(logger arbor.ILogger) *SampleSource {
	return &SampleSource{logger: logger}
}

// Name identifies the source in logs and result metadata
func (s *SampleSource) Name() string {
	return "sample"
}

// sampleListings covers every zoning bucket plus an unknown code and a
// deliberately under-priced record
var sampleListings = []models.RawListing{
	{ListingID: "SAMPLE-001", Address: "10312 82 Ave NW", City: "Edmonton", Province: "AB", Price: 485000, LotSizeSqft: 7200, Zoning: "RF1", URL: "https://example.com/listings/sample-001"},
	{ListingID: "SAMPLE-002", Address: "9655 76 Ave NW", City: "Edmonton", Province: "AB", Price: 615000, LotSizeSqft: 9100, Zoning: "RF3", URL: "https://example.com/listings/sample-002"},
	{ListingID: "SAMPLE-003", Address: "11404 97 St NW", City: "Edmonton", Province: "AB", Price: 1250000, LotSizeSqft: 14800, Zoning: "RA7", URL: "https://example.com/listings/sample-003"},
	{ListingID: "SAMPLE-004", Address: "10155 102 St NW", City: "Edmonton", Province: "AB", Price: 2890000, LotSizeSqft: 18200, Zoning: "CB1", URL: "https://example.com/listings/sample-004"},
	{ListingID: "SAMPLE-005", Address: "8735 91 St NW", City: "Edmonton", Province: "AB", Price: 399000, LotSizeSqft: 6050, Zoning: "RSL", URL: "https://example.com/listings/sample-005"},
	{ListingID: "SAMPLE-006", Address: "12845 66 St NW", City: "Edmonton", Province: "AB", Price: 529000, LotSizeSqft: 8400, Zoning: "R2", URL: "https://example.com/listings/sample-006"},
	{ListingID: "SAMPLE-007", Address: "4204 17 Ave SE", City: "Calgary", Province: "AB", Price: 759000, LotSizeSqft: 11300, Zoning: "C2", URL: "https://example.com/listings/sample-007"},
	{ListingID: "SAMPLE-008", Address: "2212 14 St SW", City: "Calgary", Province: "AB", Price: 948000, LotSizeSqft: 12600, Zoning: "R3", URL: "https://example.com/listings/sample-008"},
	{ListingID: "SAMPLE-009", Address: "505 Rural Route 2", City: "Leduc", Province: "AB", Price: 365000, LotSizeSqft: 21500, Zoning: "AG", URL: "https://example.com/listings/sample-009"},
	{ListingID: "SAMPLE-010", Address: "77 Test Alley", City: "Edmonton", Province: "AB", Price: 5000, LotSizeSqft: 4000, Zoning: "RF1", URL: "https://example.com/listings/sample-010"},
}

// Fetch returns the sample records matching the criteria
func (s *SampleSource) Fetch(ctx context.Context, criteria models.SearchCriteria) ([]models.RawListing, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	listings := make([]models.RawListing, 0, len(sampleListings))
	for _, record := range sampleListings {
		if matches(record, criteria) {
			listings = append(listings, record)
		}
	}

	s.logger.Info().
		Str("city", criteria.City).
		Int("count", len(listings)).
		Msg("Serving sample listings")

	return tagSource(listings, "sample"), nil
}
