package normalizer

import (
	"errors"
	"testing"

	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/models"
)

func validRecord() models.RawListing {
	return models.RawListing{
		ListingID:   "E4401234",
		Address:     "10312 82 Ave NW",
		City:        "Edmonton",
		Province:    "AB",
		Price:       485000,
		LotSizeSqft: 7200,
		Zoning:      "rf1",
		URL:         "https://example.com/E4401234",
		Source:      "mls",
	}
}

func TestNormalize_ValidRecord(t *testing.T) {
	service := NewService(0, common.GetLogger())

	listing, err := service.Normalize(validRecord())
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if listing == nil {
		t.Fatal("Normalize() returned nil listing for valid record")
	}

	if listing.ListingID != "E4401234" {
		t.Errorf("listing id = %q", listing.ListingID)
	}
	if listing.Zoning != "RF1" {
		t.Errorf("zoning = %q, want upper-cased RF1", listing.Zoning)
	}
	if listing.Price != 485000 || listing.LotSizeSqft != 7200 {
		t.Errorf("price/lot = %v/%v", listing.Price, listing.LotSizeSqft)
	}
}

func TestNormalize_IDFallback(t *testing.T) {
	service := NewService(0, common.GetLogger())

	record := validRecord()
	record.ListingID = ""
	record.ID = "alt-7"

	listing, err := service.Normalize(record)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if listing.ListingID != "alt-7" {
		t.Errorf("listing id = %q, want id field fallback alt-7", listing.ListingID)
	}
}

func TestNormalize_MissingZoningDefaults(t *testing.T) {
	service := NewService(0, common.GetLogger())

	record := validRecord()
	record.Zoning = "  "

	listing, err := service.Normalize(record)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if listing.Zoning != "Unknown" {
		t.Errorf("zoning = %q, want Unknown", listing.Zoning)
	}
}

func TestNormalize_RequiredFields(t *testing.T) {
	service := NewService(0, common.GetLogger())

	tests := []struct {
		name   string
		mutate func(*models.RawListing)
	}{
		{"missing id", func(r *models.RawListing) { r.ListingID = ""; r.ID = "" }},
		{"missing address", func(r *models.RawListing) { r.Address = "" }},
		{"missing city", func(r *models.RawListing) { r.City = "" }},
		{"missing province", func(r *models.RawListing) { r.Province = "" }},
		{"zero price", func(r *models.RawListing) { r.Price = 0 }},
		{"negative price", func(r *models.RawListing) { r.Price = -1 }},
		{"zero lot size", func(r *models.RawListing) { r.LotSizeSqft = 0 }},
		{"negative lot size", func(r *models.RawListing) { r.LotSizeSqft = -50 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			listing, err := service.Normalize(record)
			if listing != nil {
				t.Error("Normalize() returned a listing for an invalid record")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Normalize() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestNormalize_PriceFloorSilentDrop(t *testing.T) {
	service := NewService(10000, common.GetLogger())

	record := validRecord()
	record.Price = 9999

	listing, err := service.Normalize(record)
	if err != nil {
		t.Errorf("Normalize() error = %v, price-floor drops must not error", err)
	}
	if listing != nil {
		t.Error("Normalize() returned a listing priced below the floor")
	}
}

func TestNormalizeBatch_SkipAndContinue(t *testing.T) {
	service := NewService(10000, common.GetLogger())

	bad := validRecord()
	bad.Address = ""

	cheap := validRecord()
	cheap.ListingID = "CHEAP-1"
	cheap.Price = 5000

	good := validRecord()
	good.ListingID = "GOOD-1"

	listings := service.NormalizeBatch([]models.RawListing{bad, cheap, good})

	if len(listings) != 1 {
		t.Fatalf("NormalizeBatch() kept %d records, want 1", len(listings))
	}
	if listings[0].ListingID != "GOOD-1" {
		t.Errorf("kept record = %q, want GOOD-1", listings[0].ListingID)
	}
}
