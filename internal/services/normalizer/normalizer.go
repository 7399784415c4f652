package normalizer

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/models"
)

// DefaultMinListingPrice is the price floor below which a record is
// treated as a data-entry error and silently dropped
const DefaultMinListingPrice = 10_000

// ValidationError reports a raw record that failed normalization
type ValidationError struct {
	ListingID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid listing record %q: field %s %s", e.ListingID, e.Field, e.Reason)
}

// Service normalizes raw listing records into PropertyListings
type Service struct {
	minPrice float64
	validate *validator.Validate
	logger   arbor.ILogger
}

// rawRecord mirrors models.RawListing with the validation rules the
// normalizer enforces on required fields
type rawRecord struct {
	Key         string  `validate:"required"`
	Address     string  `validate:"required"`
	City        string  `validate:"required"`
	Province    string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	LotSizeSqft float64 `validate:"required,gt=0"`
}

// NewService creates a normalizer with the given price floor. A
// non-positive floor falls back to the default.
func NewService(minPrice float64, logger arbor.ILogger) *Service {
	if minPrice <= 0 {
		minPrice = DefaultMinListingPrice
	}
	return &Service{
		minPrice: minPrice,
		validate: validator.New(),
		logger:   logger,
	}
}

// Normalize validates and coerces a raw record into a PropertyListing.
//
// Returns (nil, nil) for records priced below the floor: those are
// data-entry errors, excluded without being reported as failures.
// Returns a *ValidationError when a required field is missing or
// nonsensical.
func (s *Service) Normalize(raw models.RawListing) (*models.PropertyListing, error) {
	record := rawRecord{
		Key:         strings.TrimSpace(raw.Key()),
		Address:     strings.TrimSpace(raw.Address),
		City:        strings.TrimSpace(raw.City),
		Province:    strings.TrimSpace(raw.Province),
		Price:       raw.Price,
		LotSizeSqft: raw.LotSizeSqft,
	}

	if err := s.validate.Struct(record); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return nil, &ValidationError{ListingID: record.Key, Field: "record", Reason: err.Error()}
		}
		// Report the first failing field; one reason is enough to skip
		field := verrs[0].Field()
		reason := "is required"
		if verrs[0].Tag() == "gt" {
			reason = "must be greater than 0"
		}
		return nil, &ValidationError{ListingID: record.Key, Field: field, Reason: reason}
	}

	if record.Price < s.minPrice {
		s.logger.Debug().
			Str("listing_id", record.Key).
			Float64("price", record.Price).
			Float64("floor", s.minPrice).
			Msg("Dropping listing below price floor")
		return nil, nil
	}

	zoning := strings.ToUpper(strings.TrimSpace(raw.Zoning))
	if zoning == "" {
		zoning = "Unknown"
	}

	return &models.PropertyListing{
		ListingID:   record.Key,
		Address:     record.Address,
		City:        record.City,
		Province:    record.Province,
		Price:       record.Price,
		LotSizeSqft: record.LotSizeSqft,
		Zoning:      zoning,
		ListingURL:  strings.TrimSpace(raw.URL),
		Source:      strings.TrimSpace(raw.Source),
	}, nil
}

// NormalizeBatch normalizes a batch of raw records, skipping invalid
// and below-floor records. A single malformed record never aborts the
// batch.
func (s *Service) NormalizeBatch(raw []models.RawListing) []models.PropertyListing {
	listings := make([]models.PropertyListing, 0, len(raw))
	skipped := 0

	for _, r := range raw {
		listing, err := s.Normalize(r)
		if err != nil {
			skipped++
			s.logger.Warn().
				Str("listing_id", r.Key()).
				Err(err).
				Msg("Skipping malformed listing record")
			continue
		}
		if listing == nil {
			// Below the price floor; already logged at debug
			continue
		}
		listings = append(listings, *listing)
	}

	s.logger.Info().
		Int("received", len(raw)).
		Int("normalized", len(listings)).
		Int("skipped", skipped).
		Msg("Normalized listing batch")

	return listings
}
