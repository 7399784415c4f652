package acquisition

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
)

// CSVSource reads raw listing records from a listings CSV export.
// Header names are matched case-insensitively; both "id" and
// "listing_id" are accepted.
type CSVSource struct {
	path   string
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.PropertySource = (*CSVSource)(nil)

// NewCSVSource creates a CSV file source
func NewCSVSource(path string, logger arbor.ILogger) *CSVSource {
	return &CSVSource{path: path, logger: logger}
}

// Name identifies the source in logs and result metadata
func (s *CSVSource) Name() string {
	return "csv"
}

// Fetch reads the whole CSV file and returns records matching the
// criteria. Rows that fail to parse are skipped, not fatal.
func (s *CSVSource) Fetch(ctx context.Context, criteria models.SearchCriteria) ([]models.RawListing, error) {
	if s.path == "" {
		return nil, fmt.Errorf("csv source requires a csv_path")
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings CSV %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var listings []models.RawListing
	line := 1

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// Malformed row, keep going
			s.logger.Warn().Int("line", line).Err(err).Msg("Skipping unreadable CSV row")
			continue
		}

		record := models.RawListing{
			ListingID:   field(row, columns, "listing_id", "id"),
			Address:     field(row, columns, "address"),
			City:        field(row, columns, "city"),
			Province:    field(row, columns, "province"),
			Zoning:      field(row, columns, "zoning"),
			URL:         field(row, columns, "url", "listing_url"),
			Source:      field(row, columns, "source"),
			Price:       numField(row, columns, "price"),
			LotSizeSqft: numField(row, columns, "lot_size_sqft", "lot_size"),
		}

		if !matches(record, criteria) {
			continue
		}

		listings = append(listings, record)
	}

	s.logger.Info().Str("path", s.path).Int("count", len(listings)).Msg("Loaded listings from CSV")

	return tagSource(listings, "csv"), nil
}

// field returns the first non-empty value among the named columns
func field(row []string, columns map[string]int, names ...string) string {
	for _, name := range names {
		if idx, ok := columns[name]; ok && idx < len(row) {
			if v := strings.TrimSpace(row[idx]); v != "" {
				return v
			}
		}
	}
	return ""
}

// numField parses the first named column as a float, tolerating commas
// and a leading dollar sign
func numField(row []string, columns map[string]int, names ...string) float64 {
	raw := field(row, columns, names...)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// matches applies the search criteria filters a live API would apply
// server-side
func matches(record models.RawListing, criteria models.SearchCriteria) bool {
	if criteria.City != "" && !strings.EqualFold(record.City, criteria.City) {
		return false
	}
	if criteria.Province != "" && !strings.EqualFold(record.Province, criteria.Province) {
		return false
	}
	if criteria.MinPrice > 0 && record.Price < criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice > 0 && record.Price > criteria.MaxPrice {
		return false
	}
	return true
}
