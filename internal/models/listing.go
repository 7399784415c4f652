package models

// SearchCriteria describes what the acquisition layer should fetch
type SearchCriteria struct {
	City     string  `json:"city"`
	Province string  `json:"province"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

// RawListing is a listing record as delivered by an upstream source,
// before normalization. Either ID or ListingID identifies the record;
// sources disagree on the field name.
type RawListing struct {
	ID          string  `json:"id,omitempty"`
	ListingID   string  `json:"listing_id,omitempty"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Province    string  `json:"province"`
	Price       float64 `json:"price"`
	LotSizeSqft float64 `json:"lot_size_sqft"`
	Zoning      string  `json:"zoning,omitempty"`
	URL         string  `json:"url,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Key returns the record identifier, preferring listing_id over id
func (r *RawListing) Key() string {
	if r.ListingID != "" {
		return r.ListingID
	}
	return r.ID
}

// PropertyListing is a validated, normalized listing. Immutable for the
// duration of an analysis run.
type PropertyListing struct {
	ListingID   string  `json:"listing_id"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Province    string  `json:"province"`
	Price       float64 `json:"price"`
	LotSizeSqft float64 `json:"lot_size_sqft"`
	Zoning      string  `json:"zoning"`
	ListingURL  string  `json:"listing_url,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// LotSizeAcres converts the lot size to acres (43,560 sqft per acre)
func (p *PropertyListing) LotSizeAcres() float64 {
	return p.LotSizeSqft / 43560.0
}
