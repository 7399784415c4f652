package acquisition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
	"golang.org/x/time/rate"
)

// HTTPSource fetches raw listing records from a JSON listings API. It
// is a plain REST client: no page fetching, no DOM parsing.
type HTTPSource struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     arbor.ILogger
}

// Compile-time assertion
var _ interfaces.PropertySource = (*HTTPSource)(nil)

// listingsResponse is the listings API response envelope
type listingsResponse struct {
	Listings []models.RawListing `json:"listings"`
	Total    int                 `json:"total"`
}

// NewHTTPSource creates a rate-limited listings API source
func NewHTTPSource(config *common.AcquisitionConfig, logger arbor.ILogger) *HTTPSource {
	interval := config.RateLimit
	if interval <= 0 {
		interval = time.Second
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPSource{
		endpoint: config.Endpoint,
		apiKey:   config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

// Name identifies the source in logs and result metadata
func (s *HTTPSource) Name() string {
	return "http"
}

// Fetch retrieves listings matching the criteria from the API
func (s *HTTPSource) Fetch(ctx context.Context, criteria models.SearchCriteria) ([]models.RawListing, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("http source requires an acquisition endpoint")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	params := url.Values{}
	if criteria.City != "" {
		params.Set("city", criteria.City)
	}
	if criteria.Province != "" {
		params.Set("province", criteria.Province)
	}
	if criteria.MinPrice > 0 {
		params.Set("min_price", strconv.FormatFloat(criteria.MinPrice, 'f', 0, 64))
	}
	if criteria.MaxPrice > 0 {
		params.Set("max_price", strconv.FormatFloat(criteria.MaxPrice, 'f', 0, 64))
	}

	reqURL := s.endpoint
	if encoded := params.Encode(); encoded != "" {
		reqURL = fmt.Sprintf("%s?%s", s.endpoint, encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create listings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	s.logger.Debug().Str("url", s.endpoint).Str("city", criteria.City).Msg("Fetching listings from API")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listings request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listings API returned status %d", resp.StatusCode)
	}

	// The API either wraps records in an envelope or returns a bare array
	var envelope listingsResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Listings == nil {
		var bare []models.RawListing
		if bareErr := json.Unmarshal(body, &bare); bareErr != nil {
			return nil, fmt.Errorf("failed to decode listings response: %w", bareErr)
		}
		envelope.Listings = bare
	}

	s.logger.Info().Int("count", len(envelope.Listings)).Msg("Fetched listings from API")

	return tagSource(envelope.Listings, "http"), nil
}

// tagSource stamps the source name on records that arrived without one
func tagSource(listings []models.RawListing, source string) []models.RawListing {
	for i := range listings {
		if listings[i].Source == "" {
			listings[i].Source = source
		}
	}
	return listings
}
