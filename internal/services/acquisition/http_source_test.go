package acquisition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/models"
)

func newHTTPSource(endpoint string) *HTTPSource {
	return NewHTTPSource(&common.AcquisitionConfig{
		Source:         "http",
		Endpoint:       endpoint,
		APIKey:         "test-token",
		RateLimit:      time.Millisecond,
		RequestTimeout: 5 * time.Second,
	}, common.GetLogger())
}

func TestHTTPSource_FetchEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "Edmonton", r.URL.Query().Get("city"))
		assert.Equal(t, "200000", r.URL.Query().Get("min_price"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"listings":[{"id":"H-1","address":"1 Main St","city":"Edmonton","province":"AB","price":480000,"lot_size_sqft":7100,"zoning":"RF1"}],"total":1}`))
	}))
	defer server.Close()

	source := newHTTPSource(server.URL)

	listings, err := source.Fetch(context.Background(), models.SearchCriteria{City: "Edmonton", MinPrice: 200000})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	assert.Equal(t, "H-1", listings[0].Key())
	assert.Equal(t, 480000.0, listings[0].Price)
	assert.Equal(t, "http", listings[0].Source)
}

func TestHTTPSource_FetchBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"listing_id":"B-1","address":"2 Side St","city":"Calgary","province":"AB","price":610000,"lot_size_sqft":9000}]`))
	}))
	defer server.Close()

	source := newHTTPSource(server.URL)

	listings, err := source.Fetch(context.Background(), models.SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "B-1", listings[0].ListingID)
}

func TestHTTPSource_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"listings":[],"total":0}`))
	}))
	defer server.Close()

	source := newHTTPSource(server.URL)

	listings, err := source.Fetch(context.Background(), models.SearchCriteria{})
	require.NoError(t, err)
	assert.Empty(t, listings, "empty upstream is a valid result, not an error")
}

func TestHTTPSource_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	source := newHTTPSource(server.URL)

	_, err := source.Fetch(context.Background(), models.SearchCriteria{})
	assert.Error(t, err)
}
