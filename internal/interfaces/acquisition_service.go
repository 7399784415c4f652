package interfaces

import (
	"context"

	"github.com/ternarybob/praedium/internal/models"
)

// PropertySource is the upstream acquisition collaborator. It returns a
// finite, already-materialized batch of raw listing records for the
// given criteria. An empty slice is a valid result ("no properties
// found"), not an error.
type PropertySource interface {
	// Name identifies the source in logs and result metadata
	Name() string

	// Fetch retrieves raw listing records matching the criteria
	Fetch(ctx context.Context, criteria models.SearchCriteria) ([]models.RawListing, error)
}
