package census

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/tracts/internal/models"
)

// Provider is an interface that defines a method for fetching tract-level statistics.
// Fetch returns every row matching the query. An empty slice with a nil error means
// the API had no data for the query.
type Provider interface {
	Fetch(ctx context.Context, query models.Query) ([]models.Row, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
