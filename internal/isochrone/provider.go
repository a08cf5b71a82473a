package isochrone

import (
	"context"
	"errors"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Provider is an interface that defines a method for computing the area
// reachable from an origin within a travel budget. Implementations return
// the outer boundary of the area as a polygon, in provider vertex order.
type Provider interface {
	Reachable(ctx context.Context, origin models.Coordinates, budget models.TravelBudget) (models.Polygon, error)
}

// Common errors for isochrone providers.
var (
	// ErrEmptyResponse is returned when the API answers with no features.
	ErrEmptyResponse = errors.New("isochrone API returned no features")
	// ErrMalformedGeometry is returned when the first feature carries no
	// usable polygon geometry.
	ErrMalformedGeometry = errors.New("isochrone API returned malformed geometry")
)
