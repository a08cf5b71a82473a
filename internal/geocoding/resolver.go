package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Resolver turns caller input, a free-text location or an explicit
// coordinate pair, into a single origin point. An explicit pair always
// wins over a name lookup; resolving by name costs exactly one provider
// call with no retries.
type Resolver struct {
	provider Provider     // Geocoding provider for name lookups
	log      *slog.Logger // Logger for logging operations
}

// NewResolver returns a Resolver backed by the given provider.
func NewResolver(provider Provider, log *slog.Logger) *Resolver {
	return &Resolver{provider: provider, log: log}
}

// Resolve returns the origin for a search. When both lat and lon are set
// they are used directly without any network call; otherwise the location
// string is geocoded and the first candidate is used.
//
// Failure kinds:
//   - models.ErrValidation when neither a location nor a full coordinate
//     pair is supplied, or the pair is out of bounds;
//   - models.ErrNotFound when the geocoder has no candidate;
//   - models.ErrUpstream when the geocoder fails or is unreachable.
func (rs *Resolver) Resolve(ctx context.Context, location *string, lat, lon *float64) (*models.Coordinates, error) {
	if lat != nil && lon != nil {
		origin := models.Coordinates{Latitude: *lat, Longitude: *lon}
		if !origin.Valid() {
			return nil, fmt.Errorf("%w: coordinates out of bounds", models.ErrValidation)
		}

		rs.log.DebugContext(ctx, "Using explicit coordinates", "lat", origin.Latitude, "lon", origin.Longitude)

		return &origin, nil
	}

	if location == nil || *location == "" {
		return nil, fmt.Errorf("%w: either location or both lat and lon are required", models.ErrValidation)
	}

	origin, err := rs.provider.Geocode(ctx, *location)
	if err != nil {
		if errors.Is(err, ErrNoCandidates) {
			return nil, fmt.Errorf("%w: no results for location %q", models.ErrNotFound, *location)
		}

		return nil, fmt.Errorf("%w: failed to geocode location: %w", models.ErrUpstream, err)
	}

	rs.log.DebugContext(ctx, "Resolved location", "location", *location, "lat", origin.Latitude, "lon", origin.Longitude)

	return origin, nil
}
