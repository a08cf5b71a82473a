package isochrone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Estimator reduces a reachable-area polygon to a single representative
// radius: the arithmetic mean of the geodesic distance from the origin to
// every boundary vertex. The repeated closing vertex of a GeoJSON ring
// counts like any other, so the mean is a rough proxy for reachable
// distance rather than an area-equivalent radius.
type Estimator struct {
	provider Provider     // Isochrone provider for reachable-area polygons
	log      *slog.Logger // Logger for logging operations
}

// NewEstimator returns an Estimator backed by the given provider.
func NewEstimator(provider Provider, log *slog.Logger) *Estimator {
	return &Estimator{provider: provider, log: log}
}

// Estimate fetches the isochrone for the origin and budget and returns the
// mean boundary distance in whole meters together with the polygon it was
// derived from. All failures map to models.ErrUpstream.
func (es *Estimator) Estimate(
	ctx context.Context,
	origin models.Coordinates,
	budget models.TravelBudget,
) (int, models.Polygon, error) {
	polygon, err := es.provider.Reachable(ctx, origin, budget)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: isochrone request failed: %w", models.ErrUpstream, err)
	}

	if len(polygon) == 0 {
		return 0, nil, fmt.Errorf("%w: isochrone polygon has no vertices", models.ErrUpstream)
	}

	radius := MeanRadius(origin, polygon)
	es.log.DebugContext(ctx, "Estimated reachable radius", "meters", radius, "vertices", len(polygon))

	return radius, polygon, nil
}

// MeanRadius returns the arithmetic mean, truncated to whole meters, of the
// geodesic distance from origin to every polygon vertex. Vertices are
// weighted equally, including a repeated closing vertex when present.
// The polygon must have at least one vertex.
func MeanRadius(origin models.Coordinates, polygon models.Polygon) int {
	var sum float64
	for _, vertex := range polygon {
		sum += origin.DistanceMeters(vertex)
	}

	return int(sum / float64(len(polygon)))
}
