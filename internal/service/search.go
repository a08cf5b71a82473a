package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ClementV78/TimeReach/internal/metrics"
	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/ClementV78/TimeReach/internal/places"
)

// Stage labels for pipeline metrics.
const (
	stageGeocode   = "geocode"
	stageIsochrone = "isochrone"
	stagePlaces    = "places"
)

// CoordinateResolver turns caller input into a single origin point.
type CoordinateResolver interface {
	Resolve(ctx context.Context, location *string, lat, lon *float64) (*models.Coordinates, error)
}

// ReachabilityEstimator reduces an isochrone to a representative radius.
type ReachabilityEstimator interface {
	Estimate(ctx context.Context, origin models.Coordinates, budget models.TravelBudget) (int, models.Polygon, error)
}

// PlaceSearcher finds venues around a center point.
type PlaceSearcher interface {
	SearchNearby(ctx context.Context, query models.PlaceQuery) ([]models.Place, error)
}

// SearchService runs the search pipeline: resolve the origin, estimate the
// reachable radius for the travel budget, query the places provider inside
// that radius, and shape the response. The legs run strictly in sequence
// because each consumes the previous leg's output; no leg recovers from an
// earlier failure.
type SearchService struct {
	log       *slog.Logger          // Logger for logging service activities
	resolver  CoordinateResolver    // Resolves a location or coordinate pair to an origin
	estimator ReachabilityEstimator // Estimates the reachable radius around the origin
	searcher  PlaceSearcher         // Queries the places provider
	metrics   *metrics.Metrics      // Metrics for tracking pipeline performance
}

// NewSearchService creates a new instance of SearchService from its three
// pipeline stages and a metrics sink. It returns a pointer to the newly
// created SearchService.
func NewSearchService(
	log *slog.Logger,
	resolver CoordinateResolver,
	estimator ReachabilityEstimator,
	searcher PlaceSearcher,
	metrics *metrics.Metrics,
) *SearchService {
	return &SearchService{
		log:       log,
		resolver:  resolver,
		estimator: estimator,
		searcher:  searcher,
		metrics:   metrics,
	}
}

// FindPlaces runs one search request through the pipeline. Failures wrap
// models.ErrValidation, models.ErrNotFound or models.ErrUpstream and reach
// the caller unchanged; a mid-pipeline failure discards any already
// computed origin and radius.
func (ss *SearchService) FindPlaces(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	ss.metrics.ActiveSearches.Inc()
	defer ss.metrics.ActiveSearches.Dec()

	resp, err := ss.findPlaces(ctx, req)
	if err != nil {
		ss.metrics.SearchesProcessed.WithLabelValues("failure").Inc()
		return nil, err
	}

	ss.metrics.SearchesProcessed.WithLabelValues("success").Inc()

	return resp, nil
}

func (ss *SearchService) findPlaces(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	// Reject invalid budgets and filters before spending any provider call.
	if err := req.Budget().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
	}

	if err := places.ValidateFilters(req.Type, req.Keyword); err != nil {
		return nil, err
	}

	startTime := time.Now()
	origin, err := ss.resolver.Resolve(ctx, req.Location, req.Latitude, req.Longitude)
	ss.metrics.StageSeconds.WithLabelValues(stageGeocode).Observe(time.Since(startTime).Seconds())

	if err != nil {
		if errors.Is(err, models.ErrUpstream) {
			ss.metrics.ProviderErrors.WithLabelValues(stageGeocode).Inc()
		}

		return nil, err
	}

	ss.log.DebugContext(ctx, "Origin resolved", "lat", origin.Latitude, "lon", origin.Longitude)

	startTime = time.Now()
	radius, polygon, err := ss.estimator.Estimate(ctx, *origin, req.Budget())
	ss.metrics.StageSeconds.WithLabelValues(stageIsochrone).Observe(time.Since(startTime).Seconds())

	if err != nil {
		ss.metrics.ProviderErrors.WithLabelValues(stageIsochrone).Inc()
		return nil, err
	}

	ss.log.DebugContext(ctx, "Reachable radius estimated", "meters", radius, "vertices", len(polygon))

	query, err := places.BuildQuery(*origin, radius, req.Type, req.Keyword)
	if err != nil {
		return nil, err
	}

	startTime = time.Now()
	found, err := ss.searcher.SearchNearby(ctx, query)
	ss.metrics.StageSeconds.WithLabelValues(stagePlaces).Observe(time.Since(startTime).Seconds())

	if err != nil {
		ss.metrics.ProviderErrors.WithLabelValues(stagePlaces).Inc()
		return nil, fmt.Errorf("%w: places search failed: %w", models.ErrUpstream, err)
	}

	found = places.FilterByKeyword(found, req.Keyword)
	found = places.Truncate(found, query.Limit)

	if found == nil {
		found = []models.Place{}
	}

	ss.log.InfoContext(ctx, "Search completed", "radius", radius, "places", len(found))

	return &models.SearchResponse{AverageRadius: radius, Places: found}, nil
}
