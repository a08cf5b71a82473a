package isochrone_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ClementV78/TimeReach/internal/isochrone"
	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/ClementV78/TimeReach/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metersPerLonDegree is the ground length of one degree of longitude on the
// equator for the sphere radius used by DistanceMeters. Placing vertices on
// the equator makes their distance from (0, 0) exact and easy to choose.
const metersPerLonDegree = 111194.92664455873

func equatorVertex(meters float64) models.Coordinates {
	return models.Coordinates{Latitude: 0, Longitude: meters / metersPerLonDegree}
}

func TestMeanRadius(t *testing.T) {
	origin := models.Coordinates{Latitude: 0, Longitude: 0}

	t.Run("mean of vertex distances", func(t *testing.T) {
		polygon := models.Polygon{
			equatorVertex(1000),
			equatorVertex(2000),
			equatorVertex(3000),
		}

		assert.InDelta(t, 2000, isochrone.MeanRadius(origin, polygon), 1)
	})

	t.Run("repeated closing vertex weighs in", func(t *testing.T) {
		open := models.Polygon{
			equatorVertex(1000),
			equatorVertex(2000),
			equatorVertex(3000),
		}
		closed := append(models.Polygon{}, open...)
		closed = append(closed, open[0])

		// (1000+2000+3000)/3 = 2000 but (1000+2000+3000+1000)/4 = 1750.
		assert.InDelta(t, 2000, isochrone.MeanRadius(origin, open), 1)
		assert.InDelta(t, 1750, isochrone.MeanRadius(origin, closed), 1)
	})

	t.Run("vertex order does not matter", func(t *testing.T) {
		polygon := models.Polygon{
			equatorVertex(1500),
			equatorVertex(2500),
			equatorVertex(4200),
			equatorVertex(1500),
		}
		reversed := make(models.Polygon, 0, len(polygon))
		for i := len(polygon) - 1; i >= 0; i-- {
			reversed = append(reversed, polygon[i])
		}

		assert.Equal(t, isochrone.MeanRadius(origin, polygon), isochrone.MeanRadius(origin, reversed))
	})

	t.Run("single vertex", func(t *testing.T) {
		polygon := models.Polygon{equatorVertex(4000)}

		assert.InDelta(t, 4000, isochrone.MeanRadius(origin, polygon), 1)
	})
}

func TestEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	origin := models.Coordinates{Latitude: 0, Longitude: 0}
	budget := models.TravelBudget{Minutes: 20, Mode: models.ModeCar}

	t.Run("successful estimate", func(t *testing.T) {
		mockProvider := mocks.NewIsochroneProvider(t)
		estimator := isochrone.NewEstimator(mockProvider, logger)
		polygon := models.Polygon{
			equatorVertex(5000),
			equatorVertex(7000),
			equatorVertex(9000),
			equatorVertex(5000),
		}

		mockProvider.On("Reachable", ctx, origin, budget).Return(polygon, nil).Once()

		radius, got, err := estimator.Estimate(ctx, origin, budget)

		require.NoError(t, err)
		assert.InDelta(t, 6500, radius, 1)
		assert.Equal(t, polygon, got)
		mockProvider.AssertExpectations(t)
	})

	t.Run("provider failure maps to upstream error", func(t *testing.T) {
		mockProvider := mocks.NewIsochroneProvider(t)
		estimator := isochrone.NewEstimator(mockProvider, logger)

		mockProvider.On("Reachable", ctx, origin, budget).Return(nil, assert.AnError).Once()

		radius, polygon, err := estimator.Estimate(ctx, origin, budget)

		require.Error(t, err)
		assert.Zero(t, radius)
		assert.Nil(t, polygon)
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.ErrorIs(t, err, assert.AnError)
		mockProvider.AssertExpectations(t)
	})

	t.Run("empty polygon maps to upstream error", func(t *testing.T) {
		mockProvider := mocks.NewIsochroneProvider(t)
		estimator := isochrone.NewEstimator(mockProvider, logger)

		mockProvider.On("Reachable", ctx, origin, budget).Return(models.Polygon{}, nil).Once()

		radius, polygon, err := estimator.Estimate(ctx, origin, budget)

		require.Error(t, err)
		assert.Zero(t, radius)
		assert.Nil(t, polygon)
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.Contains(t, err.Error(), "no vertices")
		mockProvider.AssertExpectations(t)
	})
}
