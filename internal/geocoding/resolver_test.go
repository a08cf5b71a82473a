package geocoding_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ClementV78/TimeReach/internal/geocoding"
	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/ClementV78/TimeReach/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testLogger() *slog.Logger { return slog.Default() }

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit coordinates win without a provider call", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		origin, err := resolver.Resolve(ctx, strPtr("Paris"), floatPtr(48.8566), floatPtr(2.3522))

		require.NoError(t, err)
		require.NotNil(t, origin)
		assert.InEpsilon(t, 48.8566, origin.Latitude, 0.0001)
		assert.InEpsilon(t, 2.3522, origin.Longitude, 0.0001)
		mockProvider.AssertNotCalled(t, "Geocode")
	})

	t.Run("explicit coordinates out of bounds", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		origin, err := resolver.Resolve(ctx, nil, floatPtr(91.0), floatPtr(2.3522))

		require.Error(t, err)
		require.Nil(t, origin)
		assert.ErrorIs(t, err, models.ErrValidation)
		mockProvider.AssertNotCalled(t, "Geocode")
	})

	t.Run("location is geocoded when no coordinate pair", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())
		coords := &models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

		mockProvider.On("Geocode", ctx, "Paris").Return(coords, nil).Once()

		origin, err := resolver.Resolve(ctx, strPtr("Paris"), nil, nil)

		require.NoError(t, err)
		require.NotNil(t, origin)
		assert.InEpsilon(t, 48.8566, origin.Latitude, 0.0001)
		mockProvider.AssertExpectations(t)
	})

	t.Run("half a coordinate pair falls back to the location", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())
		coords := &models.Coordinates{Latitude: 45.7640, Longitude: 4.8357}

		mockProvider.On("Geocode", ctx, "Lyon").Return(coords, nil).Once()

		origin, err := resolver.Resolve(ctx, strPtr("Lyon"), floatPtr(45.0), nil)

		require.NoError(t, err)
		require.NotNil(t, origin)
		assert.InEpsilon(t, 4.8357, origin.Longitude, 0.0001)
		mockProvider.AssertExpectations(t)
	})

	t.Run("neither location nor coordinates", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		origin, err := resolver.Resolve(ctx, nil, nil, nil)

		require.Error(t, err)
		require.Nil(t, origin)
		assert.ErrorIs(t, err, models.ErrValidation)
		mockProvider.AssertNotCalled(t, "Geocode")
	})

	t.Run("empty location string", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		origin, err := resolver.Resolve(ctx, strPtr(""), nil, nil)

		require.Error(t, err)
		require.Nil(t, origin)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("no candidates maps to not found", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		mockProvider.On("Geocode", ctx, "Atlantis").Return(nil, geocoding.ErrNoCandidates).Once()

		origin, err := resolver.Resolve(ctx, strPtr("Atlantis"), nil, nil)

		require.Error(t, err)
		require.Nil(t, origin)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Contains(t, err.Error(), "Atlantis")
		mockProvider.AssertExpectations(t)
	})

	t.Run("provider failure maps to upstream error", func(t *testing.T) {
		mockProvider := mocks.NewGeocodingProvider(t)
		resolver := geocoding.NewResolver(mockProvider, testLogger())

		mockProvider.On("Geocode", ctx, "Paris").Return(nil, assert.AnError).Once()

		origin, err := resolver.Resolve(ctx, strPtr("Paris"), nil, nil)

		require.Error(t, err)
		require.Nil(t, origin)
		assert.ErrorIs(t, err, models.ErrUpstream)
		assert.ErrorIs(t, err, assert.AnError)
		mockProvider.AssertExpectations(t)
	})
}
