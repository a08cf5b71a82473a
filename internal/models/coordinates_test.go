package models_test

import (
	"encoding/json"
	"testing"

	"github.com/ClementV78/TimeReach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords models.Coordinates
		want   bool
	}{
		{"origin", models.Coordinates{Latitude: 0, Longitude: 0}, true},
		{"paris", models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, true},
		{"latitude poles", models.Coordinates{Latitude: 90, Longitude: 0}, true},
		{"longitude antimeridian", models.Coordinates{Latitude: 0, Longitude: -180}, true},
		{"latitude too high", models.Coordinates{Latitude: 90.01, Longitude: 0}, false},
		{"latitude too low", models.Coordinates{Latitude: -90.01, Longitude: 0}, false},
		{"longitude too high", models.Coordinates{Latitude: 0, Longitude: 180.01}, false},
		{"longitude too low", models.Coordinates{Latitude: 0, Longitude: -180.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coords.Valid())
		})
	}
}

func TestCoordinates_DistanceMeters(t *testing.T) {
	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		a := models.Coordinates{Latitude: 0, Longitude: 0}
		b := models.Coordinates{Latitude: 0, Longitude: 1}

		// 6371000 * pi / 180
		assert.InEpsilon(t, 111194.93, a.DistanceMeters(b), 0.0001)
	})

	t.Run("one degree of latitude along a meridian", func(t *testing.T) {
		a := models.Coordinates{Latitude: 0, Longitude: 10}
		b := models.Coordinates{Latitude: 1, Longitude: 10}

		assert.InEpsilon(t, 111194.93, a.DistanceMeters(b), 0.0001)
	})

	t.Run("known city pair", func(t *testing.T) {
		paris := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
		london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

		// Roughly 344 km great-circle distance.
		assert.InEpsilon(t, 344000, paris.DistanceMeters(london), 0.01)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
		b := models.Coordinates{Latitude: 45.7640, Longitude: 4.8357}

		assert.InEpsilon(t, a.DistanceMeters(b), b.DistanceMeters(a), 1e-9)
	})

	t.Run("zero distance to itself", func(t *testing.T) {
		a := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

		assert.InDelta(t, 0, a.DistanceMeters(a), 1e-6)
	})
}

func TestCoordinates_JSON(t *testing.T) {
	coords := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	payload, err := json.Marshal(coords)

	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":48.8566,"lng":2.3522}`, string(payload))
}
