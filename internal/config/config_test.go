package config_test

import (
	"testing"
	"time"

	"github.com/ClementV78/TimeReach/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("TIMEREACH_ENV", "local")
	t.Setenv("TIMEREACH_PORT", "9090")
	t.Setenv("TIMEREACH_GEOCODER", "google")
	t.Setenv("TIMEREACH_GOOGLE_API_KEY", "testGoogleKey")
	t.Setenv("TIMEREACH_ORS_API_KEY", "testORSKey")
	t.Setenv("TIMEREACH_PROVIDER_TIMEOUT", "15s")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "google", cfg.GeocoderType)
	assert.Equal(t, "testGoogleKey", cfg.GoogleAPIKey)
	assert.Equal(t, "testORSKey", cfg.ORSAPIKey)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
}

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "nominatim", cfg.GeocoderType)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("TIMEREACH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for API server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("TIMEREACH_PROVIDER_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse provider timeout from configuration", func() {
		config.MustLoad()
	})
}
