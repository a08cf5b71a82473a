package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the TimeReach service.
// It includes the environment, server port, geocoder selection, upstream
// API keys and the timeout applied to outbound provider calls.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API server.
// - GeocoderType: The geocoding provider to use (google, nominatim).
// - GoogleAPIKey: The API key for Google services (places search, google geocoder).
// - ORSAPIKey: The API key for the OpenRouteService isochrones API.
// - ProviderTimeout: The upper bound for a single outbound provider call.
type Config struct {
	Env             string        // Env is the current environment: local, development, production.
	Port            int           // Port is the API server port.
	GeocoderType    string        // GeocoderType specifies which geocoding provider to use.
	GoogleAPIKey    string        // The API key for Google Places and the google geocoder.
	ORSAPIKey       string        // The API key for OpenRouteService isochrones.
	ProviderTimeout time.Duration // The timeout applied to each outbound provider call.
}

// MustLoad loads the configuration from TIMEREACH_* environment variables,
// reading a .env file first when one is present, and returns a Config
// struct. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetEnvPrefix("TIMEREACH")
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("port", 8080)
	vpr.SetDefault("geocoder", "nominatim") // Default to the keyless provider
	vpr.SetDefault("provider_timeout", "10s")

	port := vpr.GetInt("port")
	if port <= 0 {
		panic("failed to parse port for API server from configuration")
	}

	timeout := vpr.GetDuration("provider_timeout")
	if timeout <= 0 {
		panic("failed to parse provider timeout from configuration")
	}

	return &Config{
		Env:             vpr.GetString("env"),
		Port:            port,
		GeocoderType:    vpr.GetString("geocoder"),
		GoogleAPIKey:    vpr.GetString("google_api_key"),
		ORSAPIKey:       vpr.GetString("ors_api_key"),
		ProviderTimeout: timeout,
	}
}
