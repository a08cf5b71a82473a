package isochrone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ClementV78/TimeReach/internal/models"
)

// ORSBaseURL is the OpenRouteService isochrones API base URL. The travel
// profile is appended as the final path segment.
const ORSBaseURL = "https://api.openrouteservice.org/v2/isochrones"

// ORSProvider implements the Provider interface using the OpenRouteService
// isochrones API. One request yields a GeoJSON feature collection whose
// first feature carries the reachable-area polygon.
type ORSProvider struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL for the isochrones API
	apiKey  string       // API key with isochrones access
	log     *slog.Logger // Logger for logging operations
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// orsRequest is the JSON body of one isochrone request.
type orsRequest struct {
	Locations [][]float64 `json:"locations"` // [[lon, lat]]
	Range     []int       `json:"range"`     // travel time in seconds
}

// orsResponse is the GeoJSON feature collection returned by the API,
// reduced to the fields the estimator consumes.
type orsResponse struct {
	Features []struct {
		Geometry struct {
			Type        string        `json:"type"`
			Coordinates [][][]float64 `json:"coordinates"` // rings of [lon, lat] vertices
		} `json:"geometry"`
	} `json:"features"`
}

// NewORSProvider creates an OpenRouteService isochrone provider with the
// given API key and request timeout.
func NewORSProvider(apiKey string, timeout time.Duration, log *slog.Logger) *ORSProvider {
	return NewORSProviderWithClient(&http.Client{Timeout: timeout}, apiKey, log)
}

// NewORSProviderWithClient creates an OpenRouteService provider with a
// custom HTTP client. Useful for testing with mocked HTTP clients.
func NewORSProviderWithClient(client HTTPClient, apiKey string, log *slog.Logger) *ORSProvider {
	return &ORSProvider{
		client:  client,
		baseURL: ORSBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// Reachable requests the isochrone for the origin and budget and returns
// the outer boundary of the first feature's polygon, in the vertex order
// the API produced. GeoJSON closes rings by repeating the first vertex at
// the end; that duplicate is kept.
func (op *ORSProvider) Reachable(
	ctx context.Context,
	origin models.Coordinates,
	budget models.TravelBudget,
) (models.Polygon, error) {
	profile := budget.Mode.Profile()
	op.log.DebugContext(ctx, "Requesting isochrone", "profile", profile, "seconds", budget.RangeSeconds())

	payload, err := json.Marshal(orsRequest{
		Locations: [][]float64{{origin.Longitude, origin.Latitude}},
		Range:     []int{budget.RangeSeconds()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode isochrone request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, op.baseURL+"/"+profile, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+op.apiKey)

	resp, err := op.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute isochrone request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		op.log.ErrorContext(ctx, "OpenRouteService API error", "status", resp.StatusCode, "body", string(body))

		return nil, fmt.Errorf("openrouteservice API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result orsResponse
	if err = json.Unmarshal(body, &result); err != nil {
		op.log.ErrorContext(ctx, "Failed to parse isochrone response", "error", err)

		return nil, fmt.Errorf("failed to decode isochrone response: %w", err)
	}

	if len(result.Features) == 0 {
		return nil, ErrEmptyResponse
	}

	geometry := result.Features[0].Geometry
	if geometry.Type != "Polygon" || len(geometry.Coordinates) == 0 || len(geometry.Coordinates[0]) == 0 {
		return nil, ErrMalformedGeometry
	}

	ring := geometry.Coordinates[0] // outer boundary
	polygon := make(models.Polygon, 0, len(ring))

	for _, vertex := range ring {
		if len(vertex) < 2 {
			return nil, fmt.Errorf("%w: vertex with %d ordinates", ErrMalformedGeometry, len(vertex))
		}

		polygon = append(polygon, models.Coordinates{Latitude: vertex[1], Longitude: vertex[0]})
	}

	op.log.DebugContext(ctx, "Isochrone received", "vertices", len(polygon))

	return polygon, nil
}
