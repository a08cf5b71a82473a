package places

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

// GoogleBaseURL is the Google Places API (New) nearby search endpoint.
const GoogleBaseURL = "https://places.googleapis.com/v1/places:searchNearby"

// googleFieldMask lists the place fields requested from the API. Fields
// outside the mask are withheld by the provider and billed separately.
const googleFieldMask = "places.displayName,places.formattedAddress,places.rating," +
	"places.location,places.id,places.types,places.priceLevel,places.editorialSummary"

// GoogleProvider implements the Provider interface using the Google Places
// API (New) nearby search. The endpoint has no free-text parameter, so
// keyword narrowing happens on the results via FilterByKeyword.
type GoogleProvider struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL for the nearby search endpoint
	apiKey  string       // API key with Places API access
	log     *slog.Logger // Logger for logging operations
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// nearbyRequest is the JSON body of one nearby search call.
type nearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
	RankPreference      string              `json:"rankPreference"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// nearbyResponse mirrors the fields named in the request field mask.
type nearbyResponse struct {
	Places []nearbyPlace `json:"places"`
}

type nearbyPlace struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string   `json:"formattedAddress"`
	Rating           float64  `json:"rating"`
	Location         latLng   `json:"location"`
	Types            []string `json:"types"`
	PriceLevel       string   `json:"priceLevel"`
	EditorialSummary struct {
		Text string `json:"text"`
	} `json:"editorialSummary"`
}

// NewGoogleProvider creates a Google Places provider with the given API key
// and request timeout.
func NewGoogleProvider(apiKey string, timeout time.Duration, log *slog.Logger) *GoogleProvider {
	return NewGoogleProviderWithClient(&http.Client{Timeout: timeout}, apiKey, log)
}

// NewGoogleProviderWithClient creates a Google Places provider with a custom
// HTTP client. Useful for testing with mocked HTTP clients.
func NewGoogleProviderWithClient(client HTTPClient, apiKey string, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		client:  client,
		baseURL: GoogleBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// SearchNearby finds venues inside the query circle, ranked by distance
// from the center. The type hint becomes the includedTypes category filter;
// the "any" hint disables category filtering entirely.
func (gp *GoogleProvider) SearchNearby(ctx context.Context, query models.PlaceQuery) ([]models.Place, error) {
	gp.log.DebugContext(ctx, "Searching places using Google Places", "type", query.TypeHint, "radius", query.Radius)

	includedTypes := []string{}
	if query.TypeHint != "" && query.TypeHint != models.PlaceTypeAny {
		includedTypes = []string{query.TypeHint}
	}

	payload, err := json.Marshal(nearbyRequest{
		IncludedTypes:  includedTypes,
		MaxResultCount: query.Limit,
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: query.Center.Latitude, Longitude: query.Center.Longitude},
				Radius: float64(query.Radius),
			},
		},
		RankPreference: "DISTANCE",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode places request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gp.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", gp.apiKey)
	req.Header.Set("X-Goog-FieldMask", googleFieldMask)

	resp, err := gp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		gp.log.ErrorContext(ctx, "Google Places API error", "status", resp.StatusCode, "body", string(body))

		return nil, fmt.Errorf("google places API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result nearbyResponse
	if err = json.Unmarshal(body, &result); err != nil {
		gp.log.ErrorContext(ctx, "Failed to parse places response", "error", err)

		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	found := make([]models.Place, 0, len(result.Places))
	for _, p := range result.Places {
		found = append(found, models.Place{
			Name:        p.DisplayName.Text,
			Address:     p.FormattedAddress,
			Rating:      p.Rating,
			Location:    models.Coordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
			PlaceID:     p.ID,
			Types:       p.Types,
			PriceLevel:  p.PriceLevel,
			Description: p.EditorialSummary.Text,
		})
	}

	gp.log.DebugContext(ctx, "Google Places found results", "count", len(found))

	return found, nil
}
