package models

// Limits imposed by the places provider.
const (
	// MaxSearchRadiusMeters is the largest search radius the places provider
	// supports. Computed radius estimates are capped here, never exceeded.
	MaxSearchRadiusMeters = 50000
	// MaxResults caps the number of venues returned for one search.
	MaxResults = 20
)

// PlaceQuery is the normalized request sent to the places provider.
// Built fresh for every search; never persisted.
type PlaceQuery struct {
	Text     string      // Primary search text: keyword when given, type hint otherwise.
	TypeHint string      // Category filter, for providers that support one.
	Center   Coordinates // Center of the search circle.
	Radius   int         // Search radius in meters, capped at MaxSearchRadiusMeters.
	Limit    int         // Maximum number of venues to request.
}

// Place is a single venue returned by the places provider.
type Place struct {
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Location    Coordinates `json:"location"`
	PlaceID     string      `json:"place_id"`
	Types       []string    `json:"types"`
	PriceLevel  string      `json:"price_level,omitempty"`
	Description string      `json:"description,omitempty"`
}

// SearchResponse is the reply for one search: the estimated reachable radius
// and the venues found inside it, in provider rank order.
type SearchResponse struct {
	AverageRadius int     `json:"average_radius"`
	Places        []Place `json:"places"`
}
