package models

// Place type defaults for the search endpoint. Any other hint between 2 and
// 50 characters is passed to the provider as-is.
const (
	// PlaceTypeAny disables the category filter entirely.
	PlaceTypeAny = "any"
	// DefaultPlaceType is used when the caller supplies no type hint.
	DefaultPlaceType = "restaurant"
)

// SearchRequest is the canonical query shape for the places endpoint. A
// caller supplies either a free-text location or an explicit coordinate
// pair; nil pointers mark fields absent from the request.
type SearchRequest struct {
	Location  *string    // Free-text place name to geocode.
	Latitude  *float64   // Explicit origin latitude.
	Longitude *float64   // Explicit origin longitude.
	Minutes   int        // Travel time budget in minutes.
	Mode      TravelMode // Transport mode.
	Type      string     // Place type hint, e.g. "restaurant".
	Keyword   string     // Optional keyword to filter venue names with.
}

// Budget returns the travel budget carried by the request.
func (r SearchRequest) Budget() TravelBudget {
	return TravelBudget{Minutes: r.Minutes, Mode: r.Mode}
}
