package models

import "fmt"

// TravelMode identifies the transport profile used to compute the reachable area.
type TravelMode string

// Transport modes supported by the isochrone provider.
const (
	ModeCar          TravelMode = "car"
	ModeHGV          TravelMode = "hgv"
	ModeBike         TravelMode = "bike"
	ModeRoadBike     TravelMode = "road-bike"
	ModeMountainBike TravelMode = "mountain-bike"
	ModeEBike        TravelMode = "e-bike"
	ModeWalking      TravelMode = "walking"
	ModeHiking       TravelMode = "hiking"
	ModeWheelchair   TravelMode = "wheelchair"
)

// profiles maps each travel mode to its OpenRouteService routing profile.
var profiles = map[TravelMode]string{
	ModeCar:          "driving-car",
	ModeHGV:          "driving-hgv",
	ModeBike:         "cycling-regular",
	ModeRoadBike:     "cycling-road",
	ModeMountainBike: "cycling-mountain",
	ModeEBike:        "cycling-electric",
	ModeWalking:      "foot-walking",
	ModeHiking:       "foot-hiking",
	ModeWheelchair:   "wheelchair",
}

// ParseTravelMode converts a raw mode string into a TravelMode.
// It returns an error for modes the isochrone provider does not support.
func ParseTravelMode(raw string) (TravelMode, error) {
	mode := TravelMode(raw)
	if _, ok := profiles[mode]; !ok {
		return "", fmt.Errorf("unknown travel mode: %q", raw)
	}
	return mode, nil
}

// Profile returns the OpenRouteService routing profile for the mode.
func (m TravelMode) Profile() string {
	return profiles[m]
}

// Travel time bounds and defaults for a search request.
const (
	MinTravelMinutes     = 1
	MaxTravelMinutes     = 60
	DefaultTravelMinutes = 20
	DefaultTravelMode    = ModeCar
)

// TravelBudget is the travel-time allowance for one search: how long the
// caller is willing to travel and by which mode. Supplied by the caller and
// validated before use.
type TravelBudget struct {
	Minutes int        // Travel time in minutes, in [1, 60].
	Mode    TravelMode // Transport mode used for the isochrone.
}

// Validate checks the budget against the supported bounds.
func (b TravelBudget) Validate() error {
	if b.Minutes < MinTravelMinutes || b.Minutes > MaxTravelMinutes {
		return fmt.Errorf("minutes must be between %d and %d, got %d",
			MinTravelMinutes, MaxTravelMinutes, b.Minutes)
	}
	if _, err := ParseTravelMode(string(b.Mode)); err != nil {
		return err
	}
	return nil
}

// RangeSeconds returns the budget expressed in seconds, the unit the
// isochrone provider expects.
func (b TravelBudget) RangeSeconds() int {
	return b.Minutes * 60
}
