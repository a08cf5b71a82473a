package models

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000.0

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 `json:"lat"` // Latitude of the geographical point, degrees in [-90, 90].
	Longitude float64 `json:"lng"` // Longitude of the geographical point, degrees in [-180, 180].
}

// Valid reports whether the point lies within geographic coordinate bounds.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceMeters returns the great-circle distance in meters between c and
// other, computed with the haversine formula.
func (c Coordinates) DistanceMeters(other Coordinates) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lon1 := c.Longitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	lon2 := other.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	hav := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	arc := 2 * math.Atan2(math.Sqrt(hav), math.Sqrt(1-hav))

	return earthRadiusMeters * arc
}

// Polygon is the outer boundary of a reachable area, in provider vertex
// order. The last vertex may repeat the first when the ring is closed.
type Polygon []Coordinates
